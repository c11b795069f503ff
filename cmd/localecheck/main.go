// Command localecheck validates locale tables against the reference locale
// and prints single values or whole tables for review.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"sitecopy/internal/domain"
	"sitecopy/internal/domain/entities"
	"sitecopy/internal/infrastructure/i18n"
	pkgdiscord "sitecopy/pkg/discord"
)

type options struct {
	dir       string
	reference string
	locale    string
	get       string
	export    string
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true})
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("localecheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.dir, "dir", "", "Directory of <locale>.<ext> files. Empty uses the built-in tables.")
	fs.StringVar(&o.reference, "reference", i18n.DefaultReference, "Reference locale every table must match.")
	fs.StringVar(&o.locale, "locale", i18n.DefaultReference, "Locale used by -get and -export.")
	fs.StringVar(&o.get, "get", "", "Print the value at this key path.")
	fs.StringVar(&o.export, "export", "", "Print the whole table in this format (toml, yaml, json).")
	err := fs.Parse(args)
	return o, err
}

// run returns the process exit code: 0 on success, 1 on invalid tables or a
// failed lookup, 2 on bad usage.
func run(args []string, stdout, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return 2
	}

	var tables []*i18n.Table
	if o.dir == "" {
		tables, err = i18n.LoadEmbedded()
	} else {
		tables, err = i18n.LoadDir(o.dir)
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if !report(tables, o.reference, stdout, stderr) {
		return 1
	}

	if o.get == "" && o.export == "" {
		return 0
	}

	catalog, err := i18n.NewCatalog(o.reference, tables...)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	table, err := catalog.Lookup(o.locale)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if o.get != "" {
		v, err := table.Get(o.get)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		fmt.Fprintln(stdout, pkgdiscord.FormatValue(entities.Ordered(o.get, v)))
	}

	if o.export != "" {
		codec, err := i18n.CodecFor(o.export)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		out, err := i18n.Encode(codec, table)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		if _, err := stdout.Write(out); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}
	return 0
}

// report prints one line per table and every mismatch against the reference.
func report(tables []*i18n.Table, reference string, stdout, stderr io.Writer) bool {
	refTag, err := i18n.ParseLocale(reference)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return false
	}
	var ref *i18n.Table
	for _, t := range tables {
		if t.Locale() == refTag {
			ref = t
		}
	}
	if ref == nil {
		fmt.Fprintln(stderr, fmt.Errorf("reference %s: %w", refTag, domain.ErrLocaleNotSupported))
		return false
	}

	ok := true
	for _, t := range tables {
		mm := i18n.Compare(ref, t)
		if len(mm) == 0 {
			fmt.Fprintf(stdout, "ok   %s (%d keys)\n", t.Locale(), len(t.Keys()))
			continue
		}
		ok = false
		fmt.Fprintf(stdout, "FAIL %s\n", t.Locale())
		for _, m := range mm {
			fmt.Fprintf(stdout, "     %s\n", m)
		}
	}
	return ok
}

