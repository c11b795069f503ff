package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"

	"sitecopy/internal/domain"
	"sitecopy/internal/domain/entities"
)

//go:embed locales/*.toml
var localeFS embed.FS

// ParseLocale canonicalises a locale identifier. Underscores are accepted in
// place of hyphens ("zh_CN" parses as "zh-CN").
func ParseLocale(s string) (language.Tag, error) {
	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(s), "_", "-"))
	if err != nil {
		return language.Und, fmt.Errorf("%w %q: %v", domain.ErrInvalidLocale, s, err)
	}
	return tag, nil
}

// Decode parses one locale document. The document's keys must match the
// LocaleTable schema exactly: missing and unknown keys are both rejected.
func Decode(codec Codec, locale language.Tag, data []byte) (*Table, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("i18n: %s: %w", locale, domain.ErrLocaleDocumentEmpty)
	}

	var raw any
	if err := codec.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("i18n: decode %s (%s): %w", locale, codec.Format, err)
	}
	rawTree, ok := normalize(raw).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("i18n: decode %s (%s): top level is %s, want mapping", locale, codec.Format, kindOf(normalize(raw)))
	}

	var typed entities.LocaleTable
	if err := codec.Unmarshal(data, &typed); err != nil {
		return nil, fmt.Errorf("i18n: decode %s (%s): %w", locale, codec.Format, err)
	}
	schema, err := toTree(typed)
	if err != nil {
		return nil, fmt.Errorf("i18n: decode %s: %w", locale, err)
	}

	var mm []domain.Mismatch
	diff(schema, rawTree, nil, &mm)
	if len(mm) > 0 {
		return nil, &domain.StructuralMismatchError{Locale: locale.String(), Reference: "schema", Mismatches: mm}
	}

	return NewTable(locale, typed)
}

// Encode writes t in codec's format.
func Encode(codec Codec, t *Table) ([]byte, error) {
	out, err := codec.Marshal(t.All())
	if err != nil {
		return nil, fmt.Errorf("i18n: encode %s (%s): %w", t.locale, codec.Format, err)
	}
	return out, nil
}

// LoadFS loads every "<locale>.<ext>" file directly under dir in fsys.
// Files with an unregistered extension are skipped.
func LoadFS(fsys fs.FS, dir string) ([]*Table, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("i18n: read %s: %w", dir, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var tables []*Table
	seen := map[string]string{}
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		name := entry.Name()
		codec, err := codecForFile(name)
		if err != nil {
			log.Debug().Str("sys", "i18n").Str("file", name).Msg("Skipping file with unknown format")
			continue
		}
		locale, err := ParseLocale(strings.TrimSuffix(name, path.Ext(name)))
		if err != nil {
			return nil, fmt.Errorf("i18n: %s: %w", name, err)
		}
		if prev, dup := seen[locale.String()]; dup {
			return nil, fmt.Errorf("i18n: locale %s defined by both %s and %s", locale, prev, name)
		}
		seen[locale.String()] = name

		data, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", name, err)
		}
		t, err := Decode(codec, locale, data)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)

		log.Info().
			Str("sys", "i18n").
			Str("locale", locale.String()).
			Str("file", name).
			Int("keys", len(t.keys)).
			Msg("Loaded locale table")
	}
	if len(tables) == 0 {
		return nil, fmt.Errorf("i18n: no locale files in %s", dir)
	}
	return tables, nil
}

// LoadDir loads locale files from a directory on disk.
func LoadDir(dir string) ([]*Table, error) {
	return LoadFS(os.DirFS(dir), ".")
}

// LoadEmbedded loads the tables compiled into the binary.
func LoadEmbedded() ([]*Table, error) {
	return LoadFS(localeFS, "locales")
}
