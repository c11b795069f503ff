// Package keypath parses the dotted key paths used to address values in a
// locale table, e.g. "features.items[2].description".
package keypath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrSyntax = errors.New("keypath: invalid syntax")

// Segment is one step of a path: either a map key or a list index.
type Segment struct {
	Key   string
	Index int
	IsIdx bool
}

func (s Segment) String() string {
	if s.IsIdx {
		return "[" + strconv.Itoa(s.Index) + "]"
	}
	return s.Key
}

// Path is a parsed key path.
type Path []Segment

// Parse splits p into segments. Indexes may be written "items[2]" or
// "items.2"; both parse to the same Path.
func Parse(p string) (Path, error) {
	if strings.TrimSpace(p) == "" {
		return nil, fmt.Errorf("%w: empty path", ErrSyntax)
	}
	var out Path
	for _, part := range strings.Split(p, ".") {
		if part == "" {
			return nil, fmt.Errorf("%w: empty segment in %q", ErrSyntax, p)
		}
		name, rest, hasIdx := strings.Cut(part, "[")
		switch {
		case name == "" && !hasIdx:
			return nil, fmt.Errorf("%w: empty segment in %q", ErrSyntax, p)
		case name != "":
			if !hasIdx && isDigits(strings.TrimLeft(name, "+-")) {
				n, err := parseIndex(name)
				if err != nil {
					return nil, fmt.Errorf("%w: bad index %q in %q", ErrSyntax, name, p)
				}
				out = append(out, Segment{Index: n, IsIdx: true})
				continue
			}
			if strings.ContainsAny(name, "]") {
				return nil, fmt.Errorf("%w: stray ']' in %q", ErrSyntax, p)
			}
			out = append(out, Segment{Key: name})
		}
		for hasIdx {
			var idx string
			var ok bool
			idx, rest, ok = strings.Cut(rest, "]")
			if !ok {
				return nil, fmt.Errorf("%w: unclosed '[' in %q", ErrSyntax, p)
			}
			n, err := parseIndex(idx)
			if err != nil {
				return nil, fmt.Errorf("%w: bad index %q in %q", ErrSyntax, idx, p)
			}
			out = append(out, Segment{Index: n, IsIdx: true})
			if rest == "" {
				break
			}
			if !strings.HasPrefix(rest, "[") {
				return nil, fmt.Errorf("%w: unexpected %q after index in %q", ErrSyntax, rest, p)
			}
			rest = rest[1:]
		}
	}
	return out, nil
}

// parseIndex accepts only unsigned decimal digits.
func parseIndex(s string) (int, error) {
	if !isDigits(s) {
		return 0, strconv.ErrSyntax
	}
	return strconv.Atoi(s)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// String renders the canonical form, using brackets for indexes.
func (p Path) String() string {
	var b strings.Builder
	for i, s := range p {
		if i > 0 && !s.IsIdx {
			b.WriteByte('.')
		}
		b.WriteString(s.String())
	}
	return b.String()
}

// Key appends a map key to p and returns the result without modifying p.
func (p Path) Key(k string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, Segment{Key: k})
}

// Index appends a list index to p and returns the result without modifying p.
func (p Path) Index(i int) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, Segment{Index: i, IsIdx: true})
}
