package i18n

import (
	"fmt"

	"golang.org/x/text/language"

	"sitecopy/internal/domain"
	"sitecopy/internal/domain/entities"
	"sitecopy/internal/domain/keypath"
)

// Table is an immutable locale resource table. It is safe for concurrent use;
// every accessor returns a copy.
type Table struct {
	locale language.Tag
	data   entities.LocaleTable
	tree   map[string]any
	keys   []string
}

// NewTable validates data and freezes it as the table for locale.
func NewTable(locale language.Tag, data entities.LocaleTable) (*Table, error) {
	data = data.Clone()
	if err := validateValues(locale.String(), data); err != nil {
		return nil, err
	}
	tree, err := toTree(data)
	if err != nil {
		return nil, fmt.Errorf("i18n: build tree for %s: %w", locale, err)
	}
	t := &Table{locale: locale, data: data, tree: tree}
	leaves(tree, nil, func(p keypath.Path, _ string) {
		t.keys = append(t.keys, p.String())
	})
	return t, nil
}

func (t *Table) Locale() language.Tag { return t.locale }

// Get returns the value at keyPath: a string, an ordered []any, or a
// map[string]any for a sub-structure.
func (t *Table) Get(keyPath string) (any, error) {
	p, err := keypath.Parse(keyPath)
	if err != nil {
		return nil, &domain.MissingKeyError{Locale: t.locale.String(), Path: keyPath, Reason: err.Error()}
	}
	v, ok := lookup(t.tree, p)
	if !ok {
		return nil, &domain.MissingKeyError{Locale: t.locale.String(), Path: keyPath}
	}
	return clone(v), nil
}

// GetString returns the leaf string at keyPath.
func (t *Table) GetString(keyPath string) (string, error) {
	v, err := t.Get(keyPath)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", &domain.MissingKeyError{Locale: t.locale.String(), Path: keyPath, Reason: "not a string"}
	}
	return s, nil
}

// All returns a deep copy of the whole table.
func (t *Table) All() entities.LocaleTable { return t.data.Clone() }

// Tree returns a deep copy of the table in its generic wire shape.
func (t *Table) Tree() map[string]any { return clone(t.tree).(map[string]any) }

// Keys returns every leaf key path, sorted by key then index.
func (t *Table) Keys() []string {
	return append([]string(nil), t.keys...)
}
