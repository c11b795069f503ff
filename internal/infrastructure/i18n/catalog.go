package i18n

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"golang.org/x/text/language"

	"sitecopy/internal/domain"
)

// DefaultReference is the locale every other table is checked against.
const DefaultReference = "en-US"

// Catalog is the set of supported locale tables plus the active one.
// The table set never changes after NewCatalog; only the active pointer moves.
type Catalog struct {
	reference *Table
	tables    map[string]*Table
	tags      []language.Tag
	matcher   language.Matcher
	active    atomic.Pointer[Table]
}

// NewCatalog checks every table against the reference locale and builds a
// matcher with the reference as the fallback. The reference starts active.
func NewCatalog(reference string, tables ...*Table) (*Catalog, error) {
	refTag, err := ParseLocale(reference)
	if err != nil {
		return nil, err
	}

	c := &Catalog{tables: make(map[string]*Table, len(tables))}
	for _, t := range tables {
		key := t.locale.String()
		if _, dup := c.tables[key]; dup {
			return nil, fmt.Errorf("i18n: duplicate table for %s", key)
		}
		c.tables[key] = t
	}
	c.reference = c.tables[refTag.String()]
	if c.reference == nil {
		return nil, fmt.Errorf("i18n: reference locale %s: %w", refTag, domain.ErrLocaleNotSupported)
	}

	var errs []error
	others := make([]language.Tag, 0, len(tables))
	for key, t := range c.tables {
		if key == refTag.String() {
			continue
		}
		if err := CheckStructure(c.reference, t); err != nil {
			errs = append(errs, err)
		}
		others = append(others, t.locale)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	sort.Slice(others, func(i, j int) bool { return others[i].String() < others[j].String() })
	c.tags = append([]language.Tag{c.reference.locale}, others...)
	c.matcher = language.NewMatcher(c.tags)
	c.active.Store(c.reference)
	return c, nil
}

func (c *Catalog) Reference() *Table { return c.reference }

// Lookup returns the table for locale.
func (c *Catalog) Lookup(locale string) (*Table, error) {
	tag, err := ParseLocale(locale)
	if err != nil {
		return nil, err
	}
	t, ok := c.tables[tag.String()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrLocaleNotSupported, tag)
	}
	return t, nil
}

// Locales returns supported locale identifiers, reference first.
func (c *Catalog) Locales() []string {
	out := make([]string, len(c.tags))
	for i, t := range c.tags {
		out[i] = t.String()
	}
	return out
}

// Tables returns the tables in the same order as Locales.
func (c *Catalog) Tables() []*Table {
	out := make([]*Table, len(c.tags))
	for i, t := range c.tags {
		out[i] = c.tables[t.String()]
	}
	return out
}

// Match picks the best table for preference strings such as a query
// parameter or an Accept-Language header. With no usable preference it
// returns the reference table.
func (c *Catalog) Match(prefs ...string) *Table {
	_, idx := language.MatchStrings(c.matcher, prefs...)
	if idx < 0 || idx >= len(c.tags) {
		return c.reference
	}
	return c.tables[c.tags[idx].String()]
}

// Active returns the currently active table.
func (c *Catalog) Active() *Table { return c.active.Load() }

// Switch makes locale the active table with a single atomic store.
func (c *Catalog) Switch(locale string) (*Table, error) {
	t, err := c.Lookup(locale)
	if err != nil {
		return nil, err
	}
	c.active.Store(t)
	return t, nil
}

// Holder publishes a whole Catalog so reloads replace it in one step.
// Switch and Replace are serialised so a switch is never lost to a
// concurrent reload; readers only touch the atomic pointer.
type Holder struct {
	mu        sync.Mutex
	p         atomic.Pointer[Catalog]
	listeners []func(*Catalog)
}

func NewHolder(c *Catalog) *Holder {
	h := &Holder{}
	h.p.Store(c)
	return h
}

func (h *Holder) Load() *Catalog { return h.p.Load() }

// Switch changes the active locale of the current catalog.
func (h *Holder) Switch(locale string) (*Table, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.p.Load().Switch(locale)
}

// OnReplace registers fn to run after every Replace, with the new catalog.
func (h *Holder) OnReplace(fn func(*Catalog)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.listeners = append(h.listeners, fn)
}

// Replace installs next, carrying over the active locale of the previous
// catalog when next supports it.
func (h *Holder) Replace(next *Catalog) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if prev := h.p.Load(); prev != nil {
		if _, err := next.Switch(prev.Active().locale.String()); err != nil {
			next.active.Store(next.reference)
		}
	}
	h.p.Store(next)
	for _, fn := range h.listeners {
		fn(next)
	}
}
