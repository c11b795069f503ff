package i18n

import (
	"sync"
	"sync/atomic"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"

	"sitecopy/internal/domain/keypath"
	"sitecopy/internal/ports/output"
)

// Ensure Translator implements the output.T port.
var _ output.T = (*Translator)(nil)

// maxReported caps how many distinct misses are remembered for log-once.
const maxReported = 1024

// Translator is a thin wrapper around go-i18n's Bundle/Localizer, fed with
// every leaf of every table in a Catalog.
type Translator struct {
	state    atomic.Pointer[translatorState]
	reported sync.Map
	nReports atomic.Int64
}

type translatorState struct {
	bundle  *i18n.Bundle
	catalog *Catalog
	empty   map[language.Tag]map[string]struct{}
}

// NewTranslator builds a Translator whose default language is the catalog's
// reference locale.
func NewTranslator(c *Catalog) (*Translator, error) {
	t := &Translator{}
	if err := t.Reload(c); err != nil {
		return nil, err
	}
	return t, nil
}

// Reload rebuilds the message bundle from c. On error the previous bundle
// stays in use.
func (t *Translator) Reload(c *Catalog) error {
	st := &translatorState{
		bundle:  i18n.NewBundle(c.reference.locale),
		catalog: c,
		empty:   make(map[language.Tag]map[string]struct{}),
	}

	for _, table := range c.Tables() {
		var msgs []*i18n.Message
		empty := map[string]struct{}{}
		leaves(table.tree, nil, func(p keypath.Path, v string) {
			// go-i18n treats a message with no text as absent.
			if v == "" {
				empty[p.String()] = struct{}{}
				return
			}
			msgs = append(msgs, &i18n.Message{ID: p.String(), Other: v})
		})
		if err := st.bundle.AddMessages(table.locale, msgs...); err != nil {
			return err
		}
		st.empty[table.locale] = empty
	}
	t.state.Store(st)
	return nil
}

// Follow keeps the Translator in step with catalogs installed by h.Replace.
func (t *Translator) Follow(h *Holder) {
	h.OnReplace(func(c *Catalog) {
		if err := t.Reload(c); err != nil {
			log.Error().Str("sys", "i18n").Err(err).Msg("Translator reload failed, keeping previous messages")
		}
	})
}

// T renders the message identified by key for the given locale.
// If the key/locale is not found, it falls back to the reference locale,
// then finally to the key itself.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	p, err := keypath.Parse(key)
	if err != nil {
		return key
	}
	id := p.String()
	st := t.state.Load()

	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, st.catalog.reference.locale.String())

	matched := st.catalog.Match(languages...).locale
	if _, ok := st.empty[matched][id]; ok {
		return ""
	}

	localizer := i18n.NewLocalizer(st.bundle, languages...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		t.reportMiss(matched.String(), id, languages, err)
		return key
	}
	return msg
}

// reportMiss logs a failed lookup once per locale and key, remembering at
// most maxReported of them.
func (t *Translator) reportMiss(locale, id string, languages []string, err error) {
	k := locale + "\x00" + id
	if _, seen := t.reported.Load(k); seen {
		return
	}
	if t.nReports.Add(1) > maxReported {
		return
	}
	if _, seen := t.reported.LoadOrStore(k, struct{}{}); seen {
		return
	}
	log.Warn().Str("sys", "i18n").Str("key", id).Strs("locales", languages).Err(err).Msg("Localize failed")
}
