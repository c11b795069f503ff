package i18n

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslator_T(t *testing.T) {
	tr, err := NewTranslator(embeddedCatalog(t))
	require.NoError(t, err)

	tests := []struct {
		name   string
		locale string
		key    string
		want   string
	}{
		{"english", "en-US", "hero.title", "AI Architecture Design"},
		{"chinese", "zh-CN", "hero.title", "AI 架构设计"},
		{"nav label", "zh-CN", "nav.tryNow", "立即体验"},
		{"indexed key", "en-US", "features.items[1].title", "Rich AI Component Library"},
		{"dotted index key", "en-US", "features.items.1.title", "Rich AI Component Library"},
		{"dotted index link url", "en-US", "footer.links.product.items.0.url", "#"},
		{"unparsable key returns key", "en-US", "hero..title", "hero..title"},
		{"unsupported locale falls back", "fr-FR", "cta.title", "Ready to Start Building?"},
		{"no locale uses reference", "", "common.loading", "Loading..."},
		{"unknown key returns key", "en-US", "hero.nonexistent", "hero.nonexistent"},
		{"empty leaf stays empty", "zh-CN", "audience.subtitle", ""},
		{"empty key", "en-US", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.T(tt.locale, tt.key, nil))
		})
	}
}

func TestTranslator_CoversEveryLeaf(t *testing.T) {
	c := embeddedCatalog(t)
	tr, err := NewTranslator(c)
	require.NoError(t, err)

	for _, table := range c.Tables() {
		for _, key := range table.Keys() {
			want, err := table.GetString(key)
			require.NoError(t, err)
			assert.Equal(t, want, tr.T(table.Locale().String(), key, nil), "%s %s", table.Locale(), key)
		}
	}
}

func TestTranslator_ReportedMissesAreBounded(t *testing.T) {
	tr, err := NewTranslator(embeddedCatalog(t))
	require.NoError(t, err)

	for i := 0; i < 3*maxReported; i++ {
		key := fmt.Sprintf("hero.bogus%d", i)
		assert.Equal(t, key, tr.T("xx-"+fmt.Sprint(i), key, nil))
	}

	n := 0
	tr.reported.Range(func(_, _ any) bool { n++; return true })
	assert.LessOrEqual(t, n, maxReported)
}

func TestTranslator_FollowsHolder(t *testing.T) {
	h := NewHolder(embeddedCatalog(t))
	tr, err := NewTranslator(h.Load())
	require.NoError(t, err)
	tr.Follow(h)

	onlyEN, err := NewCatalog("en-US", embeddedTable(t, "en-US"))
	require.NoError(t, err)
	h.Replace(onlyEN)

	assert.Equal(t, "AI Architecture Design", tr.T("zh-CN", "hero.title", nil))
}
