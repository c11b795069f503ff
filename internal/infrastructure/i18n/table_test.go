package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"sitecopy/internal/domain"
	"sitecopy/internal/domain/entities"
)

func TestTable_HeroTitle(t *testing.T) {
	en := embeddedTable(t, "en-US")
	got, err := en.GetString("hero.title")
	require.NoError(t, err)
	assert.Equal(t, "AI Architecture Design", got)
}

func TestTable_FeatureItems(t *testing.T) {
	en := embeddedTable(t, "en-US")
	all := en.All()
	require.Len(t, all.Features.Items, 3)
	assert.Equal(t, "Rich AI Component Library", all.Features.Items[1].Title)

	got, err := en.GetString("features.items[1].title")
	require.NoError(t, err)
	assert.Equal(t, "Rich AI Component Library", got)

	icons := []string{}
	for _, it := range all.Features.Items {
		icons = append(icons, it.Icon)
	}
	assert.Equal(t, []string{"blueprint", "beaker", "code"}, icons)
}

func TestTable_MissingKey(t *testing.T) {
	en := embeddedTable(t, "en-US")
	for _, key := range []string{"hero.nonexistent", "features.items[3].title", "site.name.first", "features.items.title", "", "hero..title"} {
		t.Run(key, func(t *testing.T) {
			_, err := en.Get(key)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrMissingKey)

			var mk *domain.MissingKeyError
			require.ErrorAs(t, err, &mk)
			assert.Equal(t, "en-US", mk.Locale)
			assert.Equal(t, key, mk.Path)
		})
	}
}

func TestTable_GetStructured(t *testing.T) {
	en := embeddedTable(t, "en-US")

	points, err := en.Get("audience.items[0].points")
	require.NoError(t, err)
	assert.Equal(t, []any{
		"No need to dive deep into code syntax",
		"Intuitively understand data flow and dimension changes",
		"Quickly get started reproducing classic models",
	}, points)

	link, err := en.Get("footer.links.product.items[1]")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "Architecture Arena", "url": "#"}, link)

	_, err = en.GetString("footer.links.product")
	var mk *domain.MissingKeyError
	require.ErrorAs(t, err, &mk)
	assert.Equal(t, "not a string", mk.Reason)
}

func TestTable_EmptyLeafIsPresent(t *testing.T) {
	en := embeddedTable(t, "en-US")
	got, err := en.GetString("audience.subtitle")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestTable_AccessorsReturnCopies(t *testing.T) {
	en := embeddedTable(t, "en-US")

	v, err := en.Get("features")
	require.NoError(t, err)
	v.(map[string]any)["title"] = "mutated"
	v.(map[string]any)["items"].([]any)[0] = "mutated"

	all := en.All()
	all.Features.Items[0].Title = "mutated"

	tree := en.Tree()
	delete(tree, "site")

	got, err := en.GetString("features.title")
	require.NoError(t, err)
	assert.Equal(t, "Simplify Complexity, Focus on Innovation", got)
	got, err = en.GetString("features.items[0].title")
	require.NoError(t, err)
	assert.Equal(t, "Blueprint Visualization", got)
	_, err = en.Get("site.name")
	assert.NoError(t, err)
}

func TestTable_Keys(t *testing.T) {
	en := embeddedTable(t, "en-US")
	keys := en.Keys()
	assert.Contains(t, keys, "site.name")
	assert.Contains(t, keys, "features.items[2].description")
	assert.Contains(t, keys, "audience.items[1].points[2]")
	assert.Contains(t, keys, "footer.links.contact.items[1].url")
	assert.NotContains(t, keys, "features.items")

	for _, k := range keys {
		_, err := en.GetString(k)
		assert.NoError(t, err, k)
	}
}

func TestNewTable_Validation(t *testing.T) {
	base := embeddedTable(t, "en-US").All()

	t.Run("empty site name", func(t *testing.T) {
		data := base.Clone()
		data.Site.Name = "  "
		_, err := NewTable(language.AmericanEnglish, data)
		var iv *domain.InvalidValueError
		require.ErrorAs(t, err, &iv)
		assert.Equal(t, "site.name", iv.Path)
	})

	t.Run("bad footer url", func(t *testing.T) {
		data := base.Clone()
		data.Footer.Links.Contact.Items[0].URL = "not a url"
		_, err := NewTable(language.AmericanEnglish, data)
		var iv *domain.InvalidValueError
		require.ErrorAs(t, err, &iv)
		assert.Equal(t, "footer.links.contact.items[0].url", iv.Path)
		assert.ErrorIs(t, err, domain.ErrInvalidValue)
	})

	t.Run("real urls accepted", func(t *testing.T) {
		data := base.Clone()
		data.Footer.Links.Contact.Items[0].URL = "https://discord.gg/blueprint"
		data.Footer.Links.Resources.Items[0].URL = "/docs"
		_, err := NewTable(language.AmericanEnglish, data)
		assert.NoError(t, err)
	})

	t.Run("input is copied", func(t *testing.T) {
		data := base.Clone()
		table, err := NewTable(language.AmericanEnglish, data)
		require.NoError(t, err)
		data.Features.Items[0].Title = "mutated"
		assert.Equal(t, "Blueprint Visualization", table.All().Features.Items[0].Title)
	})
}

func TestValidLinkURL(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"#", true},
		{"https://example.com/docs", true},
		{"mailto:hello@example.com", true},
		{"/community", true},
		{"", false},
		{"//example.com", false},
		{"docs", false},
		{"https://", false},
		{"http://exa mple.com", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidLinkURL(tt.in), tt.in)
	}
}

func TestTable_ZeroValueFailsValidation(t *testing.T) {
	_, err := NewTable(language.AmericanEnglish, entities.LocaleTable{})
	assert.ErrorIs(t, err, domain.ErrInvalidValue)
}
