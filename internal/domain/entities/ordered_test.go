package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func keys(fields []Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Key
	}
	return out
}

func TestOrdered_FeatureItem(t *testing.T) {
	v := map[string]any{"color": "blue", "description": "d", "icon": "blueprint", "title": "t"}
	got, ok := Ordered("features.items[0]", v).([]Field)
	assert.True(t, ok)
	assert.Equal(t, []string{"title", "description", "icon", "color"}, keys(got))
}

func TestOrdered_Nested(t *testing.T) {
	v := map[string]any{
		"copyright":   "c",
		"description": "d",
		"links": map[string]any{
			"contact":   map[string]any{"items": []any{map[string]any{"url": "#", "name": "Discord"}}, "title": "Contact"},
			"product":   map[string]any{"items": []any{}, "title": "Product"},
			"resources": map[string]any{"items": []any{}, "title": "Resources"},
		},
	}
	got := Ordered("footer", v).([]Field)
	assert.Equal(t, []string{"description", "links", "copyright"}, keys(got))

	links := got[1].Value.([]Field)
	assert.Equal(t, []string{"product", "resources", "contact"}, keys(links))

	contact := links[2].Value.([]Field)
	assert.Equal(t, []string{"title", "items"}, keys(contact))
	link := contact[1].Value.([]any)[0].([]Field)
	assert.Equal(t, []string{"name", "url"}, keys(link))
}

func TestOrdered_DottedIndexAndUnknownKeys(t *testing.T) {
	v := map[string]any{"zeta": "z", "points": []any{"p"}, "title": "t", "alpha": "a"}
	got := Ordered("audience.items.1", v).([]Field)
	assert.Equal(t, []string{"title", "points", "alpha", "zeta"}, keys(got))
}

func TestOrdered_Leaves(t *testing.T) {
	assert.Equal(t, "AI", Ordered("hero.title", "AI"))
	assert.Equal(t, []any{"a", "b"}, Ordered("audience.items[0].points", []any{"a", "b"}))

	got := Ordered("not..a.path", map[string]any{"b": "2", "a": "1"}).([]Field)
	assert.Equal(t, []string{"a", "b"}, keys(got))
}
