package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectInsertionOrder(t *testing.T) {
	o := NewObject("Article")
	o.Set("headline", "First")
	o.Set("author", "Dana")
	o.Set("headline", "Overwritten")

	assert.Equal(t, []string{"@context", "@type", "headline", "author"}, o.Keys())

	data, err := o.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t,
		`{"@context":"https://schema.org","@type":"Article","headline":"Overwritten","author":"Dana"}`,
		string(data))
}

func TestObjectMarshalNoHTMLEscaping(t *testing.T) {
	o := NewNested("Thing")
	o.Set("name", "Fish & Chips <deluxe>")
	o.Set("url", "https://example.com/?a=1&b=2")

	data, err := o.MarshalJSON()
	require.NoError(t, err)
	s := string(data)
	assert.Contains(t, s, "Fish & Chips <deluxe>")
	assert.Contains(t, s, "https://example.com/?a=1&b=2")
	assert.NotContains(t, s, `\u003c`)
	assert.NotContains(t, s, `\u0026`)
}

func TestObjectDelete(t *testing.T) {
	o := NewNested("Thing")
	o.Set("a", 1)
	o.Set("b", 2)
	o.Delete("a")

	assert.Equal(t, []string{"@type", "b"}, o.Keys())
	_, ok := o.Get("a")
	assert.False(t, ok)
	o.Delete("a")
	assert.Equal(t, 2, o.Len())
}

func TestObjectSetNonEmptyAndHas(t *testing.T) {
	o := NewNested("Thing")
	o.SetNonEmpty("empty", "")
	o.SetNonEmpty("nil", nil)
	o.SetNonEmpty("list", []any{})
	o.SetNonEmpty("name", "ok")

	assert.False(t, o.Has("empty"))
	assert.False(t, o.Has("nil"))
	assert.True(t, o.Has("name"))
	assert.Equal(t, []string{"@type", "name"}, o.Keys())
}

func TestObjectClean(t *testing.T) {
	o := NewObject("Article")
	o.Set("headline", "<b>Ten</b>  Trails")
	o.Set("url", "https://example.com/?a=1&b=2")
	o.Set("junk", "<p> </p>")

	empty := NewNested("Person")
	o.Set("author", empty)

	o.Clean()

	headline, _ := o.Get("headline")
	assert.Equal(t, "Ten Trails", headline)
	url, _ := o.Get("url")
	assert.Equal(t, "https://example.com/?a=1&b=2", url)
	_, hasJunk := o.Get("junk")
	assert.False(t, hasJunk)
	_, hasAuthor := o.Get("author")
	assert.False(t, hasAuthor, "object with only @type should be dropped")
	assert.Equal(t, "Article", o.Type())
}

func TestNewGraphStripsMemberContexts(t *testing.T) {
	a := NewObject("Article")
	b := NewObject("WebSite")
	g := NewGraph([]*Object{a, b})

	assert.Equal(t, []string{"@context", "@graph"}, g.Keys())
	_, hasCtx := a.Get("@context")
	assert.False(t, hasCtx)
	_, hasCtx = b.Get("@context")
	assert.False(t, hasCtx)

	data, err := g.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t,
		`{"@context":"https://schema.org","@graph":[{"@type":"Article"},{"@type":"WebSite"}]}`,
		string(data))
}

func TestNormalizeAdditionalType(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"bare type", "Book", "https://schema.org/Book", true},
		{"bare type with digits", "Product3D", "https://schema.org/Product3D", true},
		{"https url", "https://schema.org/TechArticle", "https://schema.org/TechArticle", true},
		{"http url", "http://schema.org/TechArticle", "http://schema.org/TechArticle", true},
		{"lowercase rejected", "book", "", false},
		{"punctuation rejected", "not valid!", "", false},
		{"foreign url rejected", "https://example.com/Book", "", false},
		{"empty rejected", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeAdditionalType(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
