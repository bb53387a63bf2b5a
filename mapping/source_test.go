package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSourceTokens(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want Source
	}{
		{name: "literal", raw: "custom:Acme GmbH", want: Literal{Value: "Acme GmbH"}},
		{name: "literal with colon", raw: "custom:https://acme.example", want: Literal{Value: "https://acme.example"}},
		{name: "empty literal", raw: "custom:", want: Literal{Value: ""}},
		{name: "taxonomy", raw: "taxonomy:genre", want: Taxonomy{Slug: "genre"}},
		{name: "taxonomy without slug", raw: "taxonomy:", want: nil},
		{name: "standard field", raw: "post_title", want: Field{Name: "post_title"}},
		{name: "meta prefixed", raw: "meta:isbn", want: Field{Name: "meta:isbn"}},
		{name: "acf prefixed", raw: "acf:price", want: Field{Name: "acf:price"}},
		{name: "empty string", raw: "", want: nil},
		{name: "number", raw: 42, want: nil},
		{name: "nil", raw: nil, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSource(tt.raw))
		})
	}
}

func TestParseSourceExpressions(t *testing.T) {
	t.Run("concat", func(t *testing.T) {
		src := ParseSource(map[string]any{
			"type":      "concat",
			"sources":   []any{"post_title", "custom:| Acme"},
			"separator": " ",
		})
		require.IsType(t, Concat{}, src)
		c := src.(Concat)
		assert.Len(t, c.Parts, 2)
		assert.Equal(t, " ", c.Separator)
	})

	t.Run("concat defaults separator", func(t *testing.T) {
		src := ParseSource(map[string]any{
			"type":    "concat",
			"sources": []any{"post_title"},
		})
		require.IsType(t, Concat{}, src)
		assert.Equal(t, " ", src.(Concat).Separator)
	})

	t.Run("concat without sources", func(t *testing.T) {
		assert.Nil(t, ParseSource(map[string]any{"type": "concat"}))
	})

	t.Run("conditional", func(t *testing.T) {
		src := ParseSource(map[string]any{
			"type":     "conditional",
			"field":    "meta:sale",
			"operator": "==",
			"value":    "yes",
			"then":     "meta:sale_price",
			"else":     "meta:price",
		})
		require.IsType(t, Conditional{}, src)
		c := src.(Conditional)
		assert.Equal(t, "meta:sale", c.Field)
		assert.Equal(t, Field{Name: "meta:sale_price"}, c.Then)
		assert.Equal(t, Field{Name: "meta:price"}, c.Else)
	})

	t.Run("conditional rejects unknown operator", func(t *testing.T) {
		assert.Nil(t, ParseSource(map[string]any{
			"type":     "conditional",
			"field":    "meta:sale",
			"operator": "~=",
		}))
	})

	t.Run("transform", func(t *testing.T) {
		src := ParseSource(map[string]any{
			"type":      "transform",
			"source":    "post_title",
			"transform": "uppercase",
		})
		require.IsType(t, Transform{}, src)
		assert.Equal(t, "uppercase", src.(Transform).Op)
	})

	t.Run("transform rejects unknown op", func(t *testing.T) {
		assert.Nil(t, ParseSource(map[string]any{
			"type":      "transform",
			"source":    "post_title",
			"transform": "reverse",
		}))
	})

	t.Run("nested", func(t *testing.T) {
		src := ParseSource(map[string]any{
			"type": "nested",
			"properties": map[string]any{
				"name": "post_title",
				"url":  "permalink",
			},
		})
		require.IsType(t, Nested{}, src)
		assert.Len(t, src.(Nested).Properties, 2)
	})

	t.Run("unknown expression type", func(t *testing.T) {
		assert.Nil(t, ParseSource(map[string]any{"type": "lookup"}))
	})
}

func TestParseConfigDropsBrokenEntries(t *testing.T) {
	cfg := ParseConfig(map[string]any{
		"name":        "post_title",
		"description": map[string]any{"type": "bogus"},
		"keywords":    "taxonomy:post_tag",
	})
	require.NotNil(t, cfg)
	assert.Len(t, cfg, 2)
	assert.Contains(t, cfg, "name")
	assert.Contains(t, cfg, "keywords")
	assert.NotContains(t, cfg, "description")
}

func TestConfigMerge(t *testing.T) {
	global := Config{
		"name":  Field{Name: "post_title"},
		"image": Field{Name: "featured_image"},
	}
	perPost := Config{
		"name": Literal{Value: "Override"},
	}

	merged := global.Merge(perPost)
	assert.Equal(t, Literal{Value: "Override"}, merged["name"])
	assert.Equal(t, Field{Name: "featured_image"}, merged["image"])

	assert.Equal(t, global, global.Merge(nil))
}
