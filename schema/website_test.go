package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebSiteBuild(t *testing.T) {
	obj := NewWebSite().Build(buildCtx(buildItem()))

	assert.Equal(t, "WebSite", obj.Type())
	name, _ := obj.Get("name")
	assert.Equal(t, "Example Blog", name)
	url, _ := obj.Get("url")
	assert.Equal(t, "https://example.com", url)
	lang, _ := obj.Get("inLanguage")
	assert.Equal(t, "en", lang)

	_, hasAction := obj.Get("potentialAction")
	assert.False(t, hasAction, "search action is opt-in")
}

func TestWebSiteSearchAction(t *testing.T) {
	ctx := buildCtx(buildItem())
	ctx.Options.SearchAction = true

	obj := NewWebSite().Build(ctx)
	raw, ok := obj.Get("potentialAction")
	require.True(t, ok)
	action := raw.(*Object)
	assert.Equal(t, "SearchAction", action.Type())

	target, ok := action.Get("target")
	require.True(t, ok)
	urlTemplate, _ := target.(*Object).Get("urlTemplate")
	assert.Equal(t, "https://example.com/?s={search_term_string}", urlTemplate)

	queryInput, _ := action.Get("query-input")
	assert.Equal(t, "required name=search_term_string", queryInput)
}
