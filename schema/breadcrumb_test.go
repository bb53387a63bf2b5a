package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pressmark/schemagen/content"
)

func TestBreadcrumbListHierarchical(t *testing.T) {
	item := buildItem()
	item.Ancestors = []content.PageRef{
		{Title: "Guides", URL: "https://example.com/guides"},
		{Title: "Hiking", URL: "https://example.com/guides/hiking"},
	}

	obj := NewBreadcrumbList().Build(buildCtx(item))
	assert.Equal(t, "BreadcrumbList", obj.Type())

	raw, ok := obj.Get("itemListElement")
	require.True(t, ok)
	items := raw.([]any)
	require.Len(t, items, 4)

	first := items[0].(*Object)
	pos, _ := first.Get("position")
	assert.Equal(t, 1, pos)
	name, _ := first.Get("name")
	assert.Equal(t, "Home", name)
	link, _ := first.Get("item")
	assert.Equal(t, "https://example.com", link)

	second := items[1].(*Object)
	name, _ = second.Get("name")
	assert.Equal(t, "Guides", name)

	last := items[3].(*Object)
	pos, _ = last.Get("position")
	assert.Equal(t, 4, pos)
	name, _ = last.Get("name")
	assert.Equal(t, "Ten Hiking Trails", name)
	_, hasItem := last.Get("item")
	assert.False(t, hasItem, "current page entry must not carry an item URL")
}

func TestBreadcrumbListFlatUsesPrimaryCategory(t *testing.T) {
	obj := NewBreadcrumbList().Build(buildCtx(buildItem()))

	raw, ok := obj.Get("itemListElement")
	require.True(t, ok)
	items := raw.([]any)
	require.Len(t, items, 3)

	category := items[1].(*Object)
	name, _ := category.Get("name")
	assert.Equal(t, "Outdoors", name)
	link, _ := category.Get("item")
	assert.Equal(t, "https://example.com/category/outdoors", link)
}

func TestBreadcrumbListWithoutSiteURL(t *testing.T) {
	item := buildItem()
	item.Terms = nil
	ctx := buildCtx(item)
	ctx.Resolver = newResolverWithSite(content.Site{Name: "No URL"})

	obj := NewBreadcrumbList().Build(ctx)
	raw, ok := obj.Get("itemListElement")
	require.True(t, ok)
	items := raw.([]any)
	require.Len(t, items, 1)

	only := items[0].(*Object)
	pos, _ := only.Get("position")
	assert.Equal(t, 1, pos)
}
