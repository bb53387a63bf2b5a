package hooks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pressmark/schemagen/content"
	"github.com/pressmark/schemagen/schema"
)

func TestPostResolveRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	r.OnPostResolve(func(_ *content.Item, _ string, value any) any {
		return value.(string) + "-a"
	})
	r.OnPostResolve(func(_ *content.Item, _ string, value any) any {
		return value.(string) + "-b"
	})
	r.OnPostResolve(nil)

	fns := r.PostResolveFuncs()
	require.Len(t, fns, 2)

	v := any("start")
	for _, fn := range fns {
		v = fn(nil, "name", v)
	}
	assert.Equal(t, "start-a-b", v)
}

func TestApplyPostBuild(t *testing.T) {
	r := NewRegistry()
	r.OnPostBuild(func(item *content.Item, obj *schema.Object) {
		obj.Set("customProperty", item.Title)
	})
	r.OnPostBuild(nil)

	item := &content.Item{ID: 1, Title: "Hello"}
	obj := schema.NewObject("Article")
	r.ApplyPostBuild(item, obj)

	v, ok := obj.Get("customProperty")
	require.True(t, ok)
	assert.Equal(t, "Hello", v)
}

func TestApplyPostBuildEmptyRegistry(t *testing.T) {
	r := NewRegistry()
	obj := schema.NewObject("Article")
	r.ApplyPostBuild(nil, obj)
	assert.Equal(t, 2, obj.Len())
}
