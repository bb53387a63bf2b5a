// Package hooks provides the explicit extension points of the build
// pipeline: ordered lists of pure callbacks registered against specific
// stages, invoked synchronously in registration order.
package hooks

import (
	"sync"

	"github.com/pressmark/schemagen/content"
	"github.com/pressmark/schemagen/mapping"
	"github.com/pressmark/schemagen/schema"
)

// PostBuildFunc runs after a schema object is built and may mutate it before
// validation and rendering.
type PostBuildFunc func(item *content.Item, obj *schema.Object)

// Registry holds the registered pipeline callbacks.
type Registry struct {
	mu          sync.RWMutex
	postResolve []mapping.PostResolveFunc
	postBuild   []PostBuildFunc
}

// NewRegistry creates an empty hook registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// OnPostResolve registers a callback run after each property resolution.
func (r *Registry) OnPostResolve(fn mapping.PostResolveFunc) {
	if fn == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.postResolve = append(r.postResolve, fn)
}

// OnPostBuild registers a callback run after each schema object build.
func (r *Registry) OnPostBuild(fn PostBuildFunc) {
	if fn == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.postBuild = append(r.postBuild, fn)
}

// PostResolveFuncs returns the post-resolve callbacks in registration order.
func (r *Registry) PostResolveFuncs() []mapping.PostResolveFunc {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]mapping.PostResolveFunc, len(r.postResolve))
	copy(out, r.postResolve)
	return out
}

// ApplyPostBuild runs the post-build callbacks over a built object.
func (r *Registry) ApplyPostBuild(item *content.Item, obj *schema.Object) {
	r.mu.RLock()
	callbacks := make([]PostBuildFunc, len(r.postBuild))
	copy(callbacks, r.postBuild)
	r.mu.RUnlock()
	for _, fn := range callbacks {
		fn(item, obj)
	}
}
