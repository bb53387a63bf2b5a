// Package render drives the full pipeline: settings → mapping → schema build
// → validation → JSON-LD serialization, with caching of the rendered output.
package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/goccy/go-json"

	"github.com/pressmark/schemagen/cache"
	"github.com/pressmark/schemagen/content"
	"github.com/pressmark/schemagen/hooks"
	"github.com/pressmark/schemagen/mapping"
	"github.com/pressmark/schemagen/metrics"
	"github.com/pressmark/schemagen/schema"
	"github.com/pressmark/schemagen/settings"
)

// Built pairs a schema object with the definition that produced it, so the
// object can be validated after the fact.
type Built struct {
	Object     *schema.Object
	Definition schema.Definition
}

// Renderer builds and serializes JSON-LD documents for content items.
type Renderer struct {
	store   settings.Store
	cache   cache.Cache
	factory *schema.Factory
	fields  mapping.FieldSource
	hooks   *hooks.Registry
	metrics *metrics.Metrics
	log     *slog.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithFactory replaces the schema type factory.
func WithFactory(f *schema.Factory) Option {
	return func(r *Renderer) { r.factory = f }
}

// WithFieldSource wires a custom-field integration into resolution.
func WithFieldSource(fs mapping.FieldSource) Option {
	return func(r *Renderer) { r.fields = fs }
}

// WithHooks wires pipeline extension callbacks.
func WithHooks(h *hooks.Registry) Option {
	return func(r *Renderer) { r.hooks = h }
}

// WithMetrics wires Prometheus instrumentation.
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Renderer) { r.metrics = m }
}

// WithLogger replaces the default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) { r.log = logger }
}

// NewRenderer creates a renderer over a settings store and a cache.
func NewRenderer(store settings.Store, c cache.Cache, opts ...Option) *Renderer {
	r := &Renderer{
		store:   store,
		cache:   c,
		factory: schema.NewFactory(),
		hooks:   hooks.NewRegistry(),
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Factory returns the schema type factory, for callers registering custom
// types.
func (r *Renderer) Factory() *schema.Factory { return r.factory }

// BuildAll builds every schema object that applies to an item: the selected
// type schema plus the site-wide WebSite and BreadcrumbList schemas when
// enabled. A disabled item or an unknown schema type yields no objects, not
// an error.
func (r *Renderer) BuildAll(ctx context.Context, item *content.Item) ([]Built, error) {
	if item == nil {
		return nil, nil
	}
	cfg, err := r.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if cfg.DisabledFor(item.ID) {
		r.log.Debug("schema output disabled", slog.Int64("item", item.ID))
		return nil, nil
	}

	start := time.Now()
	buildCtx := r.buildContext(item, cfg)
	var built []Built

	if typeID := cfg.SchemaTypeFor(item); typeID != "" {
		if def := r.factory.Create(typeID); def != nil {
			built = append(built, r.build(def, buildCtx))
		} else {
			r.log.Warn("unknown schema type configured",
				slog.String("type", typeID), slog.Int64("item", item.ID))
		}
	}

	if cfg.Output.WebsiteSchema {
		if def := r.factory.Create("WebSite"); def != nil {
			built = append(built, r.build(def, buildCtx))
		}
	}
	if cfg.Output.Breadcrumbs {
		if def := r.factory.Create("BreadcrumbList"); def != nil {
			built = append(built, r.build(def, buildCtx))
		}
	}

	if r.metrics != nil {
		r.metrics.BuildDuration.Observe(time.Since(start).Seconds())
	}
	return built, nil
}

func (r *Renderer) build(def schema.Definition, ctx *schema.BuildContext) Built {
	obj := def.Build(ctx)
	r.hooks.ApplyPostBuild(ctx.Item, obj)
	if r.metrics != nil {
		r.metrics.BuildsTotal.WithLabelValues(def.Type()).Inc()
	}
	return Built{Object: obj, Definition: def}
}

func (r *Renderer) buildContext(item *content.Item, cfg *settings.Settings) *schema.BuildContext {
	resolver := mapping.NewResolver(cfg.Site, r.fields, r.log)
	for _, fn := range r.hooks.PostResolveFuncs() {
		resolver.OnPostResolve(fn)
	}
	return &schema.BuildContext{
		Item:      item,
		Resolver:  resolver,
		Mapping:   cfg.MappingFor(item.Type),
		Overrides: cfg.OverridesFor(item.ID),
		Options: schema.BuildOptions{
			WordsPerMinute: cfg.Output.WordsPerMinute,
			SearchAction:   cfg.Output.SearchAction,
		},
	}
}

// Render returns the serialized JSON-LD for an item, from cache when
// possible. A nil result with nil error means no schema applies.
func (r *Renderer) Render(ctx context.Context, item *content.Item) ([]byte, error) {
	if item == nil {
		return nil, nil
	}
	key := cache.Key(item.ID, item.Modified)
	if r.cache != nil {
		if data, err := r.cache.Get(ctx, key); err == nil {
			if r.metrics != nil {
				r.metrics.CacheHits.Inc()
			}
			return data, nil
		} else if !errors.Is(err, cache.ErrNotFound) {
			r.log.Warn("cache read failed", slog.String("key", key), slog.String("error", err.Error()))
		}
	}
	if r.metrics != nil {
		r.metrics.CacheMisses.Inc()
	}

	built, err := r.BuildAll(ctx, item)
	if err != nil {
		return nil, err
	}
	if len(built) == 0 {
		return nil, nil
	}

	data, err := Encode(objects(built))
	if err != nil {
		if r.metrics != nil {
			r.metrics.EncodeFailures.Inc()
		}
		r.log.Error("schema serialization failed",
			slog.Int64("item", item.ID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("encode schema: %w", err)
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, key, data); err != nil {
			r.log.Warn("cache write failed", slog.String("key", key), slog.String("error", err.Error()))
		}
	}
	return data, nil
}

// Invalidate removes the cached render for an item. Called on content save;
// the timestamped key makes this a belt-and-suspenders measure.
func (r *Renderer) Invalidate(ctx context.Context, item *content.Item) error {
	if r.cache == nil || item == nil {
		return nil
	}
	return r.cache.Delete(ctx, cache.Key(item.ID, item.Modified))
}

// Encode serializes schema objects to the documented byte-level contract:
// insertion-ordered keys, two-space indentation, no HTML or slash escaping.
// Multiple objects are wrapped in a @graph envelope.
func Encode(objs []*schema.Object) ([]byte, error) {
	if len(objs) == 0 {
		return nil, nil
	}
	var root any = objs[0]
	if len(objs) > 1 {
		root = schema.NewGraph(objs)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(root); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func objects(built []Built) []*schema.Object {
	out := make([]*schema.Object, len(built))
	for i, b := range built {
		out[i] = b.Object
	}
	return out
}
