package mapping

import (
	"log/slog"
	"time"

	"github.com/pressmark/schemagen/content"
)

// DefaultCurrency applies when no commerce integration reports a currency.
const DefaultCurrency = "EUR"

// FieldSource is an optional custom-field integration (ACF-style). Lookups go
// through the integration before falling back to generic meta.
type FieldSource interface {
	// FieldValue returns the integration's value for the named field, and
	// whether the field exists for the item.
	FieldValue(item *content.Item, name string) (any, bool)
}

// PostResolveFunc is an extension callback invoked after a property resolves.
// It receives the resolved value and returns the (possibly replaced) value.
// Callbacks run synchronously in registration order.
type PostResolveFunc func(item *content.Item, property string, value any) any

// Resolver resolves Sources against content items. The zero value is not
// usable; construct with NewResolver.
type Resolver struct {
	site        content.Site
	fields      FieldSource
	postResolve []PostResolveFunc
	log         *slog.Logger
}

// NewResolver creates a resolver for the given site. fields may be nil when
// no custom-field integration is active.
func NewResolver(site content.Site, fields FieldSource, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{site: site, fields: fields, log: logger}
}

// Site returns the site identity the resolver was built with.
func (r *Resolver) Site() content.Site { return r.site }

// OnPostResolve registers a post-resolve callback.
func (r *Resolver) OnPostResolve(fn PostResolveFunc) {
	if fn != nil {
		r.postResolve = append(r.postResolve, fn)
	}
}

// Resolve resolves a source against an item. Missing data resolves to nil,
// never to an error: most schema properties are optional and absence means
// omission.
func (r *Resolver) Resolve(item *content.Item, src Source) any {
	if src == nil || item == nil {
		return nil
	}
	switch s := src.(type) {
	case Literal:
		if s.Value == "" {
			return nil
		}
		return s.Value
	case Field:
		return r.resolveField(item, s.Name)
	case Taxonomy:
		return toAnySlice(item.TermNames(s.Slug))
	case Concat:
		return r.resolveConcat(item, s)
	case Conditional:
		return r.resolveConditional(item, s)
	case Transform:
		return applyTransform(s.Op, r.Resolve(item, s.Source))
	case Nested:
		return r.resolveNested(item, s)
	default:
		return nil
	}
}

// ResolveProperty resolves a source and runs post-resolve callbacks for the
// named property.
func (r *Resolver) ResolveProperty(item *content.Item, property string, src Source) any {
	value := r.Resolve(item, src)
	for _, fn := range r.postResolve {
		value = fn(item, property, value)
	}
	return value
}

// resolveField dispatches a simple lookup token. Precedence: standard field
// keyword, then the custom-field integration, then generic meta by prefixed
// key, then generic meta by raw key.
func (r *Resolver) resolveField(item *content.Item, name string) any {
	if v, ok := r.standardField(item, name); ok {
		return v
	}
	if key, ok := cutPrefix(name, "acf:"); ok {
		return r.integrationValue(item, key)
	}
	if key, ok := cutPrefix(name, "meta:"); ok {
		return item.MetaValue(key)
	}
	// Bare keys try the integration first, then raw meta.
	if r.fields != nil {
		if v, ok := r.fields.FieldValue(item, name); ok {
			return v
		}
	}
	return item.MetaValue(name)
}

// integrationValue looks up an explicitly integration-prefixed field. A
// disabled integration resolves to nil rather than falling through, so
// "acf:price" never silently reads unrelated meta.
func (r *Resolver) integrationValue(item *content.Item, key string) any {
	if r.fields == nil {
		return nil
	}
	v, ok := r.fields.FieldValue(item, key)
	if !ok {
		return nil
	}
	return v
}

func (r *Resolver) standardField(item *content.Item, name string) (any, bool) {
	switch name {
	case "post_title":
		return item.Title, true
	case "post_content":
		return item.Content, true
	case "post_excerpt":
		return item.Excerpt, true
	case "post_date":
		return formatDate(item.Published), true
	case "post_modified":
		return formatDate(item.Modified), true
	case "post_url", "permalink":
		return item.URL, true
	case "featured_image":
		if item.Image == nil {
			return nil, true
		}
		return item.Image.URL, true
	case "author":
		if item.Author == nil {
			return nil, true
		}
		return item.Author.Name, true
	case "category":
		return toAnySlice(item.TermNames("category")), true
	case "tags":
		return toAnySlice(item.TermNames("post_tag")), true
	case "site_name":
		return r.site.Name, true
	case "site_url":
		return r.site.URL, true
	case "site_description":
		return r.site.Description, true
	case "site_logo":
		return r.site.LogoURL, true
	case "site_language":
		return r.site.Locale, true
	case "site_language_code":
		return r.site.LanguageCode(), true
	case "site_currency":
		if r.site.Currency != "" {
			return r.site.Currency, true
		}
		return DefaultCurrency, true
	}
	return nil, false
}

func (r *Resolver) resolveConcat(item *content.Item, c Concat) any {
	parts := make([]string, 0, len(c.Parts))
	for _, p := range c.Parts {
		v := r.Resolve(item, p)
		if IsEmpty(v) {
			continue
		}
		parts = append(parts, stringify(v))
	}
	if len(parts) == 0 {
		return nil
	}
	return joinStrings(parts, c.Separator)
}

func (r *Resolver) resolveConditional(item *content.Item, c Conditional) any {
	actual := r.resolveField(item, c.Field)
	branch := c.Else
	if evaluate(c.Operator, actual, c.Value) {
		branch = c.Then
	}
	return r.Resolve(item, branch)
}

func (r *Resolver) resolveNested(item *content.Item, n Nested) any {
	out := make(map[string]any, len(n.Properties))
	for key, src := range n.Properties {
		v := r.Resolve(item, src)
		if IsEmpty(v) {
			continue
		}
		out[key] = v
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// formatDate renders a timestamp as ISO-8601, or nil for the zero time.
func formatDate(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.Format(time.RFC3339)
}

// IsEmpty reports whether a resolved value carries no content: nil, empty
// string, or empty slice/map.
func IsEmpty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case []any:
		return len(x) == 0
	case []string:
		return len(x) == 0
	case map[string]any:
		return len(x) == 0
	default:
		return false
	}
}

func toAnySlice(names []string) any {
	if len(names) == 0 {
		return nil
	}
	out := make([]any, len(names))
	for i, n := range names {
		out[i] = n
	}
	return out
}
