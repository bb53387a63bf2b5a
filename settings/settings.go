// Package settings models the administrator configuration the engine reads:
// which schema type applies to which content type, global field mappings, and
// per-post overrides. Storage and serialization belong to the host; this
// package only owns the merge and precedence logic over already-deserialized
// structures.
package settings

import (
	"github.com/pressmark/schemagen/content"
	"github.com/pressmark/schemagen/mapping"
)

// Settings is the full engine configuration snapshot.
type Settings struct {
	// Site is the site identity used for publisher and WebSite schemas.
	Site content.Site `yaml:"site" json:"site"`

	// PostTypeSchemas maps content type tags to schema type identifiers.
	PostTypeSchemas map[string]string `yaml:"post_type_schemas" json:"post_type_schemas"`

	// TaxonomySchemas maps taxonomy slugs to schema type identifiers for
	// term archive items.
	TaxonomySchemas map[string]string `yaml:"taxonomy_schemas" json:"taxonomy_schemas"`

	// FieldMappings holds the global property→source mappings per content
	// type. Sources are raw (string or map) and parsed on demand.
	FieldMappings map[string]map[string]any `yaml:"field_mappings" json:"field_mappings"`

	// Posts holds per-post overrides keyed by item ID.
	Posts map[int64]PostSettings `yaml:"posts" json:"posts"`

	// Output holds site-wide emission toggles.
	Output OutputSettings `yaml:"output" json:"output"`
}

// PostSettings are the per-post overrides.
type PostSettings struct {
	// SchemaType overrides the post-type schema selection.
	SchemaType string `yaml:"schema_type" json:"schema_type"`

	// Disabled suppresses schema output for the post entirely.
	Disabled bool `yaml:"disabled" json:"disabled"`

	// Fields holds per-property overrides.
	Fields map[string]mapping.Override `yaml:"fields" json:"fields"`
}

// OutputSettings control site-wide schema emission.
type OutputSettings struct {
	// WebsiteSchema emits the WebSite schema alongside item schemas.
	WebsiteSchema bool `yaml:"website_schema" json:"website_schema"`

	// Breadcrumbs emits a BreadcrumbList alongside item schemas.
	Breadcrumbs bool `yaml:"breadcrumbs" json:"breadcrumbs"`

	// SearchAction adds a sitelinks SearchAction to the WebSite schema.
	SearchAction bool `yaml:"search_action" json:"search_action"`

	// WordsPerMinute tunes the reading-time estimate. Zero keeps the
	// default.
	WordsPerMinute int `yaml:"words_per_minute" json:"words_per_minute"`
}

// DefaultSettings returns a usable empty configuration.
func DefaultSettings() *Settings {
	return &Settings{
		PostTypeSchemas: map[string]string{
			"post": "Article",
			"page": "WebPage",
		},
		Output: OutputSettings{
			WebsiteSchema: true,
			Breadcrumbs:   true,
		},
	}
}

// SchemaTypeFor selects the schema type for an item: per-post override first,
// then the post-type map, then the taxonomy map for term archive items.
// Empty means no schema applies.
func (s *Settings) SchemaTypeFor(item *content.Item) string {
	if item == nil {
		return ""
	}
	if post, ok := s.Posts[item.ID]; ok && post.SchemaType != "" {
		return post.SchemaType
	}
	if typeID, ok := s.PostTypeSchemas[item.Type]; ok {
		return typeID
	}
	return s.TaxonomySchemas[item.Type]
}

// DisabledFor reports whether schema output is disabled for an item.
func (s *Settings) DisabledFor(itemID int64) bool {
	post, ok := s.Posts[itemID]
	return ok && post.Disabled
}

// MappingFor parses the global field mapping for a content type.
func (s *Settings) MappingFor(postType string) mapping.Config {
	raw, ok := s.FieldMappings[postType]
	if !ok {
		return nil
	}
	return mapping.ParseConfig(raw)
}

// OverridesFor returns the per-post field overrides for an item, nil when
// none are configured.
func (s *Settings) OverridesFor(itemID int64) map[string]mapping.Override {
	post, ok := s.Posts[itemID]
	if !ok || len(post.Fields) == 0 {
		return nil
	}
	return post.Fields
}
