// Package content defines the content model that schemas are built from.
// Items are snapshots of host-CMS content: the engine reads them but never
// mutates or persists them.
package content

import (
	"strings"
	"time"
)

// Item is a single piece of content (a post, page, or term archive).
// An Item is immutable for the duration of a schema build.
type Item struct {
	// ID is the host CMS identifier.
	ID int64 `yaml:"id" json:"id"`

	// Type is the content type tag (e.g. "post", "page", "product").
	Type string `yaml:"type" json:"type"`

	Title   string `yaml:"title" json:"title"`
	Content string `yaml:"content" json:"content"`
	Excerpt string `yaml:"excerpt" json:"excerpt"`
	URL     string `yaml:"url" json:"url"`

	Published time.Time `yaml:"published" json:"published"`
	Modified  time.Time `yaml:"modified" json:"modified"`

	Author *Author `yaml:"author,omitempty" json:"author,omitempty"`

	// Image is the featured image, if any.
	Image *Image `yaml:"image,omitempty" json:"image,omitempty"`

	// Terms maps taxonomy slugs to their assigned terms.
	Terms map[string][]Term `yaml:"terms,omitempty" json:"terms,omitempty"`

	// Meta holds raw custom-field values keyed by meta key.
	Meta map[string]any `yaml:"meta,omitempty" json:"meta,omitempty"`

	// Ancestors is the parent chain for hierarchical content, ordered
	// root-first. Empty for flat content types.
	Ancestors []PageRef `yaml:"ancestors,omitempty" json:"ancestors,omitempty"`
}

// Author describes the content author.
type Author struct {
	Name        string `yaml:"name" json:"name"`
	URL         string `yaml:"url,omitempty" json:"url,omitempty"`
	ImageURL    string `yaml:"image_url,omitempty" json:"image_url,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Image describes an image attachment.
type Image struct {
	URL     string `yaml:"url" json:"url"`
	Width   int    `yaml:"width,omitempty" json:"width,omitempty"`
	Height  int    `yaml:"height,omitempty" json:"height,omitempty"`
	Caption string `yaml:"caption,omitempty" json:"caption,omitempty"`
	Alt     string `yaml:"alt,omitempty" json:"alt,omitempty"`
}

// Term is a taxonomy term assigned to an item.
type Term struct {
	Name string `yaml:"name" json:"name"`
	Slug string `yaml:"slug,omitempty" json:"slug,omitempty"`
	URL  string `yaml:"url,omitempty" json:"url,omitempty"`
}

// PageRef is a lightweight reference to another content item, used for
// ancestor chains in breadcrumbs.
type PageRef struct {
	Title string `yaml:"title" json:"title"`
	URL   string `yaml:"url" json:"url"`
}

// Site holds site-wide identity used for publisher, WebSite and breadcrumb
// schemas.
type Site struct {
	Name        string `yaml:"name" json:"name"`
	URL         string `yaml:"url" json:"url"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Locale is the full locale string, e.g. "de_DE" or "en-US".
	Locale string `yaml:"locale,omitempty" json:"locale,omitempty"`

	// Currency is the ISO 4217 code reported by the commerce integration.
	// Empty means no integration is active and the default applies.
	Currency string `yaml:"currency,omitempty" json:"currency,omitempty"`

	LogoURL string `yaml:"logo_url,omitempty" json:"logo_url,omitempty"`

	// Profiles lists social profile URLs for the sameAs property.
	Profiles []string `yaml:"profiles,omitempty" json:"profiles,omitempty"`
}

// LanguageCode returns the primary language subtag of the locale, e.g. "de"
// for "de_DE". Empty locale yields an empty string.
func (s Site) LanguageCode() string {
	if s.Locale == "" {
		return ""
	}
	code := strings.ReplaceAll(s.Locale, "_", "-")
	if i := strings.Index(code, "-"); i > 0 {
		code = code[:i]
	}
	return strings.ToLower(code)
}

// TermNames returns the names of all terms in the given taxonomy, or nil when
// the taxonomy is absent.
func (i *Item) TermNames(taxonomy string) []string {
	terms, ok := i.Terms[taxonomy]
	if !ok || len(terms) == 0 {
		return nil
	}
	names := make([]string, 0, len(terms))
	for _, t := range terms {
		if t.Name != "" {
			names = append(names, t.Name)
		}
	}
	if len(names) == 0 {
		return nil
	}
	return names
}

// MetaValue returns the raw meta value for key, or nil when absent.
func (i *Item) MetaValue(key string) any {
	if i.Meta == nil {
		return nil
	}
	v, ok := i.Meta[key]
	if !ok {
		return nil
	}
	return v
}

// PrimaryTerm returns the first term of the given taxonomy, if any.
func (i *Item) PrimaryTerm(taxonomy string) (Term, bool) {
	terms := i.Terms[taxonomy]
	if len(terms) == 0 {
		return Term{}, false
	}
	return terms[0], true
}
