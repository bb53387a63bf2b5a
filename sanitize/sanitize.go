// Package sanitize normalizes resolved values before they enter a schema
// object. Markup is stripped and whitespace collapsed, while URLs and email
// addresses pass through verbatim. Maps that look like raw CMS metadata dumps
// are rejected wholesale so framework internals never leak into public markup.
package sanitize

import (
	"net/mail"
	"net/url"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/net/html"
)

// denyPatterns match meta keys that identify internal CMS metadata. A map
// containing any matching key is dropped entirely.
var denyPatterns = []string{
	"_edit_lock",
	"_edit_last",
	"_thumbnail_id",
	"_wp_page_template",
	"_yoast_*",
	"_aioseo_*",
	"_elementor_*",
	"_memberpress_*",
	"ms_*",
}

// String strips markup from s, decodes HTML entities, collapses whitespace
// runs and trims. Values that parse as a URL or an email address are returned
// verbatim. The function is idempotent.
func String(s string) string {
	if s == "" {
		return s
	}
	if IsURL(s) || IsEmail(s) {
		return s
	}
	return CollapseWhitespace(StripTags(s))
}

// Value sanitizes an arbitrary resolved value. Strings are cleaned per
// String, slices recurse with empty entries dropped, and maps are either
// rejected (metadata dump) or cleaned per entry. Scalars pass through.
// A value that cleans down to nothing returns nil.
func Value(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case string:
		s := String(x)
		if s == "" {
			return nil
		}
		return s
	case []string:
		out := make([]any, 0, len(x))
		for _, e := range x {
			if c := Value(e); c != nil {
				out = append(out, c)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	case []any:
		out := make([]any, 0, len(x))
		for _, e := range x {
			if c := Value(e); c != nil {
				out = append(out, c)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	case map[string]any:
		if IsMetaDump(x) {
			return nil
		}
		out := make(map[string]any, len(x))
		for k, e := range x {
			if c := Value(e); c != nil {
				out[k] = c
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	case time.Time:
		if x.IsZero() {
			return nil
		}
		return x.Format(time.RFC3339)
	default:
		return v
	}
}

// IsMetaDump reports whether the map keys match known internal-metadata
// patterns (editor locks, template assignments, SEO/membership plugin
// internals).
func IsMetaDump(m map[string]any) bool {
	for key := range m {
		for _, pattern := range denyPatterns {
			if ok, err := doublestar.Match(pattern, key); err == nil && ok {
				return true
			}
		}
	}
	return false
}

// IsURL reports whether s is an absolute http(s) URL.
func IsURL(s string) bool {
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		return false
	}
	u, err := url.Parse(s)
	return err == nil && u.Host != ""
}

// IsEmail reports whether s is a bare email address.
func IsEmail(s string) bool {
	if strings.ContainsAny(s, " <>\n\t") || !strings.Contains(s, "@") {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// StripTags removes all markup from s and decodes HTML entities. Content of
// script and style elements is discarded, not just their tags.
func StripTags(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	z := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	skip := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.StartTagToken:
			if name, _ := z.TagName(); isSkipped(string(name)) {
				skip++
			} else {
				// Block-level boundaries become whitespace so adjacent
				// paragraphs do not run together.
				b.WriteByte(' ')
			}
		case html.EndTagToken:
			if name, _ := z.TagName(); isSkipped(string(name)) && skip > 0 {
				skip--
			} else {
				b.WriteByte(' ')
			}
		case html.SelfClosingTagToken:
			b.WriteByte(' ')
		case html.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		}
	}
}

func isSkipped(tag string) bool {
	return tag == "script" || tag == "style"
}

// CollapseWhitespace reduces whitespace runs to single spaces and trims.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// WordCount returns the whitespace-tokenized word count of the HTML-stripped
// text.
func WordCount(s string) int {
	return len(strings.Fields(StripTags(s)))
}

// TrimWords strips markup from s and truncates it to at most n words,
// appending an ellipsis when content was cut.
func TrimWords(s string, n int) string {
	words := strings.Fields(StripTags(s))
	if len(words) <= n {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:n], " ") + "…"
}
