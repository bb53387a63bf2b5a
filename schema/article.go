package schema

import (
	"strings"
	"time"

	"github.com/pressmark/schemagen/sanitize"
)

// DefaultWordsPerMinute is the reading-speed assumption behind timeRequired.
const DefaultWordsPerMinute = 200

// descriptionWords is the word limit for auto-derived descriptions.
const descriptionWords = 30

// Article is the definition for Article and its aliases (BlogPosting,
// NewsArticle). Aliases share the property table and only change the emitted
// @type.
type Article struct {
	definition
}

var articleLabels = map[string]string{
	"Article":     "Article",
	"BlogPosting": "Blog Posting",
	"NewsArticle": "News Article",
}

// NewArticle creates the Article definition.
func NewArticle() *Article { return NewArticleAs("Article") }

// NewArticleAs creates an Article definition emitting the given @type.
func NewArticleAs(typeName string) *Article {
	label, ok := articleLabels[typeName]
	if !ok {
		label = typeName
	}
	return &Article{definition{
		typeName:    typeName,
		label:       label,
		description: "An article, such as a news article, blog post or piece of investigative report.",
		required:    []string{"headline", "datePublished", "author"},
		recommended: []string{"image", "dateModified", "publisher", "description", "mainEntityOfPage"},
		properties: []Property{
			{Name: "additionalType", Type: TypeURL, Description: "A more specific schema.org type.", Example: "TechArticle", DocURL: docURL("additionalType")},
			{Name: "headline", Type: TypeText, Auto: "post_title", Description: "The headline of the article.", Example: "How to Grow Tomatoes", DocURL: docURL("headline")},
			{Name: "description", Type: TypeText, Auto: "post_excerpt", Description: "A short summary of the article.", DocURL: docURL("description")},
			{Name: "image", Type: TypeImage, Auto: "featured_image", Description: "The featured image.", DocURL: docURL("image")},
			{Name: "author", Type: TypePerson, Auto: "author", Description: "The author of the article.", DocURL: docURL("author")},
			{Name: "publisher", Type: TypeOrganization, Auto: "site_name", Description: "The publishing organization.", DocURL: docURL("publisher")},
			{Name: "datePublished", Type: TypeDate, Auto: "post_date", Description: "First publication date.", Example: "2024-03-01T09:00:00+01:00", DocURL: docURL("datePublished")},
			{Name: "dateModified", Type: TypeDate, Auto: "post_modified", Description: "Last modification date.", DocURL: docURL("dateModified")},
			{Name: "mainEntityOfPage", Type: TypeURL, Auto: "post_url", Description: "The page the article is the primary subject of.", DocURL: docURL("mainEntityOfPage")},
			{Name: "url", Type: TypeURL, Auto: "post_url", Description: "Canonical URL of the article.", DocURL: docURL("url")},
			{Name: "articleSection", Type: TypeText, Auto: "category", Description: "The section the article belongs to.", Example: "Gardening", DocURL: docURL("articleSection")},
			{Name: "keywords", Type: TypeText, Auto: "tags", Description: "Comma-separated keywords.", DocURL: docURL("keywords")},
			{Name: "inLanguage", Type: TypeText, Auto: "site_language_code", Description: "Language of the article.", Example: "en", DocURL: docURL("inLanguage")},
			{Name: "wordCount", Type: TypeInteger, Auto: "post_content", Description: "Word count of the article body.", DocURL: docURL("wordCount")},
			{Name: "timeRequired", Type: TypeDuration, Auto: "post_content", Description: "Estimated reading time.", Example: "PT4M", DocURL: docURL("timeRequired")},
		},
	}}
}

// Build assembles the Article object.
func (a *Article) Build(ctx *BuildContext) *Object {
	obj := NewObject(a.typeName)
	a.fill(ctx, obj, a.auto)
	obj.Clean()
	return obj
}

func (a *Article) auto(ctx *BuildContext, property string) any {
	item := ctx.Item
	switch property {
	case "headline":
		return item.Title
	case "description":
		return autoDescription(item.Excerpt, item.Content)
	case "image":
		return ImageObjectFrom(item.Image)
	case "author":
		return PersonObject(item.Author)
	case "publisher":
		return OrganizationObject(ctx.Site())
	case "datePublished":
		return isoDate(item.Published)
	case "dateModified":
		return isoDate(item.Modified)
	case "mainEntityOfPage":
		return MainEntityObject(item.URL)
	case "url":
		return item.URL
	case "articleSection":
		if term, ok := item.PrimaryTerm("category"); ok {
			return term.Name
		}
		return nil
	case "keywords":
		return strings.Join(item.TermNames("post_tag"), ", ")
	case "inLanguage":
		return ctx.Site().LanguageCode()
	case "wordCount":
		if wc := sanitize.WordCount(item.Content); wc > 0 {
			return wc
		}
		return nil
	case "timeRequired":
		wc := sanitize.WordCount(item.Content)
		if wc == 0 {
			return nil
		}
		return DurationMinutes(ReadingTimeMinutes(wc, ctx.Options.WordsPerMinute))
	}
	return nil
}

// ReadingTimeMinutes estimates reading time for a word count, never less
// than one minute.
func ReadingTimeMinutes(words, wordsPerMinute int) int {
	if wordsPerMinute <= 0 {
		wordsPerMinute = DefaultWordsPerMinute
	}
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

// autoDescription prefers the excerpt and falls back to a word-trimmed body.
func autoDescription(excerpt, body string) any {
	if excerpt != "" {
		return excerpt
	}
	if body == "" {
		return nil
	}
	return sanitize.TrimWords(body, descriptionWords)
}

// isoDate renders a timestamp as ISO-8601, nil for the zero time.
func isoDate(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.Format(time.RFC3339)
}

// docURL returns the schema.org documentation URL for a property.
func docURL(property string) string {
	return Context + "/" + property
}
