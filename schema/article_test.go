package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleBuild(t *testing.T) {
	obj := NewArticle().Build(buildCtx(buildItem()))

	assert.Equal(t, "Article", obj.Type())

	headline, _ := obj.Get("headline")
	assert.Equal(t, "Ten Hiking Trails", headline)

	description, _ := obj.Get("description")
	assert.Equal(t, "The best trails in the region.", description)

	datePublished, _ := obj.Get("datePublished")
	assert.Equal(t, "2024-03-01T09:00:00Z", datePublished)

	author, ok := obj.Get("author")
	require.True(t, ok)
	person := author.(*Object)
	assert.Equal(t, "Person", person.Type())
	name, _ := person.Get("name")
	assert.Equal(t, "Dana Reyes", name)

	publisher, ok := obj.Get("publisher")
	require.True(t, ok)
	org := publisher.(*Object)
	assert.Equal(t, "Organization", org.Type())

	section, _ := obj.Get("articleSection")
	assert.Equal(t, "Outdoors", section)

	keywords, _ := obj.Get("keywords")
	assert.Equal(t, "hiking, nature", keywords)

	lang, _ := obj.Get("inLanguage")
	assert.Equal(t, "en", lang)

	wc, ok := obj.Get("wordCount")
	require.True(t, ok)
	assert.Greater(t, wc.(int), 0)

	timeRequired, _ := obj.Get("timeRequired")
	assert.Equal(t, "PT1M", timeRequired)
}

func TestArticleAliasChangesTypeOnly(t *testing.T) {
	blog := NewArticleAs("BlogPosting")
	obj := blog.Build(buildCtx(buildItem()))
	assert.Equal(t, "BlogPosting", obj.Type())
	assert.Equal(t, "Blog Posting", blog.Label())
	assert.Equal(t, NewArticle().RequiredProperties(), blog.RequiredProperties())
}

func TestArticleDescriptionFallsBackToBody(t *testing.T) {
	item := buildItem()
	item.Excerpt = ""
	obj := NewArticle().Build(buildCtx(item))

	description, ok := obj.Get("description")
	require.True(t, ok)
	assert.NotContains(t, description.(string), "<p>")
}

func TestArticleOmitsMissingData(t *testing.T) {
	item := buildItem()
	item.Author = nil
	item.Image = nil
	item.Content = ""
	item.Terms = nil

	obj := NewArticle().Build(buildCtx(item))

	for _, key := range []string{"author", "image", "wordCount", "timeRequired", "articleSection", "keywords"} {
		_, ok := obj.Get(key)
		assert.False(t, ok, "expected %s to be omitted", key)
	}
}

func TestReadingTimeMinutes(t *testing.T) {
	assert.Equal(t, 1, ReadingTimeMinutes(50, 0))
	assert.Equal(t, 1, ReadingTimeMinutes(200, 200))
	assert.Equal(t, 2, ReadingTimeMinutes(201, 200))
	assert.Equal(t, 4, ReadingTimeMinutes(400, 100))
	assert.Equal(t, 1, ReadingTimeMinutes(0, 200))
}

func TestArticleReadingTimeHonorsWordsPerMinute(t *testing.T) {
	item := buildItem()
	item.Content = "<p>" + strings.Repeat("word ", 300) + "</p>"

	ctx := buildCtx(item)
	ctx.Options.WordsPerMinute = 100
	obj := NewArticle().Build(ctx)

	timeRequired, _ := obj.Get("timeRequired")
	assert.Equal(t, "PT3M", timeRequired)
}
