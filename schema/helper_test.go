package schema

import (
	"time"

	"github.com/pressmark/schemagen/content"
	"github.com/pressmark/schemagen/mapping"
)

func buildSite() content.Site {
	return content.Site{
		Name:        "Example Blog",
		URL:         "https://example.com",
		Description: "Notes from outside",
		Locale:      "en_US",
		LogoURL:     "https://example.com/logo.png",
	}
}

func buildItem() *content.Item {
	return &content.Item{
		ID:        7,
		Type:      "post",
		Title:     "Ten Hiking Trails",
		Content:   "<p>Lace up your boots and head out. The trails below cover every skill level.</p>",
		Excerpt:   "The best trails in the region.",
		URL:       "https://example.com/trails",
		Published: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
		Modified:  time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC),
		Author:    &content.Author{Name: "Dana Reyes", URL: "https://example.com/author/dana"},
		Image:     &content.Image{URL: "https://example.com/trails.jpg", Width: 1200, Height: 630},
		Terms: map[string][]content.Term{
			"category": {{Name: "Outdoors", URL: "https://example.com/category/outdoors"}},
			"post_tag": {{Name: "hiking"}, {Name: "nature"}},
		},
		Meta: map[string]any{},
	}
}

func buildCtx(item *content.Item, opts ...func(*BuildContext)) *BuildContext {
	ctx := &BuildContext{
		Item:     item,
		Resolver: mapping.NewResolver(buildSite(), nil, nil),
	}
	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}

func withMapping(raw map[string]any) func(*BuildContext) {
	return func(ctx *BuildContext) {
		ctx.Mapping = mapping.ParseConfig(raw)
	}
}

func withOverrides(ov map[string]mapping.Override) func(*BuildContext) {
	return func(ctx *BuildContext) {
		ctx.Overrides = ov
	}
}

func newResolverWithSite(site content.Site) *mapping.Resolver {
	return mapping.NewResolver(site, nil, nil)
}
