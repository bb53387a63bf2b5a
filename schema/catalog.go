package schema

// typeGroups is the display grouping of the type catalog, used by admin
// tooling to render the type picker.
var typeGroups = map[string][]string{
	"Articles": {
		"Article", "BlogPosting", "NewsArticle",
	},
	"Pages": {
		"WebPage", "AboutPage", "ContactPage", "CollectionPage", "ItemPage",
		"ProfilePage", "SearchResultsPage", "WebSite", "FAQPage",
	},
	"Commerce": {
		"Product", "Review",
	},
	"Organizations & People": {
		"Organization", "LocalBusiness", "Person", "JobPosting",
	},
	"Events": {
		"Event",
	},
	"Media & Guides": {
		"VideoObject", "Recipe", "HowTo", "Book", "Course",
	},
	"Navigation": {
		"BreadcrumbList",
	},
}

// registerBuiltins registers the full built-in catalog. A failure here is a
// programmer error in a definition and panics at construction time.
func registerBuiltins(f *Factory) {
	register := func(typeID string, ctor Constructor) {
		if err := f.RegisterType(typeID, ctor); err != nil {
			panic(err)
		}
	}

	register("Article", func() Definition { return NewArticle() })
	register("BlogPosting", func() Definition { return NewArticleAs("BlogPosting") })
	register("NewsArticle", func() Definition { return NewArticleAs("NewsArticle") })

	register("WebPage", func() Definition { return NewWebPage() })
	for _, alias := range []string{
		"AboutPage", "ContactPage", "CollectionPage", "ItemPage",
		"ProfilePage", "SearchResultsPage",
	} {
		alias := alias
		register(alias, func() Definition { return NewWebPageAs(alias) })
	}

	register("WebSite", func() Definition { return NewWebSite() })
	register("FAQPage", func() Definition { return NewFAQPage() })
	register("Product", func() Definition { return NewProduct() })
	register("Review", func() Definition { return NewReview() })
	register("Organization", func() Definition { return NewOrganization() })
	register("LocalBusiness", func() Definition { return NewLocalBusiness() })
	register("Person", func() Definition { return NewPerson() })
	register("JobPosting", func() Definition { return NewJobPosting() })
	register("Event", func() Definition { return NewEvent() })
	register("VideoObject", func() Definition { return NewVideoObject() })
	register("Recipe", func() Definition { return NewRecipe() })
	register("HowTo", func() Definition { return NewHowTo() })
	register("Book", func() Definition { return NewBook() })
	register("Course", func() Definition { return NewCourse() })
	register("BreadcrumbList", func() Definition { return NewBreadcrumbList() })
}

// TypesGrouped returns the catalog grouped for display: category → type
// identifier → label. Registered types outside the grouping table land in
// "Other".
func (f *Factory) TypesGrouped() map[string]map[string]string {
	grouped := make(map[string]map[string]string)
	seen := make(map[string]bool)

	for category, typeIDs := range typeGroups {
		for _, typeID := range typeIDs {
			def := f.Create(typeID)
			if def == nil {
				continue
			}
			if grouped[category] == nil {
				grouped[category] = make(map[string]string)
			}
			grouped[category][typeID] = def.Label()
			seen[typeID] = true
		}
	}

	for _, typeID := range f.TypeIDs() {
		if seen[typeID] {
			continue
		}
		def := f.Create(typeID)
		if def == nil {
			continue
		}
		if grouped["Other"] == nil {
			grouped["Other"] = make(map[string]string)
		}
		grouped["Other"][typeID] = def.Label()
	}

	return grouped
}
