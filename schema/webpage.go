package schema

// WebPage is the definition for WebPage and the page subtypes that alias it.
type WebPage struct {
	definition
}

var webPageLabels = map[string]string{
	"WebPage":           "Web Page",
	"AboutPage":         "About Page",
	"ContactPage":       "Contact Page",
	"CollectionPage":    "Collection Page",
	"ItemPage":          "Item Page",
	"ProfilePage":       "Profile Page",
	"SearchResultsPage": "Search Results Page",
}

// NewWebPage creates the WebPage definition.
func NewWebPage() *WebPage { return NewWebPageAs("WebPage") }

// NewWebPageAs creates a WebPage definition emitting the given @type.
func NewWebPageAs(typeName string) *WebPage {
	label, ok := webPageLabels[typeName]
	if !ok {
		label = typeName
	}
	return &WebPage{definition{
		typeName:    typeName,
		label:       label,
		description: "A generic web page. Subtypes describe the page role (about, contact, collection, ...).",
		required:    []string{"name", "url"},
		recommended: []string{"description", "datePublished", "dateModified", "inLanguage", "isPartOf", "primaryImageOfPage"},
		properties: []Property{
			{Name: "additionalType", Type: TypeURL, Description: "A more specific schema.org type.", DocURL: docURL("additionalType")},
			{Name: "name", Type: TypeText, Auto: "post_title", Description: "The page title.", DocURL: docURL("name")},
			{Name: "description", Type: TypeText, Auto: "post_excerpt", Description: "A short summary of the page.", DocURL: docURL("description")},
			{Name: "url", Type: TypeURL, Auto: "post_url", Description: "Canonical URL of the page.", DocURL: docURL("url")},
			{Name: "datePublished", Type: TypeDate, Auto: "post_date", Description: "First publication date.", DocURL: docURL("datePublished")},
			{Name: "dateModified", Type: TypeDate, Auto: "post_modified", Description: "Last modification date.", DocURL: docURL("dateModified")},
			{Name: "primaryImageOfPage", Type: TypeImage, Auto: "featured_image", Description: "The page's primary image.", DocURL: docURL("primaryImageOfPage")},
			{Name: "isPartOf", Type: TypeObject, Auto: "site_url", Description: "The WebSite the page belongs to.", DocURL: docURL("isPartOf")},
			{Name: "inLanguage", Type: TypeText, Auto: "site_language_code", Description: "Language of the page.", DocURL: docURL("inLanguage")},
			{Name: "author", Type: TypePerson, Auto: "author", Description: "The page author.", DocURL: docURL("author")},
		},
	}}
}

// Build assembles the WebPage object.
func (w *WebPage) Build(ctx *BuildContext) *Object {
	obj := NewObject(w.typeName)
	w.fill(ctx, obj, w.auto)
	obj.Clean()
	return obj
}

func (w *WebPage) auto(ctx *BuildContext, property string) any {
	item := ctx.Item
	switch property {
	case "name":
		return item.Title
	case "description":
		return autoDescription(item.Excerpt, item.Content)
	case "url":
		return item.URL
	case "datePublished":
		return isoDate(item.Published)
	case "dateModified":
		return isoDate(item.Modified)
	case "primaryImageOfPage":
		return ImageObjectFrom(item.Image)
	case "isPartOf":
		site := ctx.Site()
		if site.URL == "" {
			return nil
		}
		ref := NewNested("WebSite")
		ref.Set("@id", site.URL)
		ref.SetNonEmpty("name", site.Name)
		return ref
	case "inLanguage":
		return ctx.Site().LanguageCode()
	case "author":
		return PersonObject(item.Author)
	}
	return nil
}
