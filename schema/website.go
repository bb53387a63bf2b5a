package schema

// WebSite is the site-wide WebSite schema, emitted alongside the item schema.
type WebSite struct {
	definition
}

// NewWebSite creates the WebSite definition.
func NewWebSite() *WebSite {
	return &WebSite{definition{
		typeName:    "WebSite",
		label:       "Web Site",
		description: "Site-wide identity: name, URL and optional internal search action.",
		required:    []string{"name", "url"},
		recommended: []string{"description", "inLanguage", "publisher"},
		properties: []Property{
			{Name: "name", Type: TypeText, Auto: "site_name", Description: "The site name.", DocURL: docURL("name")},
			{Name: "url", Type: TypeURL, Auto: "site_url", Description: "The site root URL.", DocURL: docURL("url")},
			{Name: "description", Type: TypeText, Auto: "site_description", Description: "The site tagline.", DocURL: docURL("description")},
			{Name: "inLanguage", Type: TypeText, Auto: "site_language_code", Description: "Primary site language.", DocURL: docURL("inLanguage")},
			{Name: "publisher", Type: TypeOrganization, Auto: "site_name", Description: "The publishing organization.", DocURL: docURL("publisher")},
			{Name: "potentialAction", Type: TypeObject, Description: "Internal search action for sitelinks search box.", DocURL: docURL("potentialAction")},
		},
	}}
}

// Build assembles the WebSite object.
func (w *WebSite) Build(ctx *BuildContext) *Object {
	obj := NewObject(w.typeName)
	w.fill(ctx, obj, w.auto)
	obj.Clean()
	return obj
}

func (w *WebSite) auto(ctx *BuildContext, property string) any {
	site := ctx.Site()
	switch property {
	case "name":
		return site.Name
	case "url":
		return site.URL
	case "description":
		return site.Description
	case "inLanguage":
		return site.LanguageCode()
	case "publisher":
		return OrganizationObject(site)
	case "potentialAction":
		if !ctx.Options.SearchAction || site.URL == "" {
			return nil
		}
		return searchActionObject(site.URL)
	}
	return nil
}

// searchActionObject builds the sitelinks SearchAction for the site search.
func searchActionObject(siteURL string) *Object {
	action := NewNested("SearchAction")
	target := NewNested("EntryPoint")
	target.Set("urlTemplate", siteURL+"/?s={search_term_string}")
	action.Set("target", target)
	action.Set("query-input", "required name=search_term_string")
	return action
}
