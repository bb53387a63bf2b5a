package schema

// Organization is the definition for company and publisher pages.
type Organization struct {
	definition
}

// NewOrganization creates the Organization definition.
func NewOrganization() *Organization {
	return &Organization{definition{
		typeName:    "Organization",
		label:       "Organization",
		description: "An organization such as a company, NGO or institution.",
		required:    []string{"name", "url"},
		recommended: []string{"logo", "description", "sameAs", "contactPoint"},
		properties: []Property{
			{Name: "additionalType", Type: TypeURL, Description: "A more specific schema.org type.", Example: "NGO", DocURL: docURL("additionalType")},
			{Name: "name", Type: TypeText, Auto: "site_name", Description: "The organization name.", DocURL: docURL("name")},
			{Name: "url", Type: TypeURL, Auto: "site_url", Description: "The organization's website.", DocURL: docURL("url")},
			{Name: "logo", Type: TypeImage, Auto: "site_logo", Description: "The organization logo.", DocURL: docURL("logo")},
			{Name: "description", Type: TypeText, Auto: "site_description", Description: "What the organization does.", DocURL: docURL("description")},
			{Name: "email", Type: TypeText, Auto: "meta:_email", Description: "Contact email address.", DocURL: docURL("email")},
			{Name: "telephone", Type: TypeText, Auto: "meta:_phone", Description: "Contact phone number.", DocURL: docURL("telephone")},
			{Name: "address", Type: TypeObject, Auto: "meta:_address", Description: "Postal address.", DocURL: docURL("address")},
			{Name: "sameAs", Type: TypeArray, Description: "Social profile URLs.", DocURL: docURL("sameAs")},
			{Name: "contactPoint", Type: TypeObject, Description: "Customer service contact point.", DocURL: docURL("contactPoint")},
		},
	}}
}

// Build assembles the Organization object.
func (o *Organization) Build(ctx *BuildContext) *Object {
	obj := NewObject(o.typeName)
	o.fill(ctx, obj, o.auto)
	normalizeAddress(obj)
	obj.Clean()
	return obj
}

func (o *Organization) auto(ctx *BuildContext, property string) any {
	return organizationAuto(ctx, property)
}

func organizationAuto(ctx *BuildContext, property string) any {
	item := ctx.Item
	site := ctx.Site()
	switch property {
	case "name":
		if site.Name != "" {
			return site.Name
		}
		return item.Title
	case "url":
		if site.URL != "" {
			return site.URL
		}
		return item.URL
	case "logo":
		if site.LogoURL == "" {
			return nil
		}
		logo := NewNested("ImageObject")
		logo.Set("url", site.LogoURL)
		return logo
	case "description":
		if site.Description != "" {
			return site.Description
		}
		return autoDescription(item.Excerpt, item.Content)
	case "email":
		return item.MetaValue("_email")
	case "telephone":
		return item.MetaValue("_phone")
	case "address":
		return PostalAddressObject(asMap(item.MetaValue("_address")))
	case "sameAs":
		if len(site.Profiles) > 0 {
			return site.Profiles
		}
		return nil
	}
	return nil
}

// normalizeAddress converts a loosely-keyed mapped address into a
// PostalAddress sub-object.
func normalizeAddress(obj *Object) {
	v, ok := obj.Get("address")
	if !ok {
		return
	}
	if m := asMap(v); m != nil {
		if addr := PostalAddressObject(m); addr != nil {
			obj.Set("address", addr)
		} else {
			obj.Delete("address")
		}
	}
}
