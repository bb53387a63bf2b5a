package schema

// LocalBusiness is the definition for physical businesses with address,
// coordinates and opening hours.
type LocalBusiness struct {
	definition
}

// NewLocalBusiness creates the LocalBusiness definition.
func NewLocalBusiness() *LocalBusiness {
	return &LocalBusiness{definition{
		typeName:    "LocalBusiness",
		label:       "Local Business",
		description: "A physical business location with address and opening hours.",
		required:    []string{"name", "address"},
		recommended: []string{"telephone", "openingHours", "geo", "priceRange", "image", "url"},
		properties: []Property{
			{Name: "additionalType", Type: TypeURL, Description: "A more specific schema.org type.", Example: "Restaurant", DocURL: docURL("additionalType")},
			{Name: "name", Type: TypeText, Auto: "post_title", Description: "The business name.", DocURL: docURL("name")},
			{Name: "description", Type: TypeText, Auto: "post_excerpt", Description: "What the business offers.", DocURL: docURL("description")},
			{Name: "image", Type: TypeImage, Auto: "featured_image", Description: "A photo of the business.", DocURL: docURL("image")},
			{Name: "url", Type: TypeURL, Auto: "post_url", Description: "The business page URL.", DocURL: docURL("url")},
			{Name: "telephone", Type: TypeText, Auto: "meta:_phone", Description: "Contact phone number.", DocURL: docURL("telephone")},
			{Name: "priceRange", Type: TypeText, Auto: "meta:_price_range", Description: "Relative price indication.", Example: "$$", DocURL: docURL("priceRange")},
			{Name: "address", Type: TypeObject, Auto: "meta:_address", Description: "Postal address of the location.", DocURL: docURL("address")},
			{Name: "geo", Type: TypeObject, Auto: "meta:_geo", Description: "Geographic coordinates.", DocURL: docURL("geo")},
			{Name: "openingHours", Type: TypeArray, Auto: "meta:_opening_hours", Description: "Opening hour specifications.", Example: "Mo-Fr 09:00-18:00", DocURL: docURL("openingHours")},
		},
	}}
}

// Build assembles the LocalBusiness object.
func (l *LocalBusiness) Build(ctx *BuildContext) *Object {
	obj := NewObject(l.typeName)
	l.fill(ctx, obj, l.auto)
	normalizeAddress(obj)

	if v, ok := obj.Get("geo"); ok {
		if m := asMap(v); m != nil {
			lat, _ := firstValue(m, "latitude", "lat")
			lng, _ := firstValue(m, "longitude", "lng", "lon")
			if geo := GeoObject(lat, lng); geo != nil {
				obj.Set("geo", geo)
			} else {
				obj.Delete("geo")
			}
		}
	}

	obj.Clean()
	return obj
}

func (l *LocalBusiness) auto(ctx *BuildContext, property string) any {
	item := ctx.Item
	switch property {
	case "name":
		return item.Title
	case "description":
		return autoDescription(item.Excerpt, item.Content)
	case "image":
		return ImageObjectFrom(item.Image)
	case "url":
		return item.URL
	case "telephone":
		return item.MetaValue("_phone")
	case "priceRange":
		return item.MetaValue("_price_range")
	case "address":
		return PostalAddressObject(asMap(item.MetaValue("_address")))
	case "geo":
		m := asMap(item.MetaValue("_geo"))
		if m == nil {
			return nil
		}
		lat, _ := firstValue(m, "latitude", "lat")
		lng, _ := firstValue(m, "longitude", "lng", "lon")
		return GeoObject(lat, lng)
	case "openingHours":
		return item.MetaValue("_opening_hours")
	}
	return nil
}
