package schema

import "github.com/pressmark/schemagen/mapping"

// Product is the definition for commerce products. Offer data comes from the
// commerce integration's meta fields unless explicitly mapped.
type Product struct {
	definition
}

// NewProduct creates the Product definition.
func NewProduct() *Product {
	return &Product{definition{
		typeName:    "Product",
		label:       "Product",
		description: "A product offered for sale, with price, availability and rating data.",
		required:    []string{"name", "price"},
		recommended: []string{"review", "aggregateRating", "image", "description", "sku", "brand"},
		properties: []Property{
			{Name: "additionalType", Type: TypeURL, Description: "A more specific schema.org type.", DocURL: docURL("additionalType")},
			{Name: "name", Type: TypeText, Auto: "post_title", Description: "The product name.", DocURL: docURL("name")},
			{Name: "description", Type: TypeText, Auto: "post_excerpt", Description: "A short product description.", DocURL: docURL("description")},
			{Name: "image", Type: TypeImage, Auto: "featured_image", Description: "The product image.", DocURL: docURL("image")},
			{Name: "url", Type: TypeURL, Auto: "post_url", Description: "The product page URL.", DocURL: docURL("url")},
			{Name: "sku", Type: TypeText, Auto: "meta:_sku", Description: "Stock keeping unit.", Example: "TSHIRT-XL-RED", DocURL: docURL("sku")},
			{Name: "brand", Type: TypeObject, Auto: "taxonomy:product_brand", Description: "The product brand.", DocURL: docURL("brand")},
			{Name: "price", Type: TypeNumber, Auto: "meta:_price", Description: "The offer price.", Example: "49.90", DocURL: docURL("price")},
			{Name: "priceCurrency", Type: TypeText, Auto: "site_currency", Description: "ISO 4217 currency code.", Example: "EUR", DocURL: docURL("priceCurrency")},
			{Name: "availability", Type: TypeText, Auto: "meta:_stock_status", Description: "Stock availability.", Example: "InStock", DocURL: docURL("availability")},
			{Name: "aggregateRating", Type: TypeObject, Auto: "meta:_rating", Description: "Aggregated customer rating.", DocURL: docURL("aggregateRating")},
			{Name: "review", Type: TypeObject, Description: "A customer review.", DocURL: docURL("review")},
		},
	}}
}

// Build assembles the Product object. When a price is present, an Offer
// sub-object is derived from the flat price/currency/availability properties.
func (p *Product) Build(ctx *BuildContext) *Object {
	obj := NewObject(p.typeName)
	p.fill(ctx, obj, p.auto)

	if obj.Has("price") {
		price, _ := obj.Get("price")
		data := map[string]any{"price": price, "url": ctx.Item.URL}
		if v, ok := obj.Get("priceCurrency"); ok {
			data["priceCurrency"] = v
		}
		if v, ok := obj.Get("availability"); ok {
			data["availability"] = v
		}
		if offer := OfferObject(data, currencyFor(ctx)); offer != nil {
			obj.Set("offers", offer)
		}
	} else {
		// Currency and stock state are meaningless without a price.
		obj.Delete("priceCurrency")
		obj.Delete("availability")
	}

	obj.Clean()
	return obj
}

func (p *Product) auto(ctx *BuildContext, property string) any {
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
	case "sku":
		return item.MetaValue("_sku")
	case "brand":
		if term, ok := item.PrimaryTerm("product_brand"); ok {
			brand := NewNested("Brand")
			brand.Set("name", term.Name)
			return brand
		}
		return nil
	case "price":
		return item.MetaValue("_price")
	case "priceCurrency":
		return currencyFor(ctx)
	case "availability":
		if v, ok := item.MetaValue("_stock_status").(string); ok && v != "" {
			return NormalizeAvailability(v)
		}
		return nil
	case "aggregateRating":
		return AggregateRatingObject(
			item.MetaValue("_rating_value"),
			item.MetaValue("_rating_count"),
		)
	}
	return nil
}

func currencyFor(ctx *BuildContext) string {
	if c := ctx.Site().Currency; c != "" {
		return c
	}
	return mapping.DefaultCurrency
}
