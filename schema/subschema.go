package schema

import (
	"fmt"
	"strings"

	"github.com/pressmark/schemagen/content"
	"github.com/pressmark/schemagen/mapping"
)

// PersonObject builds a Person sub-object from an author. Returns nil when
// no author or name is available.
func PersonObject(a *content.Author) *Object {
	if a == nil || a.Name == "" {
		return nil
	}
	o := NewNested("Person")
	o.Set("name", a.Name)
	o.SetNonEmpty("url", a.URL)
	o.SetNonEmpty("image", a.ImageURL)
	o.SetNonEmpty("description", a.Description)
	return o
}

// OrganizationObject builds the publisher Organization from site identity.
func OrganizationObject(site content.Site) *Object {
	if site.Name == "" {
		return nil
	}
	o := NewNested("Organization")
	o.Set("name", site.Name)
	o.SetNonEmpty("url", site.URL)
	if site.LogoURL != "" {
		logo := NewNested("ImageObject")
		logo.Set("url", site.LogoURL)
		o.Set("logo", logo)
	}
	if len(site.Profiles) > 0 {
		o.Set("sameAs", site.Profiles)
	}
	return o
}

// ImageObjectFrom builds an ImageObject from an image attachment.
func ImageObjectFrom(img *content.Image) *Object {
	if img == nil || img.URL == "" {
		return nil
	}
	o := NewNested("ImageObject")
	o.Set("url", img.URL)
	if img.Width > 0 {
		o.Set("width", img.Width)
	}
	if img.Height > 0 {
		o.Set("height", img.Height)
	}
	o.SetNonEmpty("caption", img.Caption)
	return o
}

// availabilityValues maps shorthand stock states to schema.org item
// availability URLs.
var availabilityValues = map[string]string{
	"instock":             "InStock",
	"in_stock":            "InStock",
	"outofstock":          "OutOfStock",
	"out_of_stock":        "OutOfStock",
	"preorder":            "PreOrder",
	"pre_order":           "PreOrder",
	"backorder":           "BackOrder",
	"discontinued":        "Discontinued",
	"limitedavailability": "LimitedAvailability",
	"soldout":             "SoldOut",
}

// NormalizeAvailability converts a stock state into a schema.org URL.
// Existing schema.org URLs pass through; unknown states default to InStock.
func NormalizeAvailability(v string) string {
	if strings.HasPrefix(v, "http://schema.org/") || strings.HasPrefix(v, "https://schema.org/") {
		return v
	}
	if name, ok := availabilityValues[strings.ToLower(strings.TrimSpace(v))]; ok {
		return Context + "/" + name
	}
	return Context + "/InStock"
}

// OfferObject builds an Offer from resolved offer data. price is required;
// currency falls back to the given default.
func OfferObject(data map[string]any, defaultCurrency string) *Object {
	if data == nil {
		return nil
	}
	price, ok := firstValue(data, "price")
	if !ok || mapping.IsEmpty(price) {
		return nil
	}
	o := NewNested("Offer")
	o.Set("price", price)
	currency := defaultCurrency
	if v, ok := firstValue(data, "priceCurrency", "price_currency", "currency"); ok {
		if s, ok := v.(string); ok && s != "" {
			currency = s
		}
	}
	o.Set("priceCurrency", currency)
	availability := ""
	if v, ok := firstValue(data, "availability", "stock_status"); ok {
		availability, _ = v.(string)
	}
	o.Set("availability", NormalizeAvailability(availability))
	if v, ok := firstValue(data, "url"); ok {
		o.SetNonEmpty("url", v)
	}
	return o
}

// AggregateRatingObject builds an AggregateRating with the fixed 1.0–5.0
// bounds.
func AggregateRatingObject(value, count any) *Object {
	if mapping.IsEmpty(value) || mapping.IsEmpty(count) {
		return nil
	}
	o := NewNested("AggregateRating")
	o.Set("ratingValue", value)
	o.Set("ratingCount", count)
	o.Set("bestRating", 5.0)
	o.Set("worstRating", 1.0)
	return o
}

// addressSynonyms normalizes common field spellings to schema.org
// PostalAddress property names.
var addressSynonyms = map[string]string{
	"street":           "streetAddress",
	"streetaddress":    "streetAddress",
	"street_address":   "streetAddress",
	"address1":         "streetAddress",
	"city":             "addressLocality",
	"locality":         "addressLocality",
	"addresslocality":  "addressLocality",
	"address_locality": "addressLocality",
	"region":           "addressRegion",
	"state":            "addressRegion",
	"addressregion":    "addressRegion",
	"address_region":   "addressRegion",
	"zip":              "postalCode",
	"zipcode":          "postalCode",
	"postal_code":      "postalCode",
	"postalcode":       "postalCode",
	"country":          "addressCountry",
	"addresscountry":   "addressCountry",
	"address_country":  "addressCountry",
}

// postalAddressOrder fixes the output order of PostalAddress properties.
var postalAddressOrder = []string{
	"streetAddress", "addressLocality", "addressRegion", "postalCode", "addressCountry",
}

// PostalAddressObject builds a PostalAddress from loosely-keyed address data,
// normalizing synonym keys (street→streetAddress, city→addressLocality, …).
func PostalAddressObject(data map[string]any) *Object {
	if len(data) == 0 {
		return nil
	}
	normalized := make(map[string]any, len(data))
	for key, v := range data {
		canonical, ok := addressSynonyms[strings.ToLower(key)]
		if !ok {
			continue
		}
		if mapping.IsEmpty(v) {
			continue
		}
		normalized[canonical] = v
	}
	if len(normalized) == 0 {
		return nil
	}
	o := NewNested("PostalAddress")
	for _, key := range postalAddressOrder {
		if v, ok := normalized[key]; ok {
			o.Set(key, v)
		}
	}
	return o
}

// GeoObject builds GeoCoordinates. Both coordinates are required.
func GeoObject(latitude, longitude any) *Object {
	if mapping.IsEmpty(latitude) || mapping.IsEmpty(longitude) {
		return nil
	}
	o := NewNested("GeoCoordinates")
	o.Set("latitude", latitude)
	o.Set("longitude", longitude)
	return o
}

// PlaceObject builds a Place with an optional PostalAddress and geo
// coordinates from loosely-keyed location data.
func PlaceObject(data map[string]any) *Object {
	if len(data) == 0 {
		return nil
	}
	o := NewNested("Place")
	if name, ok := firstValue(data, "name"); ok {
		o.SetNonEmpty("name", name)
	}
	if addr := PostalAddressObject(data); addr != nil {
		o.Set("address", addr)
	}
	lat, _ := firstValue(data, "latitude", "lat")
	lng, _ := firstValue(data, "longitude", "lng", "lon")
	if geo := GeoObject(lat, lng); geo != nil {
		o.Set("geo", geo)
	}
	if !o.hasContent() {
		return nil
	}
	return o
}

// MainEntityObject references the canonical page for mainEntityOfPage.
func MainEntityObject(url string) *Object {
	if url == "" {
		return nil
	}
	o := NewNested("WebPage")
	o.Set("@id", url)
	return o
}

// DurationMinutes renders a minute count as an ISO-8601 duration ("PT5M").
func DurationMinutes(minutes int) string {
	return fmt.Sprintf("PT%dM", minutes)
}

// firstValue returns the first present key from data.
func firstValue(data map[string]any, keys ...string) (any, bool) {
	for _, key := range keys {
		if v, ok := data[key]; ok {
			return v, true
		}
	}
	return nil, false
}

// asMap coerces a resolved value into a loosely-keyed map for sub-object
// builders.
func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}
