package schema

import "github.com/pressmark/schemagen/mapping"

// Review is the definition for standalone review posts.
type Review struct {
	definition
}

// NewReview creates the Review definition.
func NewReview() *Review {
	return &Review{definition{
		typeName:    "Review",
		label:       "Review",
		description: "A review of an item, with a rating and the reviewed thing.",
		required:    []string{"itemReviewed", "reviewRating", "author"},
		recommended: []string{"datePublished", "reviewBody"},
		properties: []Property{
			{Name: "additionalType", Type: TypeURL, Description: "A more specific schema.org type.", DocURL: docURL("additionalType")},
			{Name: "itemReviewed", Type: TypeObject, Auto: "meta:_reviewed_item", Description: "The thing being reviewed.", DocURL: docURL("itemReviewed")},
			{Name: "reviewRating", Type: TypeObject, Auto: "meta:_review_rating", Description: "The rating given.", DocURL: docURL("reviewRating")},
			{Name: "author", Type: TypePerson, Auto: "author", Description: "The review author.", DocURL: docURL("author")},
			{Name: "reviewBody", Type: TypeText, Auto: "post_content", Description: "The review text.", DocURL: docURL("reviewBody")},
			{Name: "datePublished", Type: TypeDate, Auto: "post_date", Description: "Publication date.", DocURL: docURL("datePublished")},
		},
	}}
}

// Build assembles the Review object.
func (r *Review) Build(ctx *BuildContext) *Object {
	obj := NewObject(r.typeName)
	r.fill(ctx, obj, r.auto)

	if v, ok := obj.Get("itemReviewed"); ok {
		if s, ok := v.(string); ok && s != "" {
			reviewed := NewNested("Thing")
			reviewed.Set("name", s)
			obj.Set("itemReviewed", reviewed)
		}
	}
	if v, ok := obj.Get("reviewRating"); ok {
		if rating := ratingObject(v); rating != nil {
			obj.Set("reviewRating", rating)
		} else {
			obj.Delete("reviewRating")
		}
	}

	obj.Clean()
	return obj
}

func (r *Review) auto(ctx *BuildContext, property string) any {
	item := ctx.Item
	switch property {
	case "itemReviewed":
		return item.MetaValue("_reviewed_item")
	case "reviewRating":
		return item.MetaValue("_review_rating")
	case "author":
		return PersonObject(item.Author)
	case "reviewBody":
		return item.Content
	case "datePublished":
		return isoDate(item.Published)
	}
	return nil
}

// ratingObject builds a Rating from a scalar value or a loose map with the
// fixed 1.0–5.0 bounds.
func ratingObject(v any) *Object {
	var value any
	switch x := v.(type) {
	case *Object:
		return x
	case map[string]any:
		value, _ = firstValue(x, "ratingValue", "value", "rating")
	default:
		value = v
	}
	if mapping.IsEmpty(value) {
		return nil
	}
	o := NewNested("Rating")
	o.Set("ratingValue", value)
	o.Set("bestRating", 5.0)
	o.Set("worstRating", 1.0)
	return o
}
