package schema

// Person is the definition for author or profile pages.
type Person struct {
	definition
}

// NewPerson creates the Person definition.
func NewPerson() *Person {
	return &Person{definition{
		typeName:    "Person",
		label:       "Person",
		description: "A person, typically used on author or profile pages.",
		required:    []string{"name"},
		recommended: []string{"url", "image", "description", "jobTitle", "sameAs"},
		properties: []Property{
			{Name: "additionalType", Type: TypeURL, Description: "A more specific schema.org type.", DocURL: docURL("additionalType")},
			{Name: "name", Type: TypeText, Auto: "author", Description: "The person's name.", DocURL: docURL("name")},
			{Name: "url", Type: TypeURL, Auto: "post_url", Description: "The profile URL.", DocURL: docURL("url")},
			{Name: "image", Type: TypeImage, Auto: "featured_image", Description: "A portrait image.", DocURL: docURL("image")},
			{Name: "description", Type: TypeText, Auto: "post_excerpt", Description: "A short biography.", DocURL: docURL("description")},
			{Name: "jobTitle", Type: TypeText, Auto: "meta:_job_title", Description: "The person's job title.", Example: "Technical Writer", DocURL: docURL("jobTitle")},
			{Name: "email", Type: TypeText, Auto: "meta:_email", Description: "Contact email address.", DocURL: docURL("email")},
			{Name: "sameAs", Type: TypeArray, Auto: "meta:_profiles", Description: "Social profile URLs.", DocURL: docURL("sameAs")},
		},
	}}
}

// Build assembles the Person object.
func (p *Person) Build(ctx *BuildContext) *Object {
	obj := NewObject(p.typeName)
	p.fill(ctx, obj, p.auto)
	obj.Clean()
	return obj
}

func (p *Person) auto(ctx *BuildContext, property string) any {
	item := ctx.Item
	switch property {
	case "name":
		if item.Author != nil {
			return item.Author.Name
		}
		return item.Title
	case "url":
		if item.Author != nil && item.Author.URL != "" {
			return item.Author.URL
		}
		return item.URL
	case "image":
		if item.Author != nil && item.Author.ImageURL != "" {
			return item.Author.ImageURL
		}
		return ImageObjectFrom(item.Image)
	case "description":
		if item.Author != nil && item.Author.Description != "" {
			return item.Author.Description
		}
		return autoDescription(item.Excerpt, item.Content)
	case "jobTitle":
		return item.MetaValue("_job_title")
	case "email":
		return item.MetaValue("_email")
	case "sameAs":
		return item.MetaValue("_profiles")
	}
	return nil
}
