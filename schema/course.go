package schema

// Course is the definition for educational courses.
type Course struct {
	definition
}

// NewCourse creates the Course definition.
func NewCourse() *Course {
	return &Course{definition{
		typeName:    "Course",
		label:       "Course",
		description: "An educational course offered by a provider.",
		required:    []string{"name", "description", "provider"},
		recommended: []string{"url", "image", "courseCode"},
		properties: []Property{
			{Name: "additionalType", Type: TypeURL, Description: "A more specific schema.org type.", DocURL: docURL("additionalType")},
			{Name: "name", Type: TypeText, Auto: "post_title", Description: "The course name.", DocURL: docURL("name")},
			{Name: "description", Type: TypeText, Auto: "post_excerpt", Description: "What the course covers.", DocURL: docURL("description")},
			{Name: "url", Type: TypeURL, Auto: "post_url", Description: "The course page URL.", DocURL: docURL("url")},
			{Name: "image", Type: TypeImage, Auto: "featured_image", Description: "A course image.", DocURL: docURL("image")},
			{Name: "courseCode", Type: TypeText, Auto: "meta:_course_code", Description: "Internal course identifier.", Example: "CS-101", DocURL: docURL("courseCode")},
			{Name: "provider", Type: TypeOrganization, Auto: "site_name", Description: "The organization offering the course.", DocURL: docURL("provider")},
		},
	}}
}

// Build assembles the Course object.
func (c *Course) Build(ctx *BuildContext) *Object {
	obj := NewObject(c.typeName)
	c.fill(ctx, obj, c.auto)
	obj.Clean()
	return obj
}

func (c *Course) auto(ctx *BuildContext, property string) any {
	item := ctx.Item
	switch property {
	case "name":
		return item.Title
	case "description":
		return autoDescription(item.Excerpt, item.Content)
	case "url":
		return item.URL
	case "image":
		return ImageObjectFrom(item.Image)
	case "courseCode":
		return item.MetaValue("_course_code")
	case "provider":
		return OrganizationObject(ctx.Site())
	}
	return nil
}
