package schema

// Book is the definition for book pages.
type Book struct {
	definition
}

// NewBook creates the Book definition.
func NewBook() *Book {
	return &Book{definition{
		typeName:    "Book",
		label:       "Book",
		description: "A book or e-book.",
		required:    []string{"name", "author"},
		recommended: []string{"isbn", "bookFormat", "publisher", "datePublished", "image"},
		properties: []Property{
			{Name: "additionalType", Type: TypeURL, Description: "A more specific schema.org type.", Example: "Audiobook", DocURL: docURL("additionalType")},
			{Name: "name", Type: TypeText, Auto: "post_title", Description: "The book title.", DocURL: docURL("name")},
			{Name: "author", Type: TypePerson, Auto: "author", Description: "The book author.", DocURL: docURL("author")},
			{Name: "description", Type: TypeText, Auto: "post_excerpt", Description: "A short synopsis.", DocURL: docURL("description")},
			{Name: "image", Type: TypeImage, Auto: "featured_image", Description: "The cover image.", DocURL: docURL("image")},
			{Name: "isbn", Type: TypeText, Auto: "meta:_isbn", Description: "ISBN identifier.", Example: "978-3-16-148410-0", DocURL: docURL("isbn")},
			{Name: "bookFormat", Type: TypeText, Auto: "meta:_book_format", Description: "Format of the book.", Example: "Hardcover", DocURL: docURL("bookFormat")},
			{Name: "numberOfPages", Type: TypeInteger, Auto: "meta:_pages", Description: "Page count.", DocURL: docURL("numberOfPages")},
			{Name: "publisher", Type: TypeOrganization, Auto: "site_name", Description: "The publishing organization.", DocURL: docURL("publisher")},
			{Name: "datePublished", Type: TypeDate, Auto: "post_date", Description: "Publication date.", DocURL: docURL("datePublished")},
		},
	}}
}

// Build assembles the Book object.
func (b *Book) Build(ctx *BuildContext) *Object {
	obj := NewObject(b.typeName)
	b.fill(ctx, obj, b.auto)
	normalizeEnum(obj, "bookFormat")
	obj.Clean()
	return obj
}

func (b *Book) auto(ctx *BuildContext, property string) any {
	item := ctx.Item
	switch property {
	case "name":
		return item.Title
	case "author":
		return PersonObject(item.Author)
	case "description":
		return autoDescription(item.Excerpt, item.Content)
	case "image":
		return ImageObjectFrom(item.Image)
	case "isbn":
		return item.MetaValue("_isbn")
	case "bookFormat":
		return item.MetaValue("_book_format")
	case "numberOfPages":
		return item.MetaValue("_pages")
	case "publisher":
		return OrganizationObject(ctx.Site())
	case "datePublished":
		return isoDate(item.Published)
	}
	return nil
}
