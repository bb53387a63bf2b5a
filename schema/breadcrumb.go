package schema

import "github.com/pressmark/schemagen/content"

// BreadcrumbList is the site-wide breadcrumb trail schema.
type BreadcrumbList struct {
	definition
}

// NewBreadcrumbList creates the BreadcrumbList definition.
func NewBreadcrumbList() *BreadcrumbList {
	return &BreadcrumbList{definition{
		typeName:    "BreadcrumbList",
		label:       "Breadcrumb List",
		description: "The navigation trail from the home page to the current item.",
		required:    []string{"itemListElement"},
		properties: []Property{
			{Name: "itemListElement", Type: TypeArray, Auto: "post_url", Description: "Ordered breadcrumb entries.", DocURL: docURL("itemListElement")},
		},
	}}
}

// Build assembles the BreadcrumbList object.
func (b *BreadcrumbList) Build(ctx *BuildContext) *Object {
	obj := NewObject(b.typeName)
	obj.SetNonEmpty("itemListElement", breadcrumbItems(ctx.Item, ctx.Site()))
	obj.Clean()
	return obj
}

// breadcrumbItems builds the ListItem trail: Home at position 1, then the
// ancestor chain for hierarchical content or the primary category for flat
// content, ending with the current item. The final entry carries no item URL.
func breadcrumbItems(item *content.Item, site content.Site) []*Object {
	if item == nil {
		return nil
	}
	items := make([]*Object, 0, len(item.Ancestors)+3)
	position := 1

	if site.URL != "" {
		items = append(items, listItem(position, "Home", site.URL))
		position++
	}

	if len(item.Ancestors) > 0 {
		for _, ancestor := range item.Ancestors {
			items = append(items, listItem(position, ancestor.Title, ancestor.URL))
			position++
		}
	} else if term, ok := item.PrimaryTerm("category"); ok {
		items = append(items, listItem(position, term.Name, term.URL))
		position++
	}

	items = append(items, listItem(position, item.Title, ""))
	return items
}

// listItem builds one breadcrumb entry. An empty url omits the item key,
// which marks the current page.
func listItem(position int, name, url string) *Object {
	o := NewNested("ListItem")
	o.Set("position", position)
	o.Set("name", name)
	if url != "" {
		o.Set("item", url)
	}
	return o
}
