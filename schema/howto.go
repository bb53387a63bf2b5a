package schema

// HowTo is the definition for step-by-step guides.
type HowTo struct {
	definition
}

// NewHowTo creates the HowTo definition.
func NewHowTo() *HowTo {
	return &HowTo{definition{
		typeName:    "HowTo",
		label:       "How-To",
		description: "A step-by-step guide to achieve a result.",
		required:    []string{"name", "step"},
		recommended: []string{"description", "totalTime", "image", "supply", "tool"},
		properties: []Property{
			{Name: "additionalType", Type: TypeURL, Description: "A more specific schema.org type.", DocURL: docURL("additionalType")},
			{Name: "name", Type: TypeText, Auto: "post_title", Description: "What the guide achieves.", DocURL: docURL("name")},
			{Name: "description", Type: TypeText, Auto: "post_excerpt", Description: "A short summary.", DocURL: docURL("description")},
			{Name: "image", Type: TypeImage, Auto: "featured_image", Description: "An illustrative image.", DocURL: docURL("image")},
			{Name: "totalTime", Type: TypeDuration, Auto: "meta:_total_time", Description: "Total time required.", Example: "PT30M", DocURL: docURL("totalTime")},
			{Name: "supply", Type: TypeArray, Auto: "meta:_supplies", Description: "Supplies consumed.", DocURL: docURL("supply")},
			{Name: "tool", Type: TypeArray, Auto: "meta:_tools", Description: "Tools used.", DocURL: docURL("tool")},
			{Name: "step", Type: TypeArray, Auto: "meta:_steps", Description: "Ordered steps.", DocURL: docURL("step")},
		},
	}}
}

// Build assembles the HowTo object. Step strings become HowToStep
// sub-objects.
func (h *HowTo) Build(ctx *BuildContext) *Object {
	obj := NewObject(h.typeName)
	h.fill(ctx, obj, h.auto)

	if v, ok := obj.Get("step"); ok {
		if steps := howToSteps(v); steps != nil {
			obj.Set("step", steps)
		}
	}

	obj.Clean()
	return obj
}

func (h *HowTo) auto(ctx *BuildContext, property string) any {
	item := ctx.Item
	switch property {
	case "name":
		return item.Title
	case "description":
		return autoDescription(item.Excerpt, item.Content)
	case "image":
		return ImageObjectFrom(item.Image)
	case "totalTime":
		return item.MetaValue("_total_time")
	case "supply":
		return item.MetaValue("_supplies")
	case "tool":
		return item.MetaValue("_tools")
	case "step":
		return item.MetaValue("_steps")
	}
	return nil
}
