package schema

// FAQPage is the definition for FAQ pages. Question/answer pairs come from a
// nested or meta source as a list of {question, answer} maps.
type FAQPage struct {
	definition
}

// NewFAQPage creates the FAQPage definition.
func NewFAQPage() *FAQPage {
	return &FAQPage{definition{
		typeName:    "FAQPage",
		label:       "FAQ Page",
		description: "A page of frequently asked questions with their answers.",
		required:    []string{"mainEntity"},
		recommended: []string{"name", "description"},
		properties: []Property{
			{Name: "additionalType", Type: TypeURL, Description: "A more specific schema.org type.", DocURL: docURL("additionalType")},
			{Name: "name", Type: TypeText, Auto: "post_title", Description: "The page title.", DocURL: docURL("name")},
			{Name: "description", Type: TypeText, Auto: "post_excerpt", Description: "A short summary.", DocURL: docURL("description")},
			{Name: "mainEntity", Type: TypeArray, Auto: "meta:_faq_items", Description: "The question/answer pairs.", DocURL: docURL("mainEntity")},
		},
	}}
}

// Build assembles the FAQPage object.
func (f *FAQPage) Build(ctx *BuildContext) *Object {
	obj := NewObject(f.typeName)
	f.fill(ctx, obj, f.auto)

	if v, ok := obj.Get("mainEntity"); ok {
		if questions := questionObjects(v); questions != nil {
			obj.Set("mainEntity", questions)
		} else {
			obj.Delete("mainEntity")
		}
	}

	obj.Clean()
	return obj
}

func (f *FAQPage) auto(ctx *BuildContext, property string) any {
	item := ctx.Item
	switch property {
	case "name":
		return item.Title
	case "description":
		return autoDescription(item.Excerpt, item.Content)
	case "mainEntity":
		return item.MetaValue("_faq_items")
	}
	return nil
}

// questionObjects converts a list of {question, answer} maps into Question
// objects with nested Answer acceptedAnswer.
func questionObjects(v any) any {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	questions := make([]*Object, 0, len(list))
	for _, entry := range list {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		question, _ := firstValue(m, "question", "name")
		answer, _ := firstValue(m, "answer", "text")
		qs, _ := question.(string)
		as, _ := answer.(string)
		if qs == "" || as == "" {
			continue
		}
		q := NewNested("Question")
		q.Set("name", qs)
		a := NewNested("Answer")
		a.Set("text", as)
		q.Set("acceptedAnswer", a)
		questions = append(questions, q)
	}
	if len(questions) == 0 {
		return nil
	}
	return questions
}
