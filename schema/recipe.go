package schema

import "strings"

// Recipe is the definition for cooking recipes.
type Recipe struct {
	definition
}

// NewRecipe creates the Recipe definition.
func NewRecipe() *Recipe {
	return &Recipe{definition{
		typeName:    "Recipe",
		label:       "Recipe",
		description: "A cooking recipe with ingredients, instructions and timing.",
		required:    []string{"name", "image"},
		recommended: []string{"description", "author", "datePublished", "prepTime", "cookTime", "recipeYield", "recipeIngredient", "recipeInstructions", "aggregateRating"},
		properties: []Property{
			{Name: "additionalType", Type: TypeURL, Description: "A more specific schema.org type.", DocURL: docURL("additionalType")},
			{Name: "name", Type: TypeText, Auto: "post_title", Description: "The recipe name.", DocURL: docURL("name")},
			{Name: "description", Type: TypeText, Auto: "post_excerpt", Description: "A short recipe description.", DocURL: docURL("description")},
			{Name: "image", Type: TypeImage, Auto: "featured_image", Description: "A photo of the dish.", DocURL: docURL("image")},
			{Name: "author", Type: TypePerson, Auto: "author", Description: "The recipe author.", DocURL: docURL("author")},
			{Name: "datePublished", Type: TypeDate, Auto: "post_date", Description: "First publication date.", DocURL: docURL("datePublished")},
			{Name: "prepTime", Type: TypeDuration, Auto: "meta:_prep_time", Description: "Preparation time.", Example: "PT20M", DocURL: docURL("prepTime")},
			{Name: "cookTime", Type: TypeDuration, Auto: "meta:_cook_time", Description: "Cooking time.", Example: "PT45M", DocURL: docURL("cookTime")},
			{Name: "totalTime", Type: TypeDuration, Description: "Total time from start to finish.", DocURL: docURL("totalTime")},
			{Name: "recipeYield", Type: TypeText, Auto: "meta:_servings", Description: "Quantity produced.", Example: "4 servings", DocURL: docURL("recipeYield")},
			{Name: "recipeCategory", Type: TypeText, Auto: "category", Description: "Type of dish.", Example: "Dessert", DocURL: docURL("recipeCategory")},
			{Name: "recipeCuisine", Type: TypeText, Auto: "meta:_cuisine", Description: "Cuisine of the recipe.", Example: "Italian", DocURL: docURL("recipeCuisine")},
			{Name: "recipeIngredient", Type: TypeArray, Auto: "meta:_ingredients", Description: "List of ingredients.", DocURL: docURL("recipeIngredient")},
			{Name: "recipeInstructions", Type: TypeArray, Auto: "meta:_instructions", Description: "Ordered preparation steps.", DocURL: docURL("recipeInstructions")},
			{Name: "keywords", Type: TypeText, Auto: "tags", Description: "Comma-separated keywords.", DocURL: docURL("keywords")},
			{Name: "aggregateRating", Type: TypeObject, Description: "Aggregated rating.", DocURL: docURL("aggregateRating")},
		},
	}}
}

// Build assembles the Recipe object. Instruction strings become HowToStep
// sub-objects.
func (r *Recipe) Build(ctx *BuildContext) *Object {
	obj := NewObject(r.typeName)
	r.fill(ctx, obj, r.auto)

	if v, ok := obj.Get("recipeInstructions"); ok {
		if steps := howToSteps(v); steps != nil {
			obj.Set("recipeInstructions", steps)
		}
	}

	obj.Clean()
	return obj
}

func (r *Recipe) auto(ctx *BuildContext, property string) any {
	item := ctx.Item
	switch property {
	case "name":
		return item.Title
	case "description":
		return autoDescription(item.Excerpt, item.Content)
	case "image":
		return ImageObjectFrom(item.Image)
	case "author":
		return PersonObject(item.Author)
	case "datePublished":
		return isoDate(item.Published)
	case "prepTime":
		return item.MetaValue("_prep_time")
	case "cookTime":
		return item.MetaValue("_cook_time")
	case "recipeYield":
		return item.MetaValue("_servings")
	case "recipeCategory":
		if term, ok := item.PrimaryTerm("category"); ok {
			return term.Name
		}
		return nil
	case "recipeCuisine":
		return item.MetaValue("_cuisine")
	case "recipeIngredient":
		return item.MetaValue("_ingredients")
	case "recipeInstructions":
		return item.MetaValue("_instructions")
	case "keywords":
		return strings.Join(item.TermNames("post_tag"), ", ")
	}
	return nil
}

// howToSteps converts a list of instruction strings into HowToStep objects.
// Non-list values stay as-is.
func howToSteps(v any) any {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	steps := make([]*Object, 0, len(list))
	for i, entry := range list {
		text, ok := entry.(string)
		if !ok || text == "" {
			continue
		}
		step := NewNested("HowToStep")
		step.Set("position", i+1)
		step.Set("text", text)
		steps = append(steps, step)
	}
	if len(steps) == 0 {
		return nil
	}
	return steps
}
