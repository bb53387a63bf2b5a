package schema

import "fmt"

// ValidationResult reports required/recommended property coverage of a built
// schema object. Validation never blocks emission: incomplete schema beats no
// schema.
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Validate checks a built object against its definition's required and
// recommended property lists. Absent or empty required properties produce
// errors, absent recommended properties produce warnings.
func Validate(obj *Object, def Definition) ValidationResult {
	result := ValidationResult{Errors: []string{}, Warnings: []string{}}
	if obj == nil || def == nil {
		result.Errors = append(result.Errors, "no schema object built")
		return result
	}
	for _, prop := range def.RequiredProperties() {
		if !obj.Has(prop) {
			result.Errors = append(result.Errors, fmt.Sprintf("Missing required property: %s", prop))
		}
	}
	for _, prop := range def.RecommendedProperties() {
		if !obj.Has(prop) {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Missing recommended property: %s", prop))
		}
	}
	result.Valid = len(result.Errors) == 0
	return result
}
