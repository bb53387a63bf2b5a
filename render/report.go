package render

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pressmark/schemagen/content"
	"github.com/pressmark/schemagen/schema"
)

// SchemaResult is the validation outcome of one schema object.
type SchemaResult struct {
	Type string `json:"type"`
	schema.ValidationResult
}

// Report is the validation endpoint payload: the generated JSON plus a
// validation summary aggregated across every schema object produced for the
// item.
type Report struct {
	RequestID string         `json:"request_id"`
	ItemID    int64          `json:"item_id"`
	JSON      string         `json:"json"`
	Valid     bool           `json:"valid"`
	Errors    []string       `json:"errors"`
	Warnings  []string       `json:"warnings"`
	Schemas   []SchemaResult `json:"schemas"`
}

// Report builds an item without touching the cache and validates every
// produced schema object. The request ID correlates preview requests in
// logs.
func (r *Renderer) Report(ctx context.Context, item *content.Item) (*Report, error) {
	built, err := r.BuildAll(ctx, item)
	if err != nil {
		return nil, err
	}

	report := &Report{
		RequestID: uuid.New().String(),
		Valid:     true,
		Errors:    []string{},
		Warnings:  []string{},
	}
	if item != nil {
		report.ItemID = item.ID
	}
	if len(built) == 0 {
		return report, nil
	}

	for _, b := range built {
		result := schema.Validate(b.Object, b.Definition)
		report.Schemas = append(report.Schemas, SchemaResult{
			Type:             b.Definition.Type(),
			ValidationResult: result,
		})
		report.Errors = append(report.Errors, result.Errors...)
		report.Warnings = append(report.Warnings, result.Warnings...)
		if !result.Valid {
			report.Valid = false
		}
	}
	if r.metrics != nil {
		r.metrics.ValidationErrors.Add(float64(len(report.Errors)))
		r.metrics.ValidationWarnings.Add(float64(len(report.Warnings)))
	}

	data, err := Encode(objects(built))
	if err != nil {
		return nil, fmt.Errorf("encode schema: %w", err)
	}
	report.JSON = string(data)

	r.log.Debug("validation report built",
		"request_id", report.RequestID,
		"item", report.ItemID,
		"valid", report.Valid,
		"errors", len(report.Errors),
		"warnings", len(report.Warnings),
	)
	return report, nil
}
