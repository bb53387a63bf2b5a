package schema

import (
	"github.com/pressmark/schemagen/content"
	"github.com/pressmark/schemagen/mapping"
)

// ValueType describes the expected shape of a property value. Used by admin
// tooling to pick an editor widget; the builder does not enforce it.
type ValueType string

// Property value types.
const (
	TypeText         ValueType = "text"
	TypeURL          ValueType = "url"
	TypeDate         ValueType = "date"
	TypeNumber       ValueType = "number"
	TypeInteger      ValueType = "integer"
	TypeBoolean      ValueType = "boolean"
	TypeDuration     ValueType = "duration"
	TypeImage        ValueType = "image"
	TypePerson       ValueType = "person"
	TypeOrganization ValueType = "organization"
	TypeObject       ValueType = "object"
	TypeArray        ValueType = "array"
)

// Property describes one entry of a type's property table.
type Property struct {
	// Name is the schema.org property name.
	Name string

	// Type is the expected value shape.
	Type ValueType

	// Auto names the content source used for auto-population, empty when the
	// property has no built-in default.
	Auto string

	// Description is the admin-facing explanation.
	Description string

	// Example shows a typical value.
	Example string

	// DocURL points at the schema.org property documentation.
	DocURL string
}

// Definition is the capability contract every schema type satisfies. A
// definition is stateless; Build derives everything from the context.
type Definition interface {
	// Type returns the @type value emitted by Build.
	Type() string

	// Label returns the human-readable type name.
	Label() string

	// Description explains what the type is for.
	Description() string

	// RequiredProperties lists properties whose absence is a validation
	// error.
	RequiredProperties() []string

	// RecommendedProperties lists properties whose absence is a validation
	// warning.
	RecommendedProperties() []string

	// Properties returns the ordered property table.
	Properties() []Property

	// Build assembles the JSON-LD object for an item.
	Build(ctx *BuildContext) *Object
}

// definition carries the shared metadata of a schema type. Concrete types
// embed it and implement Build.
type definition struct {
	typeName    string
	label       string
	description string
	required    []string
	recommended []string
	properties  []Property
}

func (d *definition) Type() string                    { return d.typeName }
func (d *definition) Label() string                   { return d.label }
func (d *definition) Description() string             { return d.description }
func (d *definition) RequiredProperties() []string    { return d.required }
func (d *definition) RecommendedProperties() []string { return d.recommended }
func (d *definition) Properties() []Property          { return d.properties }

// BuildOptions carries site-wide build tuning read from settings.
type BuildOptions struct {
	// WordsPerMinute drives the reading-time estimate. Zero means the
	// default of 200.
	WordsPerMinute int

	// SearchAction adds a potentialAction to the WebSite schema.
	SearchAction bool
}

// BuildContext bundles everything a build needs: the item, the resolver, the
// merged global mapping and the per-post overrides. One context serves one
// build pass.
type BuildContext struct {
	Item      *content.Item
	Resolver  *mapping.Resolver
	Mapping   mapping.Config
	Overrides map[string]mapping.Override
	Options   BuildOptions
}

// Site returns the site identity from the resolver.
func (c *BuildContext) Site() content.Site {
	return c.Resolver.Site()
}

// MappedValue resolves the configured value for a property. Precedence is
// fixed: per-post custom literal, then per-post field reference, then the
// global mapping. Auto-population happens in the type builders only after
// MappedValue comes up empty.
func (c *BuildContext) MappedValue(property string) any {
	if ov, ok := c.Overrides[property]; ok {
		switch ov.Mode {
		case mapping.OverrideCustom:
			if ov.Value != "" {
				return ov.Value
			}
		case mapping.OverrideField:
			if ov.Value != "" {
				v := c.Resolver.ResolveProperty(c.Item, property, mapping.ParseSource(ov.Value))
				if !mapping.IsEmpty(v) {
					return v
				}
			}
		}
		// OverrideAuto and empty overrides fall through.
	}
	if src, ok := c.Mapping[property]; ok {
		v := c.Resolver.ResolveProperty(c.Item, property, src)
		if !mapping.IsEmpty(v) {
			return v
		}
	}
	return nil
}

// autoFunc derives a property's built-in default, nil when none applies.
type autoFunc func(ctx *BuildContext, property string) any

// fill walks the property table in order: mapping override first, then the
// type's auto-population, otherwise the property is omitted. additionalType
// is normalized rather than resolved.
func (d *definition) fill(ctx *BuildContext, obj *Object, auto autoFunc) {
	for _, prop := range d.properties {
		if prop.Name == "additionalType" {
			d.fillAdditionalType(ctx, obj)
			continue
		}
		value := ctx.MappedValue(prop.Name)
		if mapping.IsEmpty(value) && auto != nil {
			value = auto(ctx, prop.Name)
		}
		obj.SetNonEmpty(prop.Name, value)
	}
}

// fillAdditionalType emits a normalized additionalType when one is mapped.
// Invalid values are dropped silently.
func (d *definition) fillAdditionalType(ctx *BuildContext, obj *Object) {
	raw, ok := ctx.MappedValue("additionalType").(string)
	if !ok {
		return
	}
	if normalized, ok := NormalizeAdditionalType(raw); ok {
		obj.Set("additionalType", normalized)
	}
}
