// Package mapping resolves administrator-configured property sources against
// content items. A mapping binds schema.org property names to sources: simple
// string tokens dispatched by prefix, or structured expressions (concat,
// conditional, transform, nested) that recurse through the same resolver.
package mapping

// Source is a parsed property source specification. Resolution of any Source
// yields a scalar, a slice of scalars, a nested map, or nil; it never fails.
type Source interface {
	sourceKind() string
}

// Literal is a fixed value configured with the "custom:" prefix. It bypasses
// all field and meta lookups.
type Literal struct {
	Value string
}

func (Literal) sourceKind() string { return "literal" }

// Field is a simple lookup token: a standard field keyword (post_title,
// site_name, featured_image, ...), an "acf:" or "meta:" prefixed key, or a
// bare custom-field key.
type Field struct {
	Name string
}

func (Field) sourceKind() string { return "field" }

// Taxonomy resolves to the names of the item's terms in one taxonomy.
type Taxonomy struct {
	Slug string
}

func (Taxonomy) sourceKind() string { return "taxonomy" }

// Concat joins the resolved parts with a separator, skipping parts that
// resolve to nothing. The default separator is a single space.
type Concat struct {
	Parts     []Source
	Separator string
}

func (Concat) sourceKind() string { return "concat" }

// Conditional resolves Then or Else depending on an operator applied to a
// resolved field and a literal comparison value.
type Conditional struct {
	Field    string
	Operator string
	Value    any
	Then     Source
	Else     Source
}

func (Conditional) sourceKind() string { return "conditional" }

// Transform applies a named pure function to its resolved sub-source.
type Transform struct {
	Source Source
	Op     string
}

func (Transform) sourceKind() string { return "transform" }

// Nested resolves a map of sub-sources into a sub-object, omitting entries
// that resolve to nothing.
type Nested struct {
	Properties map[string]Source
}

func (Nested) sourceKind() string { return "nested" }

// literalPrefix marks a source token as a fixed value.
const literalPrefix = "custom:"

// ParseSource converts an already-deserialized config value into a Source.
// Strings become Literal, Taxonomy or Field tokens; maps become structured
// expressions keyed by their "type" entry. Structurally invalid input parses
// to nil, which resolves to nothing: malformed configuration must never
// break a build.
func ParseSource(raw any) Source {
	switch v := raw.(type) {
	case string:
		return parseToken(v)
	case map[string]any:
		return parseExpression(v)
	default:
		return nil
	}
}

func parseToken(token string) Source {
	if token == "" {
		return nil
	}
	if rest, ok := cutPrefix(token, literalPrefix); ok {
		return Literal{Value: rest}
	}
	if slug, ok := cutPrefix(token, "taxonomy:"); ok {
		if slug == "" {
			return nil
		}
		return Taxonomy{Slug: slug}
	}
	return Field{Name: token}
}

func parseExpression(m map[string]any) Source {
	kind, _ := m["type"].(string)
	switch kind {
	case "concat":
		return parseConcat(m)
	case "conditional":
		return parseConditional(m)
	case "transform":
		return parseTransform(m)
	case "nested":
		return parseNested(m)
	default:
		return nil
	}
}

func parseConcat(m map[string]any) Source {
	raw, ok := m["sources"].([]any)
	if !ok || len(raw) == 0 {
		return nil
	}
	parts := make([]Source, 0, len(raw))
	for _, r := range raw {
		if s := ParseSource(r); s != nil {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return nil
	}
	sep, ok := m["separator"].(string)
	if !ok {
		sep = " "
	}
	return Concat{Parts: parts, Separator: sep}
}

func parseConditional(m map[string]any) Source {
	field, _ := m["field"].(string)
	op, _ := m["operator"].(string)
	if field == "" || !validOperator(op) {
		return nil
	}
	return Conditional{
		Field:    field,
		Operator: op,
		Value:    m["value"],
		Then:     ParseSource(m["then"]),
		Else:     ParseSource(m["else"]),
	}
}

func parseTransform(m map[string]any) Source {
	src := ParseSource(m["source"])
	op, _ := m["transform"].(string)
	if src == nil || !validTransform(op) {
		return nil
	}
	return Transform{Source: src, Op: op}
}

func parseNested(m map[string]any) Source {
	raw, ok := m["properties"].(map[string]any)
	if !ok || len(raw) == 0 {
		return nil
	}
	props := make(map[string]Source, len(raw))
	for key, r := range raw {
		if s := ParseSource(r); s != nil {
			props[key] = s
		}
	}
	if len(props) == 0 {
		return nil
	}
	return Nested{Properties: props}
}

func cutPrefix(s, prefix string) (string, bool) {
	if len(s) >= len(prefix) && s[:len(prefix)] == prefix {
		return s[len(prefix):], true
	}
	return s, false
}
