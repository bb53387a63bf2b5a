// Package schema builds schema.org JSON-LD objects from content items and
// mapping configuration. Each supported schema.org type has a definition
// carrying its property table, required/recommended lists and a build
// function; a factory maps type identifiers (and aliases) to definitions.
package schema

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/goccy/go-json"

	"github.com/pressmark/schemagen/sanitize"
)

// Context is the JSON-LD @context emitted on every top-level object.
const Context = "https://schema.org"

// Object is an insertion-ordered JSON-LD object. Serialization preserves key
// order, escapes neither HTML characters nor forward slashes, and leaves
// non-ASCII intact. Snapshot consumers rely on these bytes staying stable.
type Object struct {
	keys   []string
	values map[string]any
}

// NewObject creates a top-level object with @context and @type set.
func NewObject(typeName string) *Object {
	o := &Object{values: make(map[string]any)}
	o.Set("@context", Context)
	o.Set("@type", typeName)
	return o
}

// NewNested creates a nested sub-object carrying only @type.
func NewNested(typeName string) *Object {
	o := &Object{values: make(map[string]any)}
	o.Set("@type", typeName)
	return o
}

// Set stores a value under key, appending the key on first write and
// preserving its original position on overwrite.
func (o *Object) Set(key string, value any) {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// SetNonEmpty stores value only when it carries content.
func (o *Object) SetNonEmpty(key string, value any) {
	if isEmptyValue(value) {
		return
	}
	o.Set(key, value)
}

// Get returns the value for key and whether it exists.
func (o *Object) Get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Has reports whether key holds a non-empty value.
func (o *Object) Has(key string) bool {
	v, ok := o.values[key]
	return ok && !isEmptyValue(v)
}

// Delete removes key from the object.
func (o *Object) Delete(key string) {
	if _, ok := o.values[key]; !ok {
		return
	}
	delete(o.values, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Type returns the @type value, if set.
func (o *Object) Type() string {
	if v, ok := o.values["@type"]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// Len returns the number of keys, including @-keys.
func (o *Object) Len() int { return len(o.keys) }

// MarshalJSON serializes the object compactly in insertion order without
// HTML escaping. Callers wanting indentation wrap it in an encoder with
// SetIndent.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for _, key := range o.keys {
		kb, err := encodeValue(key)
		if err != nil {
			return nil, fmt.Errorf("encode key %q: %w", key, err)
		}
		vb, err := encodeValue(o.values[key])
		if err != nil {
			return nil, fmt.Errorf("encode property %q: %w", key, err)
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func encodeValue(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Clean sanitizes every property value in place and drops entries that clean
// down to nothing. @-keys are preserved verbatim.
func (o *Object) Clean() {
	for _, key := range o.Keys() {
		if len(key) > 0 && key[0] == '@' {
			continue
		}
		v := cleanValue(o.values[key])
		if v == nil {
			o.Delete(key)
			continue
		}
		o.values[key] = v
	}
}

func cleanValue(v any) any {
	switch x := v.(type) {
	case *Object:
		x.Clean()
		if !x.hasContent() {
			return nil
		}
		return x
	case []*Object:
		out := make([]any, 0, len(x))
		for _, e := range x {
			if c := cleanValue(e); c != nil {
				out = append(out, c)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	case []any:
		out := make([]any, 0, len(x))
		for _, e := range x {
			if c := cleanValue(e); c != nil {
				out = append(out, c)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	default:
		return sanitize.Value(v)
	}
}

// hasContent reports whether the object carries anything besides @-keys.
func (o *Object) hasContent() bool {
	for _, key := range o.keys {
		if len(key) > 0 && key[0] == '@' {
			continue
		}
		return true
	}
	return false
}

func isEmptyValue(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case []any:
		return len(x) == 0
	case []string:
		return len(x) == 0
	case map[string]any:
		return len(x) == 0
	case *Object:
		return x == nil || !x.hasContent()
	case []*Object:
		return len(x) == 0
	default:
		return false
	}
}

// NewGraph wraps multiple schema objects in a @graph envelope. Each member's
// own @context is stripped; the envelope carries the single shared context.
func NewGraph(members []*Object) *Object {
	g := &Object{values: make(map[string]any)}
	g.Set("@context", Context)
	for _, member := range members {
		member.Delete("@context")
	}
	g.Set("@graph", members)
	return g
}

// bareTypeRe matches a bare PascalCase schema.org type name.
var bareTypeRe = regexp.MustCompile(`^[A-Z][a-zA-Z0-9]*$`)

// NormalizeAdditionalType normalizes an additionalType value. Bare PascalCase
// names become full schema.org URLs and existing schema.org URLs pass
// through; anything else is rejected and the property is omitted.
func NormalizeAdditionalType(v string) (string, bool) {
	if bareTypeRe.MatchString(v) {
		return Context + "/" + v, true
	}
	if strings.HasPrefix(v, "http://schema.org/") || strings.HasPrefix(v, "https://schema.org/") {
		return v, true
	}
	return "", false
}
