package mapping

import "github.com/pressmark/schemagen/content"

// Config is a parsed mapping from schema property names to sources.
type Config map[string]Source

// ParseConfig parses an already-deserialized property→source map. Entries
// that fail to parse are dropped; a broken mapping entry must never take the
// rest of the mapping down with it.
func ParseConfig(raw map[string]any) Config {
	if len(raw) == 0 {
		return nil
	}
	cfg := make(Config, len(raw))
	for property, value := range raw {
		if src := ParseSource(value); src != nil {
			cfg[property] = src
		}
	}
	if len(cfg) == 0 {
		return nil
	}
	return cfg
}

// Merge overlays other onto the receiver, last write wins. Either side may be
// nil. Used to layer per-post mappings over global post-type mappings.
func (c Config) Merge(other Config) Config {
	if len(other) == 0 {
		return c
	}
	merged := make(Config, len(c)+len(other))
	for k, v := range c {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}

// MapFields resolves every mapping entry against the item and returns the
// property→value dictionary. Entries resolving to nil or empty are omitted
// entirely: schema objects never contain empty placeholders. Post-resolve
// callbacks run per property before the emptiness check.
func (r *Resolver) MapFields(item *content.Item, cfg Config) map[string]any {
	if item == nil || len(cfg) == 0 {
		return nil
	}
	out := make(map[string]any, len(cfg))
	for property, src := range cfg {
		value := r.ResolveProperty(item, property, src)
		if IsEmpty(value) {
			continue
		}
		out[property] = value
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// OverrideMode selects how a per-post field override is interpreted.
type OverrideMode string

const (
	// OverrideAuto keeps the default behavior (global mapping, then the
	// schema type's auto-population).
	OverrideAuto OverrideMode = "auto"

	// OverrideField resolves the override value as a source token.
	OverrideField OverrideMode = "field"

	// OverrideCustom uses the override value as a literal.
	OverrideCustom OverrideMode = "custom"
)

// Override is a per-post, per-property override. Custom literals take
// precedence over field references, which take precedence over the global
// mapping and auto-population.
type Override struct {
	Mode  OverrideMode `yaml:"mode" json:"mode"`
	Value string       `yaml:"value" json:"value"`
}
