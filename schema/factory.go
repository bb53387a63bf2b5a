package schema

import (
	"fmt"
	"sync"
)

// Constructor creates a fresh Definition. Registered per type identifier;
// aliases register constructors that override the emitted @type.
type Constructor func() Definition

// Factory maps schema type identifiers to definitions. Created definitions
// are memoized per identifier for the life of the factory, which is expected
// to be request-scoped. Memoization is an allocation optimization, not a
// concurrency primitive.
type Factory struct {
	mu           sync.RWMutex
	constructors map[string]Constructor
	instances    map[string]Definition
}

// NewFactory creates a factory with all built-in types and aliases
// registered.
func NewFactory() *Factory {
	f := &Factory{
		constructors: make(map[string]Constructor),
		instances:    make(map[string]Definition),
	}
	registerBuiltins(f)
	return f
}

// Create returns the definition for a type identifier, or nil when the type
// is unknown. Callers treat nil as "no schema available".
func (f *Factory) Create(typeID string) Definition {
	f.mu.RLock()
	if def, ok := f.instances[typeID]; ok {
		f.mu.RUnlock()
		return def
	}
	ctor, ok := f.constructors[typeID]
	f.mu.RUnlock()
	if !ok {
		return nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if def, ok := f.instances[typeID]; ok {
		return def
	}
	def := ctor()
	f.instances[typeID] = def
	return def
}

// HasType reports whether a type identifier is registered.
func (f *Factory) HasType(typeID string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.constructors[typeID]
	return ok
}

// RegisterType registers a definition constructor under an identifier.
// Registration of an invalid definition is a programmer error and fails
// immediately.
func (f *Factory) RegisterType(typeID string, ctor Constructor) error {
	if typeID == "" {
		return fmt.Errorf("register type: empty type identifier")
	}
	if ctor == nil {
		return fmt.Errorf("register type %q: nil constructor", typeID)
	}
	def := ctor()
	if err := validateDefinition(def); err != nil {
		return fmt.Errorf("register type %q: %w", typeID, err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.constructors[typeID] = ctor
	delete(f.instances, typeID)
	return nil
}

// TypeIDs returns all registered type identifiers.
func (f *Factory) TypeIDs() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	ids := make([]string, 0, len(f.constructors))
	for id := range f.constructors {
		ids = append(ids, id)
	}
	return ids
}

// validateDefinition checks the capability contract a definition must
// satisfy.
func validateDefinition(def Definition) error {
	if def == nil {
		return fmt.Errorf("constructor returned nil definition")
	}
	if def.Type() == "" {
		return fmt.Errorf("definition has no @type")
	}
	if def.Label() == "" {
		return fmt.Errorf("definition %q has no label", def.Type())
	}
	if len(def.Properties()) == 0 {
		return fmt.Errorf("definition %q has no property table", def.Type())
	}
	return nil
}
