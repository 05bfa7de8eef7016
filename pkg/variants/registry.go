// Package variants implements the loading animation catalog: the built-in
// definitions ported from the loading.io css set plus a registry for
// custom definitions. Geometry hooks scale the canonical 80px box ratios
// to the requested size.
package variants

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-loading/pkg/model"
)

// Registry stores variant definitions by name. Definitions are cloned on
// the way in and out, so registered variants cannot be mutated through a
// lookup.
type Registry struct {
	mu   sync.RWMutex
	defs map[string]model.Definition
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		defs: make(map[string]model.Definition),
	}
}

// Register adds a definition under its Name. Duplicate names return an
// error.
func (r *Registry) Register(def model.Definition) error {
	name := normalize(def.Name)
	if name == "" {
		return fmt.Errorf("variants: variant name is required")
	}
	if def.HTML == nil || def.CSS == nil {
		return fmt.Errorf("variants: variant %q needs both html and css templates", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.defs[name]; exists {
		return fmt.Errorf("variants: variant %q already registered", name)
	}

	def.Name = name
	r.defs[name] = def.Clone()
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(def model.Definition) {
	if err := r.Register(def); err != nil {
		panic(err)
	}
}

// Get retrieves a definition by name.
func (r *Registry) Get(name string) (model.Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.defs[normalize(name)]
	if !ok {
		return model.Definition{}, fmt.Errorf("variants: variant %q not found", name)
	}
	return def.Clone(), nil
}

// MustGet panics if the variant is missing.
func (r *Registry) MustGet(name string) model.Definition {
	def, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return def
}

// List returns the sorted variant names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a variant is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.defs[normalize(name)]
	return ok
}

// Clone returns an independent copy of the registry.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cloned := NewRegistry()
	for name, def := range r.defs {
		cloned.defs[name] = def.Clone()
	}
	return cloned
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
