package sitecontent

import (
	"fmt"
	"sync"
)

// SectionHook lets packages adjust section definitions during init().
type SectionHook func(reg *Registry) error

var (
	globalHookMu sync.Mutex
	globalHooks  []SectionHook
)

// RegisterSectionHook registers a hook executed against new registries.
func RegisterSectionHook(h SectionHook) {
	globalHookMu.Lock()
	defer globalHookMu.Unlock()
	globalHooks = append(globalHooks, h)
}

// SectionRegistry resolves section definitions for navigation and validation.
type SectionRegistry interface {
	RegisterDefinition(def SectionDefinition) error
	Definition(id SectionID) (SectionDefinition, bool)
	Definitions() []SectionDefinition
}

// Registry implements SectionRegistry. Definitions can be overridden (labels,
// icons, schemas) but the set of section ids is fixed.
type Registry struct {
	mu          sync.RWMutex
	definitions map[SectionID]SectionDefinition
}

// NewRegistry builds a registry seeded with the default definitions and applies global hooks.
func NewRegistry() *Registry {
	reg := &Registry{
		definitions: map[SectionID]SectionDefinition{},
	}
	for _, def := range DefaultSectionDefinitions() {
		_ = reg.RegisterDefinition(def)
	}
	_ = reg.ApplyHooks()
	return reg
}

// ApplyHooks executes registered section hooks.
func (r *Registry) ApplyHooks() error {
	globalHookMu.Lock()
	defer globalHookMu.Unlock()
	for _, hook := range globalHooks {
		if err := hook(r); err != nil {
			return err
		}
	}
	return nil
}

// RegisterDefinition stores or replaces the definition for a known section.
func (r *Registry) RegisterDefinition(def SectionDefinition) error {
	if !def.ID.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownSection, def.ID)
	}
	if def.Label == "" {
		return fmt.Errorf("sitecontent: section %s label is required", def.ID)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.definitions[def.ID] = def
	return nil
}

// Definition fetches a section definition by id.
func (r *Registry) Definition(id SectionID) (SectionDefinition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.definitions[id]
	return def, ok
}

// Definitions returns the registered definitions in navigation order.
func (r *Registry) Definitions() []SectionDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	defs := make([]SectionDefinition, 0, len(r.definitions))
	for _, id := range sectionOrder {
		if def, ok := r.definitions[id]; ok {
			defs = append(defs, def)
		}
	}
	return defs
}
