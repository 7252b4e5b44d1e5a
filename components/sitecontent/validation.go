package sitecontent

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// SectionValidator validates a section value against its definition.
type SectionValidator interface {
	Validate(def SectionDefinition, value SectionValue) error
}

// JSONSchemaValidator compiles section schemas and validates encoded values.
type JSONSchemaValidator struct {
	mu       sync.RWMutex
	compiled map[SectionID]*jsonschema.Schema
}

// NewJSONSchemaValidator builds a validator backed by jsonschema v5.
func NewJSONSchemaValidator() *JSONSchemaValidator {
	return &JSONSchemaValidator{
		compiled: make(map[SectionID]*jsonschema.Schema),
	}
}

// Validate ensures the section value satisfies its schema.
func (v *JSONSchemaValidator) Validate(def SectionDefinition, value SectionValue) error {
	if len(def.Schema) == 0 {
		return nil
	}
	schema, err := v.schemaFor(def)
	if err != nil {
		return err
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("sitecontent: marshal section %s: %w", def.ID, err)
	}
	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("sitecontent: normalize section %s: %w", def.ID, err)
	}
	if err := schema.Validate(payload); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrValidation, def.ID, err)
	}
	return nil
}

func (v *JSONSchemaValidator) schemaFor(def SectionDefinition) (*jsonschema.Schema, error) {
	v.mu.RLock()
	schema, ok := v.compiled[def.ID]
	v.mu.RUnlock()
	if ok {
		return schema, nil
	}
	data, err := json.Marshal(def.Schema)
	if err != nil {
		return nil, fmt.Errorf("sitecontent: marshal schema %s: %w", def.ID, err)
	}
	compiler := jsonschema.NewCompiler()
	name := string(def.ID) + ".json"
	if err := compiler.AddResource(name, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("sitecontent: load schema %s: %w", def.ID, err)
	}
	compiled, err := compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("sitecontent: compile schema %s: %w", def.ID, err)
	}
	v.mu.Lock()
	v.compiled[def.ID] = compiled
	v.mu.Unlock()
	return compiled, nil
}

// Forget drops a cached schema so an overridden definition is recompiled.
func (v *JSONSchemaValidator) Forget(id SectionID) {
	v.mu.Lock()
	delete(v.compiled, id)
	v.mu.Unlock()
}

// NoopValidator accepts every section value.
type NoopValidator struct{}

// Validate implements SectionValidator.
func (NoopValidator) Validate(SectionDefinition, SectionValue) error { return nil }

// checkUniqueIDs rejects collections that repeat an id. It runs regardless of
// the configured validator since removal by id relies on it.
func checkUniqueIDs(value SectionValue) error {
	var (
		field string
		ids   []string
	)
	switch v := value.(type) {
	case Services:
		field = "pillars"
		for _, p := range v.Pillars {
			ids = append(ids, p.ID)
		}
	case Insights:
		field = "posts"
		for _, p := range v.Posts {
			ids = append(ids, p.ID)
		}
	case ImageSet:
		field = "items"
		for _, item := range v.Items {
			ids = append(ids, item.ID)
		}
	case UserSet:
		field = "users"
		for _, u := range v.Users {
			ids = append(ids, u.ID)
		}
	default:
		return nil
	}
	seen := make(map[string]int, len(ids))
	for i, id := range ids {
		if first, ok := seen[id]; ok {
			return fmt.Errorf("%w: %s: %s[%d] repeats id %q of %s[%d]", ErrValidation, value.Section(), field, i, id, field, first)
		}
		seen[id] = i
	}
	return nil
}
