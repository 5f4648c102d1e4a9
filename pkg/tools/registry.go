package tools

import (
	"errors"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
)

// ErrToolNotFound is returned when a tool name is not registered.
var ErrToolNotFound = errors.New("tool not found")

// ValidationError reports arguments that do not match a tool's input schema.
type ValidationError struct {
	Tool string
	Err  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid arguments for tool '%s': %v", e.Tool, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

type entry struct {
	def    ToolDef
	schema *jsonschema.Resolved
}

// Registry is the fixed set of tools served by the process. It is built once
// at startup and never modified, so it is safe for concurrent use.
type Registry struct {
	order   []string
	entries map[string]entry
}

// NewRegistry builds a registry from defs, compiling each input schema once.
func NewRegistry(defs ...ToolDef) (*Registry, error) {
	r := &Registry{
		order:   make([]string, 0, len(defs)),
		entries: make(map[string]entry, len(defs)),
	}

	for _, def := range defs {
		if def.Name == "" {
			return nil, errors.New("tool definition without a name")
		}
		if _, exists := r.entries[def.Name]; exists {
			return nil, fmt.Errorf("duplicate tool name: %s", def.Name)
		}

		resolved, err := def.InputSchema().Resolve(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to compile input schema for tool '%s': %w", def.Name, err)
		}

		r.order = append(r.order, def.Name)
		r.entries[def.Name] = entry{def: def, schema: resolved}
	}

	return r, nil
}

// DefaultRegistry returns a registry holding AllTools.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(AllTools()...)
	if err != nil {
		// AllTools is static; a failure here is a programming error.
		panic(err)
	}
	return r
}

// Lookup returns the definition registered under name.
func (r *Registry) Lookup(name string) (ToolDef, error) {
	e, ok := r.entries[name]
	if !ok {
		return ToolDef{}, fmt.Errorf("tool '%s' not found: %w", name, ErrToolNotFound)
	}
	return e.def, nil
}

// All returns every registered definition in registration order.
func (r *Registry) All() []ToolDef {
	defs := make([]ToolDef, 0, len(r.order))
	for _, name := range r.order {
		defs = append(defs, r.entries[name].def)
	}
	return defs
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	return len(r.order)
}

// Validate checks args against the input schema of the named tool. A nil
// args map is treated as an empty object.
func (r *Registry) Validate(name string, args map[string]any) error {
	e, ok := r.entries[name]
	if !ok {
		return fmt.Errorf("tool '%s' not found: %w", name, ErrToolNotFound)
	}

	if args == nil {
		args = map[string]any{}
	}
	if err := e.schema.Validate(args); err != nil {
		return &ValidationError{Tool: name, Err: err}
	}
	return nil
}
