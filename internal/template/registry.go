// Package template holds the immutable template catalog and the type
// definition registry used to validate a template before application.
package template

import (
	"fmt"

	"project-tracker-api/internal/schema"
)

// DuplicateNameError reports a type name registered twice in one scope
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate type name %q", e.Name)
}

// UnknownTypeError reports a child-type reference that does not resolve
// to any registered type definition
type UnknownTypeError struct {
	TypeName string
	Missing  string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("type %q references unknown child type %q", e.TypeName, e.Missing)
}

// Registry holds the type definitions active for one template or one
// project, keyed by name. Registration is two-phase: definitions within
// one template routinely reference siblings declared later in the same
// list, so cross-references are only checked by ValidateClosure after
// the whole batch has been registered.
type Registry struct {
	defs  map[string]*schema.TypeDefinition
	order []string
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]*schema.TypeDefinition)}
}

// Register adds a type definition to the registry.
// Child references are not checked here.
func (r *Registry) Register(def schema.TypeDefinition) error {
	if _, exists := r.defs[def.Name]; exists {
		return &DuplicateNameError{Name: def.Name}
	}
	d := def
	r.defs[def.Name] = &d
	r.order = append(r.order, def.Name)
	return nil
}

// Get returns the definition registered under name
func (r *Registry) Get(name string) (*schema.TypeDefinition, bool) {
	def, ok := r.defs[name]
	return def, ok
}

// Names returns registered names in registration order
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// ResolveChildren expands a type's allowed child names into live
// definition references. Fails if the type itself or any child name is
// absent from the registry.
func (r *Registry) ResolveChildren(name string) ([]*schema.TypeDefinition, error) {
	def, ok := r.defs[name]
	if !ok {
		return nil, &UnknownTypeError{TypeName: name, Missing: name}
	}
	children := make([]*schema.TypeDefinition, 0, len(def.AllowedChildTypeNames))
	for _, childName := range def.AllowedChildTypeNames {
		child, ok := r.defs[childName]
		if !ok {
			return nil, &UnknownTypeError{TypeName: name, Missing: childName}
		}
		children = append(children, child)
	}
	return children, nil
}

// ValidateClosure checks that every child-type reference across the
// registry resolves to another registered definition. It returns every
// dangling reference, not just the first, so a malformed template can
// be reported in full.
func (r *Registry) ValidateClosure() []error {
	var errs []error
	for _, name := range r.order {
		def := r.defs[name]
		for _, childName := range def.AllowedChildTypeNames {
			if _, ok := r.defs[childName]; !ok {
				errs = append(errs, &UnknownTypeError{TypeName: name, Missing: childName})
			}
		}
	}
	return errs
}
