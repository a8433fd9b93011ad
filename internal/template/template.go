package template

import (
	"project-tracker-api/internal/schema"
)

// Category groups templates by methodology family
type Category string

// Category constants
const (
	CategoryAgile       Category = "agile"
	CategoryLean        Category = "lean"
	CategoryTraditional Category = "traditional"
	CategoryGeneral     Category = "general"
)

// Template is an immutable, self-contained catalog of type definitions
// representing one work methodology. Applying a template to a project
// never mutates the template itself.
type Template struct {
	ID            string                  `json:"id"`
	Name          string                  `json:"name"`
	Description   string                  `json:"description"`
	Category      Category                `json:"category"`
	WorkItemTypes []schema.TypeDefinition `json:"workItemTypes"`
}

// Validate builds a registry from the template's types and checks name
// uniqueness plus child-reference closure. It mirrors the checks the
// application engine performs before persisting anything.
func (t Template) Validate() []error {
	reg := NewRegistry()
	var errs []error
	for _, def := range t.WorkItemTypes {
		if err := reg.Register(def); err != nil {
			errs = append(errs, err)
		}
	}
	errs = append(errs, reg.ValidateClosure()...)
	return errs
}

// BuiltIn returns the embedded template catalog.
// The returned slice is a fresh copy on every call.
func BuiltIn() []Template {
	return []Template{
		basicTemplate(),
		scrumTemplate(),
		kanbanTemplate(),
		pmbokTemplate(),
	}
}

// BuiltInByID looks up an embedded template by id
func BuiltInByID(id string) (Template, bool) {
	for _, t := range BuiltIn() {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}
