// Package schema defines the field and type metamodel: the declarative
// shapes that describe what a work item type may contain, and the pure
// validation logic that checks raw field input against those shapes.
package schema

// FieldKind represents the kind of a field schema
type FieldKind string

// FieldKind constants
const (
	FieldKindText     FieldKind = "text"
	FieldKindTextarea FieldKind = "textarea"
	FieldKindNumber   FieldKind = "number"
	FieldKindDate     FieldKind = "date"
	FieldKindDatetime FieldKind = "datetime"
	FieldKindSelect   FieldKind = "select"
	FieldKindRadio    FieldKind = "radio"
	FieldKindPerson   FieldKind = "person"
	FieldKindTeam     FieldKind = "team"
)

// FieldOption is a single selectable choice of a select/radio field
type FieldOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FieldValidation holds the optional constraints of a field schema.
// Only the constraints relevant to the field's kind are honored.
type FieldValidation struct {
	Min       *float64 `json:"min,omitempty"`
	Max       *float64 `json:"max,omitempty"`
	Pattern   string   `json:"pattern,omitempty"`
	MinLength *int     `json:"minLength,omitempty"`
	MaxLength *int     `json:"maxLength,omitempty"`
}

// FieldSchema describes a single typed, validated attribute of a work
// item type. The same shape is used for assignment ("who") fields and
// general custom fields.
type FieldSchema struct {
	ID           string           `json:"id"`
	Label        string           `json:"label"`
	Kind         FieldKind        `json:"kind"`
	Required     bool             `json:"required"`
	DefaultValue string           `json:"defaultValue,omitempty"`
	Validation   *FieldValidation `json:"validation,omitempty"`
	Options      []FieldOption    `json:"options,omitempty"`
}

// HasOptions reports whether the field's kind selects from an option list
func (f FieldSchema) HasOptions() bool {
	return f.Kind == FieldKindSelect || f.Kind == FieldKindRadio
}

// OptionLabel resolves an option value to its label.
// Returns false when the value is not among the field's options.
func (f FieldSchema) OptionLabel(value string) (string, bool) {
	for _, opt := range f.Options {
		if opt.Value == value {
			return opt.Label, true
		}
	}
	return "", false
}
