package schema

// StatusOption is one entry of a type's status vocabulary.
// The vocabulary is unordered; no workflow transitions are implied.
type StatusOption struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Color       string `json:"color,omitempty"`
	Description string `json:"description,omitempty"`
}

// PriorityOption is one entry of a type's priority vocabulary.
// Value is a numeric rank used for sorting; ranks need not be contiguous.
type PriorityOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value int    `json:"value"`
	Color string `json:"color,omitempty"`
}

// TypeDefinition is a named schema for one kind of work item: which
// child types it may contain, its status and priority vocabularies, and
// its assignment and custom field schemas. Child types are referenced
// by name; names must resolve within the same template (closed world).
type TypeDefinition struct {
	Name                  string           `json:"name"`
	DisplayName           string           `json:"displayName"`
	Description           string           `json:"description,omitempty"`
	Icon                  string           `json:"icon,omitempty"`
	Color                 string           `json:"color,omitempty"`
	AllowedChildTypeNames []string         `json:"allowedChildTypeNames"`
	AllowedStatuses       []StatusOption   `json:"allowedStatuses"`
	AllowedPriorities     []PriorityOption `json:"allowedPriorities"`
	AssignmentFields      []FieldSchema    `json:"assignmentFields"`
	CustomFields          []FieldSchema    `json:"customFields"`
}

// StatusByID resolves a status id within the type's vocabulary
func (d TypeDefinition) StatusByID(id string) (StatusOption, bool) {
	for _, s := range d.AllowedStatuses {
		if s.ID == id {
			return s, true
		}
	}
	return StatusOption{}, false
}

// PriorityByValue resolves a numeric priority rank within the type's vocabulary
func (d TypeDefinition) PriorityByValue(value int) (PriorityOption, bool) {
	for _, p := range d.AllowedPriorities {
		if p.Value == value {
			return p, true
		}
	}
	return PriorityOption{}, false
}

// FieldByID looks up a field schema across assignment and custom fields.
// The second return reports whether the field is an assignment field.
func (d TypeDefinition) FieldByID(id string) (FieldSchema, bool, bool) {
	for _, f := range d.AssignmentFields {
		if f.ID == id {
			return f, true, true
		}
	}
	for _, f := range d.CustomFields {
		if f.ID == id {
			return f, false, true
		}
	}
	return FieldSchema{}, false, false
}

// AllFields returns assignment fields followed by custom fields
func (d TypeDefinition) AllFields() []FieldSchema {
	fields := make([]FieldSchema, 0, len(d.AssignmentFields)+len(d.CustomFields))
	fields = append(fields, d.AssignmentFields...)
	fields = append(fields, d.CustomFields...)
	return fields
}
