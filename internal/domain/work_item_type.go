package domain

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"project-tracker-api/internal/schema"
)

// WorkItemType is the project-scoped materialization of a template type
// definition. Schema vocabularies (statuses, priorities, field schemas)
// are stored as JSON columns; child-type references are resolved from
// names to stable IDs at application time so later renames cannot break
// the hierarchy. Types are deactivated, never deleted, to preserve the
// referential integrity of historical work items.
type WorkItemType struct {
	BaseModel
	ProjectID   uuid.UUID `gorm:"type:uuid;not null;index:idx_work_item_types_project_id;uniqueIndex:uq_work_item_types_project_name" json:"project_id"`
	Name        string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_work_item_types_project_name" json:"name"`
	DisplayName string    `gorm:"type:varchar(200);not null" json:"display_name"`
	Description string    `gorm:"type:text" json:"description"`
	Icon        string    `gorm:"type:varchar(50)" json:"icon"`
	Color       string    `gorm:"type:varchar(20)" json:"color"`

	AllowedChildTypeIDs datatypes.JSON `gorm:"type:jsonb" json:"allowed_child_type_ids"`
	AllowedStatuses     datatypes.JSON `gorm:"type:jsonb" json:"allowed_statuses"`
	AllowedPriorities   datatypes.JSON `gorm:"type:jsonb" json:"allowed_priorities"`
	AssignmentFields    datatypes.JSON `gorm:"type:jsonb" json:"assignment_fields"`
	CustomFields        datatypes.JSON `gorm:"type:jsonb" json:"custom_fields"`

	IsActive bool `gorm:"not null;default:true;index:idx_work_item_types_is_active" json:"is_active"`
}

// TableName specifies the table name for WorkItemType
func (WorkItemType) TableName() string {
	return "work_item_types"
}

// NewWorkItemType materializes a type definition for a project.
// childIDs must already be resolved from the definition's child names.
func NewWorkItemType(id, projectID uuid.UUID, def schema.TypeDefinition, childIDs []uuid.UUID) (*WorkItemType, error) {
	childJSON, err := json.Marshal(childIDs)
	if err != nil {
		return nil, fmt.Errorf("marshal child type ids: %w", err)
	}
	statusJSON, err := json.Marshal(def.AllowedStatuses)
	if err != nil {
		return nil, fmt.Errorf("marshal statuses: %w", err)
	}
	priorityJSON, err := json.Marshal(def.AllowedPriorities)
	if err != nil {
		return nil, fmt.Errorf("marshal priorities: %w", err)
	}
	assignJSON, err := json.Marshal(emptyIfNilFields(def.AssignmentFields))
	if err != nil {
		return nil, fmt.Errorf("marshal assignment fields: %w", err)
	}
	customJSON, err := json.Marshal(emptyIfNilFields(def.CustomFields))
	if err != nil {
		return nil, fmt.Errorf("marshal custom fields: %w", err)
	}

	return &WorkItemType{
		BaseModel:           BaseModel{ID: id},
		ProjectID:           projectID,
		Name:                def.Name,
		DisplayName:         def.DisplayName,
		Description:         def.Description,
		Icon:                def.Icon,
		Color:               def.Color,
		AllowedChildTypeIDs: datatypes.JSON(childJSON),
		AllowedStatuses:     datatypes.JSON(statusJSON),
		AllowedPriorities:   datatypes.JSON(priorityJSON),
		AssignmentFields:    datatypes.JSON(assignJSON),
		CustomFields:        datatypes.JSON(customJSON),
		IsActive:            true,
	}, nil
}

// ChildTypeIDs decodes the resolved child-type id set
func (t *WorkItemType) ChildTypeIDs() ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if len(t.AllowedChildTypeIDs) == 0 {
		return ids, nil
	}
	if err := json.Unmarshal(t.AllowedChildTypeIDs, &ids); err != nil {
		return nil, fmt.Errorf("decode child type ids of %s: %w", t.Name, err)
	}
	return ids, nil
}

// AllowsChildType reports whether items of childTypeID may nest under
// items of this type
func (t *WorkItemType) AllowsChildType(childTypeID uuid.UUID) (bool, error) {
	ids, err := t.ChildTypeIDs()
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == childTypeID {
			return true, nil
		}
	}
	return false, nil
}

// StatusOptions decodes the type's status vocabulary
func (t *WorkItemType) StatusOptions() ([]schema.StatusOption, error) {
	var statuses []schema.StatusOption
	if len(t.AllowedStatuses) == 0 {
		return statuses, nil
	}
	if err := json.Unmarshal(t.AllowedStatuses, &statuses); err != nil {
		return nil, fmt.Errorf("decode statuses of %s: %w", t.Name, err)
	}
	return statuses, nil
}

// PriorityOptions decodes the type's priority vocabulary
func (t *WorkItemType) PriorityOptions() ([]schema.PriorityOption, error) {
	var priorities []schema.PriorityOption
	if len(t.AllowedPriorities) == 0 {
		return priorities, nil
	}
	if err := json.Unmarshal(t.AllowedPriorities, &priorities); err != nil {
		return nil, fmt.Errorf("decode priorities of %s: %w", t.Name, err)
	}
	return priorities, nil
}

// AssignmentFieldSchemas decodes the type's assignment field schemas
func (t *WorkItemType) AssignmentFieldSchemas() ([]schema.FieldSchema, error) {
	return decodeFields(t.AssignmentFields, t.Name, "assignment")
}

// CustomFieldSchemas decodes the type's custom field schemas
func (t *WorkItemType) CustomFieldSchemas() ([]schema.FieldSchema, error) {
	return decodeFields(t.CustomFields, t.Name, "custom")
}

func decodeFields(raw datatypes.JSON, typeName, kind string) ([]schema.FieldSchema, error) {
	var fields []schema.FieldSchema
	if len(raw) == 0 {
		return fields, nil
	}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("decode %s fields of %s: %w", kind, typeName, err)
	}
	return fields, nil
}

// emptyIfNilFields keeps JSON columns as [] instead of null
func emptyIfNilFields(fields []schema.FieldSchema) []schema.FieldSchema {
	if fields == nil {
		return []schema.FieldSchema{}
	}
	return fields
}
