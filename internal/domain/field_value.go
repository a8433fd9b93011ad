package domain

import (
	"github.com/google/uuid"
)

// FieldValue is one EAV row: the value of a single field schema for a
// single work item. Values are always stored as strings; structured
// values (arrays, numbers) are serialized at the boundary and decoded
// by the projection layer.
type FieldValue struct {
	BaseModel
	WorkItemID        uuid.UUID `gorm:"type:uuid;not null;index:idx_field_values_work_item_id;uniqueIndex:uq_field_values_item_field" json:"work_item_id"`
	FieldID           string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_field_values_item_field" json:"field_id"`
	IsAssignmentField bool      `gorm:"not null;default:false" json:"is_assignment_field"`
	Value             string    `gorm:"type:text;not null" json:"value"`
	CreatedBy         uuid.UUID `gorm:"type:uuid;not null" json:"created_by"`
	UpdatedBy         uuid.UUID `gorm:"type:uuid;not null" json:"updated_by"`
	IsActive          bool      `gorm:"not null;default:true;index:idx_field_values_is_active" json:"is_active"`
}

// TableName specifies the table name for FieldValue
func (FieldValue) TableName() string {
	return "field_values"
}
