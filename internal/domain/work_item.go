package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// WorkItem is a concrete item of some work item type. Its status and
// priority selections are validated against the type's vocabularies at
// write time; custom and assignment values live in field_values rows.
type WorkItem struct {
	BaseModel
	ProjectID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_work_items_project_id" json:"project_id"`
	TypeID        uuid.UUID  `gorm:"type:uuid;not null;index:idx_work_items_type_id" json:"type_id"`
	ParentID      *uuid.UUID `gorm:"type:uuid;index:idx_work_items_parent_id" json:"parent_id,omitempty"`
	Title         string     `gorm:"type:varchar(255);not null" json:"title"`
	Description   string     `gorm:"type:text" json:"description"`
	StatusID      string     `gorm:"type:varchar(100);not null" json:"status_id"`
	PriorityValue int        `gorm:"not null" json:"priority_value"`
	CreatedBy     uuid.UUID  `gorm:"type:uuid;not null;index:idx_work_items_created_by" json:"created_by"`
	AssignedTo    *uuid.UUID `gorm:"type:uuid;index:idx_work_items_assigned_to" json:"assigned_to,omitempty"`
	DueDate       *time.Time `gorm:"type:timestamp;index:idx_work_items_due_date" json:"due_date,omitempty"`
	// JSON string array; items created through older type schemas may
	// instead carry labels in a custom field, which the projection layer
	// falls back to
	Labels           datatypes.JSON `gorm:"type:jsonb" json:"labels,omitempty"`
	SequentialNumber int            `gorm:"not null;index:idx_work_items_sequential_number" json:"sequential_number"`
	IsActive         bool           `gorm:"not null;default:true;index:idx_work_items_is_active" json:"is_active"`

	Type        WorkItemType `gorm:"foreignKey:TypeID" json:"type,omitempty"`
	FieldValues []FieldValue `gorm:"foreignKey:WorkItemID;constraint:OnDelete:CASCADE" json:"field_values,omitempty"`
}

// TableName specifies the table name for WorkItem
func (WorkItem) TableName() string {
	return "work_items"
}
