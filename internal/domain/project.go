package domain

import (
	"github.com/google/uuid"
)

// Project represents a project entity hosting work item types and items
type Project struct {
	BaseModel
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index:idx_projects_owner_id" json:"owner_id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	IsActive    bool      `gorm:"not null;default:true;index:idx_projects_is_active" json:"is_active"`

	WorkItemTypes []WorkItemType `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"work_item_types,omitempty"`
	WorkItems     []WorkItem     `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"work_items,omitempty"`
}

// TableName specifies the table name for Project
func (Project) TableName() string {
	return "projects"
}
