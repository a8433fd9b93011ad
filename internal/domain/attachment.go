package domain

import (
	"github.com/google/uuid"
)

// EntityType represents the type of entity an attachment is associated with
type EntityType string

const (
	EntityTypeProject      EntityType = "PROJECT"
	EntityTypeWorkItem     EntityType = "WORK_ITEM"
	EntityTypeWorkItemType EntityType = "WORK_ITEM_TYPE"
)

// Attachment is an uploaded icon image stored as a direct byte-array
// round trip. Uploads are capped at 2 MiB and restricted to png, jpg,
// jpeg and gif, checked by both content sniffing and filename extension.
// EntityID references multiple tables, so it carries no foreign key.
type Attachment struct {
	BaseModel
	EntityType  EntityType `gorm:"type:varchar(50);not null;index:idx_attachments_entity,priority:1" json:"entity_type"`
	EntityID    *uuid.UUID `gorm:"type:uuid;index:idx_attachments_entity,priority:2" json:"entity_id"`
	FileName    string     `gorm:"type:varchar(255);not null" json:"file_name"`
	ContentType string     `gorm:"type:varchar(100);not null" json:"content_type"`
	FileSize    int64      `gorm:"not null" json:"file_size"`
	Data        []byte     `gorm:"type:bytea;not null" json:"-"`
	UploadedBy  uuid.UUID  `gorm:"type:uuid;not null;index:idx_attachments_uploaded_by" json:"uploaded_by"`
}

// TableName specifies the table name for Attachment
func (Attachment) TableName() string {
	return "attachments"
}
