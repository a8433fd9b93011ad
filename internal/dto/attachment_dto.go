package dto

import (
	"time"

	"github.com/google/uuid"

	"project-tracker-api/internal/domain"
)

// UploadAttachmentRequest carries the metadata of an upload; the bytes
// arrive as multipart form data
type UploadAttachmentRequest struct {
	EntityType domain.EntityType `form:"entityType" binding:"required,oneof=PROJECT WORK_ITEM WORK_ITEM_TYPE"`
	EntityID   *uuid.UUID        `form:"entityId"`
}

// AttachmentResponse represents attachment metadata (payload excluded)
type AttachmentResponse struct {
	AttachmentID uuid.UUID  `json:"attachmentId"`
	EntityType   string     `json:"entityType"`
	EntityID     *uuid.UUID `json:"entityId,omitempty"`
	FileName     string     `json:"fileName"`
	ContentType  string     `json:"contentType"`
	FileSize     int64      `json:"fileSize"`
	UploadedBy   uuid.UUID  `json:"uploadedBy"`
	CreatedAt    time.Time  `json:"createdAt"`
}
