package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateWorkItemRequest represents the request to create a work item.
// FieldValues maps field schema ids to raw string values; structured
// values are serialized by the caller.
type CreateWorkItemRequest struct {
	ProjectID     uuid.UUID         `json:"projectId" binding:"required"`
	TypeID        uuid.UUID         `json:"typeId" binding:"required"`
	ParentID      *uuid.UUID        `json:"parentId"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	StatusID      string            `json:"statusId"`
	PriorityValue int               `json:"priorityValue"`
	AssignedTo    *uuid.UUID        `json:"assignedTo"`
	DueDate       *time.Time        `json:"dueDate"`
	Labels        []string          `json:"labels"`
	FieldValues   map[string]string `json:"fieldValues"`
}

// UpdateWorkItemRequest represents the request to update a work item
type UpdateWorkItemRequest struct {
	Title         *string           `json:"title"`
	Description   *string           `json:"description"`
	StatusID      *string           `json:"statusId"`
	PriorityValue *int              `json:"priorityValue"`
	AssignedTo    *uuid.UUID        `json:"assignedTo"`
	DueDate       *time.Time        `json:"dueDate"`
	Labels        []string          `json:"labels"`
	FieldValues   map[string]string `json:"fieldValues"`
}

// FieldValueResponse represents one stored field value
type FieldValueResponse struct {
	FieldID           string `json:"fieldId"`
	IsAssignmentField bool   `json:"isAssignmentField"`
	Value             string `json:"value"`
}

// WorkItemResponse represents the work item response
type WorkItemResponse struct {
	WorkItemID       uuid.UUID            `json:"workItemId"`
	ProjectID        uuid.UUID            `json:"projectId"`
	TypeID           uuid.UUID            `json:"typeId"`
	ParentID         *uuid.UUID           `json:"parentId,omitempty"`
	Title            string               `json:"title"`
	Description      string               `json:"description"`
	StatusID         string               `json:"statusId"`
	PriorityValue    int                  `json:"priorityValue"`
	CreatedBy        uuid.UUID            `json:"createdBy"`
	AssignedTo       *uuid.UUID           `json:"assignedTo,omitempty"`
	DueDate          *time.Time           `json:"dueDate,omitempty"`
	Labels           []string             `json:"labels"`
	SequentialNumber int                  `json:"sequentialNumber"`
	FieldValues      []FieldValueResponse `json:"fieldValues"`
	CreatedAt        time.Time            `json:"createdAt"`
	UpdatedAt        time.Time            `json:"updatedAt"`
}
