package dto

import (
	"time"

	"github.com/google/uuid"
)

// DisplayField is one rendered field: the schema label and the
// display-ready value (option labels resolved, dates reformatted)
type DisplayField struct {
	FieldID string `json:"fieldId"`
	Label   string `json:"label"`
	Value   string `json:"value"`
}

// DisplayWorkItem is the display-ready view of a work item. Every
// lookup in it is resolve-or-fallback: stale status, priority or option
// references render as their raw stored value instead of failing, so
// historical items stay viewable after their type schema changes.
type DisplayWorkItem struct {
	WorkItemID       uuid.UUID               `json:"workItemId"`
	ProjectID        uuid.UUID               `json:"projectId"`
	TypeID           uuid.UUID               `json:"typeId"`
	TypeName         string                  `json:"typeName"`
	TypeIcon         string                  `json:"typeIcon,omitempty"`
	TypeColor        string                  `json:"typeColor,omitempty"`
	Title            string                  `json:"title"`
	Description      string                  `json:"description"`
	StatusID         string                  `json:"statusId"`
	StatusLabel      string                  `json:"statusLabel"`
	StatusColor      string                  `json:"statusColor,omitempty"`
	PriorityValue    int                     `json:"priorityValue"`
	PriorityLabel    string                  `json:"priorityLabel"`
	PriorityColor    string                  `json:"priorityColor,omitempty"`
	AssignmentFields map[string]DisplayField `json:"assignmentFields"`
	CustomFields     map[string]DisplayField `json:"customFields"`
	Labels           []string                `json:"labels"`
	DueDate          string                  `json:"dueDate,omitempty"`
	SequentialNumber int                     `json:"sequentialNumber"`
	CreatedAt        time.Time               `json:"createdAt"`
	UpdatedAt        time.Time               `json:"updatedAt"`
}
