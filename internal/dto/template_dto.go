package dto

import (
	"time"

	"github.com/google/uuid"

	"project-tracker-api/internal/schema"
)

// TemplateSummaryResponse lists one catalog template without its types
type TemplateSummaryResponse struct {
	TemplateID  string `json:"templateId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	TypeCount   int    `json:"typeCount"`
}

// TemplateResponse is the full catalog template including its types
type TemplateResponse struct {
	TemplateID    string                  `json:"templateId"`
	Name          string                  `json:"name"`
	Description   string                  `json:"description"`
	Category      string                  `json:"category"`
	WorkItemTypes []schema.TypeDefinition `json:"workItemTypes"`
}

// ApplyTemplateRequest applies a template to a project. Either a
// catalog template id or an inline, flattened workItemTypes array is
// accepted; template metadata is never sent.
type ApplyTemplateRequest struct {
	TemplateID    string                  `json:"templateId"`
	WorkItemTypes []schema.TypeDefinition `json:"workItemTypes"`
}

// WorkItemTypeResponse represents a persisted, project-scoped type
type WorkItemTypeResponse struct {
	TypeID              uuid.UUID               `json:"typeId"`
	ProjectID           uuid.UUID               `json:"projectId"`
	Name                string                  `json:"name"`
	DisplayName         string                  `json:"displayName"`
	Description         string                  `json:"description,omitempty"`
	Icon                string                  `json:"icon,omitempty"`
	Color               string                  `json:"color,omitempty"`
	AllowedChildTypeIDs []uuid.UUID             `json:"allowedChildTypeIds"`
	AllowedStatuses     []schema.StatusOption   `json:"allowedStatuses"`
	AllowedPriorities   []schema.PriorityOption `json:"allowedPriorities"`
	AssignmentFields    []schema.FieldSchema    `json:"assignmentFields"`
	CustomFields        []schema.FieldSchema    `json:"customFields"`
	IsActive            bool                    `json:"isActive"`
	CreatedAt           time.Time               `json:"createdAt"`
	UpdatedAt           time.Time               `json:"updatedAt"`
}
