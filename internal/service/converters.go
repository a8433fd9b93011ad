package service

import (
	"encoding/json"

	"github.com/google/uuid"

	"project-tracker-api/internal/domain"
	"project-tracker-api/internal/dto"
)

func toProjectResponse(p *domain.Project) *dto.ProjectResponse {
	return &dto.ProjectResponse{
		ProjectID:   p.ID,
		OwnerID:     p.OwnerID,
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toWorkItemTypeResponse(t *domain.WorkItemType) *dto.WorkItemTypeResponse {
	resp := &dto.WorkItemTypeResponse{
		TypeID:      t.ID,
		ProjectID:   t.ProjectID,
		Name:        t.Name,
		DisplayName: t.DisplayName,
		Description: t.Description,
		Icon:        t.Icon,
		Color:       t.Color,
		IsActive:    t.IsActive,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	// Column decode failures leave the affected slice empty rather than
	// failing the whole response
	if ids, err := t.ChildTypeIDs(); err == nil {
		resp.AllowedChildTypeIDs = ids
	}
	if resp.AllowedChildTypeIDs == nil {
		resp.AllowedChildTypeIDs = []uuid.UUID{}
	}
	if statuses, err := t.StatusOptions(); err == nil {
		resp.AllowedStatuses = statuses
	}
	if priorities, err := t.PriorityOptions(); err == nil {
		resp.AllowedPriorities = priorities
	}
	if fields, err := t.AssignmentFieldSchemas(); err == nil {
		resp.AssignmentFields = fields
	}
	if fields, err := t.CustomFieldSchemas(); err == nil {
		resp.CustomFields = fields
	}
	return resp
}

func toWorkItemTypeResponses(types []*domain.WorkItemType) []*dto.WorkItemTypeResponse {
	responses := make([]*dto.WorkItemTypeResponse, len(types))
	for i, t := range types {
		responses[i] = toWorkItemTypeResponse(t)
	}
	return responses
}

func toWorkItemResponse(item *domain.WorkItem) *dto.WorkItemResponse {
	resp := &dto.WorkItemResponse{
		WorkItemID:       item.ID,
		ProjectID:        item.ProjectID,
		TypeID:           item.TypeID,
		ParentID:         item.ParentID,
		Title:            item.Title,
		Description:      item.Description,
		StatusID:         item.StatusID,
		PriorityValue:    item.PriorityValue,
		CreatedBy:        item.CreatedBy,
		AssignedTo:       item.AssignedTo,
		DueDate:          item.DueDate,
		Labels:           []string{},
		SequentialNumber: item.SequentialNumber,
		FieldValues:      make([]dto.FieldValueResponse, 0, len(item.FieldValues)),
		CreatedAt:        item.CreatedAt,
		UpdatedAt:        item.UpdatedAt,
	}
	if len(item.Labels) > 0 {
		var labels []string
		if err := json.Unmarshal(item.Labels, &labels); err == nil {
			resp.Labels = labels
		}
	}
	for _, fv := range item.FieldValues {
		resp.FieldValues = append(resp.FieldValues, dto.FieldValueResponse{
			FieldID:           fv.FieldID,
			IsAssignmentField: fv.IsAssignmentField,
			Value:             fv.Value,
		})
	}
	return resp
}

func toAttachmentResponse(a *domain.Attachment) *dto.AttachmentResponse {
	return &dto.AttachmentResponse{
		AttachmentID: a.ID,
		EntityType:   string(a.EntityType),
		EntityID:     a.EntityID,
		FileName:     a.FileName,
		ContentType:  a.ContentType,
		FileSize:     a.FileSize,
		UploadedBy:   a.UploadedBy,
		CreatedAt:    a.CreatedAt,
	}
}
