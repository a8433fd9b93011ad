package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"project-tracker-api/internal/domain"
	"project-tracker-api/internal/dto"
	"project-tracker-api/internal/metrics"
	"project-tracker-api/internal/projection"
	"project-tracker-api/internal/repository"
	"project-tracker-api/internal/response"
	"project-tracker-api/internal/schema"
)

// Validation codes issued by the work item validator on top of the
// field-level codes in the schema package
const (
	ErrUnknownField = "UNKNOWN_FIELD"
)

// WorkItemService defines the interface for work item business logic
type WorkItemService interface {
	CreateWorkItem(ctx context.Context, userID uuid.UUID, req *dto.CreateWorkItemRequest) (*dto.WorkItemResponse, error)
	GetWorkItem(ctx context.Context, workItemID uuid.UUID) (*dto.WorkItemResponse, error)
	GetWorkItemDisplay(ctx context.Context, workItemID uuid.UUID) (*dto.DisplayWorkItem, error)
	ListProjectWorkItems(ctx context.Context, projectID uuid.UUID) ([]*dto.WorkItemResponse, error)
	UpdateWorkItem(ctx context.Context, userID, workItemID uuid.UUID, req *dto.UpdateWorkItemRequest) (*dto.WorkItemResponse, error)
	DeleteWorkItem(ctx context.Context, workItemID uuid.UUID) error
}

// workItemServiceImpl is the implementation of WorkItemService
type workItemServiceImpl struct {
	workItemRepo repository.WorkItemRepository
	typeRepo     repository.WorkItemTypeRepository
	metrics      *metrics.Metrics
	logger       *zap.Logger
}

// NewWorkItemService creates a new instance of WorkItemService
func NewWorkItemService(
	workItemRepo repository.WorkItemRepository,
	typeRepo repository.WorkItemTypeRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) WorkItemService {
	return &workItemServiceImpl{
		workItemRepo: workItemRepo,
		typeRepo:     typeRepo,
		metrics:      m,
		logger:       logger,
	}
}

// CreateWorkItem validates a draft against its type and persists it
// with its field values
func (s *workItemServiceImpl) CreateWorkItem(ctx context.Context, userID uuid.UUID, req *dto.CreateWorkItemRequest) (*dto.WorkItemResponse, error) {
	itemType, err := s.typeRepo.FindByID(ctx, req.TypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Work item type not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch work item type", err.Error())
	}
	if itemType.ProjectID != req.ProjectID {
		return nil, response.NewValidationError("Work item type does not belong to this project", "")
	}

	if req.ParentID != nil {
		if err := s.checkHierarchy(ctx, *req.ParentID, req.ProjectID, itemType.ID); err != nil {
			return nil, err
		}
	}

	values, validationErrors := validateDraft(itemType, draftFromCreate(req), userID)
	if len(validationErrors) > 0 {
		return nil, response.NewValidationError("Work item validation failed", validationErrors)
	}

	item := &domain.WorkItem{
		BaseModel:     domain.BaseModel{ID: uuid.New()},
		ProjectID:     req.ProjectID,
		TypeID:        req.TypeID,
		ParentID:      req.ParentID,
		Title:         req.Title,
		Description:   req.Description,
		StatusID:      req.StatusID,
		PriorityValue: req.PriorityValue,
		CreatedBy:     userID,
		AssignedTo:    req.AssignedTo,
		DueDate:       req.DueDate,
		Labels:        encodeLabels(req.Labels),
		IsActive:      true,
	}

	if err := s.workItemRepo.CreateWithValues(ctx, item, values); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create work item", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementWorkItemCreated()
	}
	s.logger.Info("Work item created",
		zap.String("work_item_id", item.ID.String()),
		zap.String("project_id", item.ProjectID.String()),
		zap.Int("sequential_number", item.SequentialNumber),
	)

	item.FieldValues = dereferenceValues(values)
	return toWorkItemResponse(item), nil
}

// GetWorkItem retrieves a work item with its stored field values
func (s *workItemServiceImpl) GetWorkItem(ctx context.Context, workItemID uuid.UUID) (*dto.WorkItemResponse, error) {
	item, err := s.findItem(ctx, workItemID)
	if err != nil {
		return nil, err
	}
	return toWorkItemResponse(item), nil
}

// GetWorkItemDisplay derives the display-ready projection of an item.
// Works even when the item's type has been deactivated or its schema
// has drifted; unresolved references render as raw stored values.
func (s *workItemServiceImpl) GetWorkItemDisplay(ctx context.Context, workItemID uuid.UUID) (*dto.DisplayWorkItem, error) {
	item, err := s.findItem(ctx, workItemID)
	if err != nil {
		return nil, err
	}

	itemType, err := s.typeRepo.FindByID(ctx, item.TypeID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch work item type", err.Error())
	}
	// itemType stays nil when the type is gone; projection degrades
	return projection.Project(item, itemType), nil
}

// ListProjectWorkItems lists a project's active work items
func (s *workItemServiceImpl) ListProjectWorkItems(ctx context.Context, projectID uuid.UUID) ([]*dto.WorkItemResponse, error) {
	items, err := s.workItemRepo.FindByProject(ctx, projectID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch work items", err.Error())
	}
	responses := make([]*dto.WorkItemResponse, len(items))
	for i, item := range items {
		responses[i] = toWorkItemResponse(item)
	}
	return responses, nil
}

// UpdateWorkItem revalidates and saves an existing item
func (s *workItemServiceImpl) UpdateWorkItem(ctx context.Context, userID, workItemID uuid.UUID, req *dto.UpdateWorkItemRequest) (*dto.WorkItemResponse, error) {
	item, err := s.findItem(ctx, workItemID)
	if err != nil {
		return nil, err
	}

	itemType, err := s.typeRepo.FindByID(ctx, item.TypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewValidationError("Work item type is no longer active", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch work item type", err.Error())
	}

	applyUpdate(item, req)

	values, validationErrors := validateDraft(itemType, draftFromItem(item, req), userID)
	if len(validationErrors) > 0 {
		return nil, response.NewValidationError("Work item validation failed", validationErrors)
	}

	if err := s.workItemRepo.UpdateWithValues(ctx, item, values); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update work item", err.Error())
	}

	item.FieldValues = dereferenceValues(values)
	return toWorkItemResponse(item), nil
}

// DeleteWorkItem soft-deletes a work item and its values
func (s *workItemServiceImpl) DeleteWorkItem(ctx context.Context, workItemID uuid.UUID) error {
	if _, err := s.findItem(ctx, workItemID); err != nil {
		return err
	}
	if err := s.workItemRepo.SoftDelete(ctx, workItemID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete work item", err.Error())
	}
	return nil
}

func (s *workItemServiceImpl) findItem(ctx context.Context, workItemID uuid.UUID) (*domain.WorkItem, error) {
	item, err := s.workItemRepo.FindByID(ctx, workItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Work item not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch work item", err.Error())
	}
	return item, nil
}

// checkHierarchy verifies the parent item exists in the same project
// and that the parent's type allows children of childTypeID. Types may
// allow themselves as children; nesting depth is unbounded.
func (s *workItemServiceImpl) checkHierarchy(ctx context.Context, parentID, projectID, childTypeID uuid.UUID) error {
	parent, err := s.workItemRepo.FindByID(ctx, parentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewValidationError("Parent work item not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch parent work item", err.Error())
	}
	if parent.ProjectID != projectID {
		return response.NewValidationError("Parent work item belongs to a different project", "")
	}

	parentType, err := s.typeRepo.FindByID(ctx, parent.TypeID)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch parent work item type", err.Error())
	}
	allowed, err := parentType.AllowsChildType(childTypeID)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to decode parent type hierarchy", err.Error())
	}
	if !allowed {
		return response.NewValidationError(
			fmt.Sprintf("Type %q does not allow this child type", parentType.Name), "")
	}
	return nil
}

// draft is the normalized input the validator runs against
type draft struct {
	Title         string
	StatusID      string
	PriorityValue int
	FieldValues   map[string]string
}

func draftFromCreate(req *dto.CreateWorkItemRequest) draft {
	return draft{
		Title:         req.Title,
		StatusID:      req.StatusID,
		PriorityValue: req.PriorityValue,
		FieldValues:   req.FieldValues,
	}
}

func draftFromItem(item *domain.WorkItem, req *dto.UpdateWorkItemRequest) draft {
	return draft{
		Title:         item.Title,
		StatusID:      item.StatusID,
		PriorityValue: item.PriorityValue,
		FieldValues:   req.FieldValues,
	}
}

func applyUpdate(item *domain.WorkItem, req *dto.UpdateWorkItemRequest) {
	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.StatusID != nil {
		item.StatusID = *req.StatusID
	}
	if req.PriorityValue != nil {
		item.PriorityValue = *req.PriorityValue
	}
	if req.AssignedTo != nil {
		item.AssignedTo = req.AssignedTo
	}
	if req.DueDate != nil {
		item.DueDate = req.DueDate
	}
	if req.Labels != nil {
		item.Labels = encodeLabels(req.Labels)
	}
}

// validateDraft checks a draft against its type and collects every
// applicable error rather than failing fast, so a form can surface all
// invalid fields at once. On success it returns the EAV rows to store,
// each tagged with whether its schema came from the assignment set.
func validateDraft(itemType *domain.WorkItemType, d draft, userID uuid.UUID) ([]*domain.FieldValue, []schema.FieldError) {
	var errs []schema.FieldError

	if d.Title == "" {
		errs = append(errs, schema.FieldError{
			FieldID: "title",
			Code:    schema.ErrMissingRequiredField,
			Message: "Title is required",
		})
	}

	statuses, statusErr := itemType.StatusOptions()
	if statusErr == nil && !statusMember(statuses, d.StatusID) {
		errs = append(errs, schema.FieldError{
			FieldID: "statusId",
			Code:    schema.ErrInvalidOption,
			Message: fmt.Sprintf("%q is not an allowed status for type %s", d.StatusID, itemType.Name),
		})
	}

	priorities, priorityErr := itemType.PriorityOptions()
	if priorityErr == nil && !priorityMember(priorities, d.PriorityValue) {
		errs = append(errs, schema.FieldError{
			FieldID: "priorityValue",
			Code:    schema.ErrInvalidOption,
			Message: fmt.Sprintf("%d is not an allowed priority for type %s", d.PriorityValue, itemType.Name),
		})
	}

	var values []*domain.FieldValue
	known := make(map[string]bool)

	collect := func(fields []schema.FieldSchema, isAssignment bool) {
		for _, f := range fields {
			known[f.ID] = true
			var raw *string
			if v, ok := d.FieldValues[f.ID]; ok {
				raw = &v
			}
			validated, fieldErr := schema.Validate(f, raw)
			if fieldErr != nil {
				errs = append(errs, *fieldErr)
				continue
			}
			if validated.Empty {
				continue
			}
			values = append(values, &domain.FieldValue{
				BaseModel:         domain.BaseModel{ID: uuid.New()},
				FieldID:           f.ID,
				IsAssignmentField: isAssignment,
				Value:             validated.Text,
				CreatedBy:         userID,
				UpdatedBy:         userID,
				IsActive:          true,
			})
		}
	}

	assignmentFields, assignErr := itemType.AssignmentFieldSchemas()
	customFields, customErr := itemType.CustomFieldSchemas()
	if assignErr == nil {
		collect(assignmentFields, true)
	}
	if customErr == nil {
		collect(customFields, false)
	}

	// Submitted values must reference a field schema of the type
	submittedIDs := make([]string, 0, len(d.FieldValues))
	for id := range d.FieldValues {
		submittedIDs = append(submittedIDs, id)
	}
	sort.Strings(submittedIDs)
	for _, id := range submittedIDs {
		if !known[id] {
			errs = append(errs, schema.FieldError{
				FieldID: id,
				Code:    ErrUnknownField,
				Message: fmt.Sprintf("Field %q is not defined for type %s", id, itemType.Name),
			})
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return values, nil
}

func statusMember(statuses []schema.StatusOption, id string) bool {
	for _, s := range statuses {
		if s.ID == id {
			return true
		}
	}
	return false
}

func priorityMember(priorities []schema.PriorityOption, value int) bool {
	for _, p := range priorities {
		if p.Value == value {
			return true
		}
	}
	return false
}

func encodeLabels(labels []string) datatypes.JSON {
	if labels == nil {
		return nil
	}
	data, err := json.Marshal(labels)
	if err != nil {
		return nil
	}
	return datatypes.JSON(data)
}

func dereferenceValues(values []*domain.FieldValue) []domain.FieldValue {
	result := make([]domain.FieldValue, len(values))
	for i, v := range values {
		if v != nil {
			result[i] = *v
		}
	}
	return result
}
