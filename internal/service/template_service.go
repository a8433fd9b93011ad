package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"project-tracker-api/internal/domain"
	"project-tracker-api/internal/dto"
	"project-tracker-api/internal/metrics"
	"project-tracker-api/internal/repository"
	"project-tracker-api/internal/response"
	"project-tracker-api/internal/schema"
	"project-tracker-api/internal/template"
)

// TemplateService defines the interface for the template catalog and
// the template application engine
type TemplateService interface {
	ListTemplates(ctx context.Context) []*dto.TemplateSummaryResponse
	GetTemplate(ctx context.Context, templateID string) (*dto.TemplateResponse, error)
	// ApplyTemplate validates a batch of type definitions against the
	// closed-world reference rules and, only if the whole batch is
	// valid, materializes every definition as a project-scoped work
	// item type. All-or-nothing: a malformed template persists nothing.
	ApplyTemplate(ctx context.Context, projectID uuid.UUID, defs []schema.TypeDefinition) ([]*dto.WorkItemTypeResponse, error)
	GetProjectTypes(ctx context.Context, projectID uuid.UUID) ([]*dto.WorkItemTypeResponse, error)
}

// templateServiceImpl is the implementation of TemplateService
type templateServiceImpl struct {
	projectRepo repository.ProjectRepository
	typeRepo    repository.WorkItemTypeRepository
	typeCache   *TypeCache
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewTemplateService creates a new instance of TemplateService
func NewTemplateService(
	projectRepo repository.ProjectRepository,
	typeRepo repository.WorkItemTypeRepository,
	typeCache *TypeCache,
	m *metrics.Metrics,
	logger *zap.Logger,
) TemplateService {
	return &templateServiceImpl{
		projectRepo: projectRepo,
		typeRepo:    typeRepo,
		typeCache:   typeCache,
		metrics:     m,
		logger:      logger,
	}
}

// ListTemplates lists the built-in template catalog
func (s *templateServiceImpl) ListTemplates(ctx context.Context) []*dto.TemplateSummaryResponse {
	catalog := template.BuiltIn()
	responses := make([]*dto.TemplateSummaryResponse, len(catalog))
	for i, t := range catalog {
		responses[i] = &dto.TemplateSummaryResponse{
			TemplateID:  t.ID,
			Name:        t.Name,
			Description: t.Description,
			Category:    string(t.Category),
			TypeCount:   len(t.WorkItemTypes),
		}
	}
	return responses
}

// GetTemplate returns one catalog template including its type definitions
func (s *templateServiceImpl) GetTemplate(ctx context.Context, templateID string) (*dto.TemplateResponse, error) {
	t, ok := template.BuiltInByID(templateID)
	if !ok {
		return nil, response.NewNotFoundError("Template not found", templateID)
	}
	return &dto.TemplateResponse{
		TemplateID:    t.ID,
		Name:          t.Name,
		Description:   t.Description,
		Category:      string(t.Category),
		WorkItemTypes: t.WorkItemTypes,
	}, nil
}

// ApplyTemplate runs the two validation phases and then persists the
// whole batch in one transaction
func (s *templateServiceImpl) ApplyTemplate(ctx context.Context, projectID uuid.UUID, defs []schema.TypeDefinition) ([]*dto.WorkItemTypeResponse, error) {
	if len(defs) == 0 {
		return nil, response.NewValidationError("Template has no work item types", "")
	}

	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Project not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch project", err.Error())
	}

	// Phase 1: register every definition, collecting duplicate names.
	// Names already taken by the project's existing types are duplicates
	// too; re-application of a template is not a supported operation.
	reg := template.NewRegistry()
	existing, err := s.typeRepo.FindByProject(ctx, projectID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch project types", err.Error())
	}
	taken := make(map[string]bool, len(existing))
	for _, t := range existing {
		taken[t.Name] = true
	}

	var duplicates []string
	for _, def := range defs {
		if taken[def.Name] {
			duplicates = append(duplicates, def.Name)
			continue
		}
		if err := reg.Register(def); err != nil {
			var dup *template.DuplicateNameError
			if errors.As(err, &dup) {
				duplicates = append(duplicates, dup.Name)
			}
		}
	}
	if len(duplicates) > 0 {
		s.metricsApplyFailure()
		return nil, response.NewAppError(response.ErrCodeDuplicateTypeName,
			fmt.Sprintf("Duplicate type names: %v", duplicates), duplicates)
	}

	// Phase 2: closure validation over the full batch. Definitions may
	// reference siblings declared later, so this only runs after every
	// definition has been registered.
	if errs := reg.ValidateClosure(); len(errs) > 0 {
		details := make([]string, len(errs))
		for i, e := range errs {
			details[i] = e.Error()
		}
		s.metricsApplyFailure()
		return nil, response.NewAppError(response.ErrCodeUnresolvedChildReference,
			"Template references unknown child types", details)
	}

	// Phase 3: assign stable IDs up front so child name references can
	// be resolved to IDs before anything touches the database.
	idsByName := make(map[string]uuid.UUID, len(defs))
	for _, def := range defs {
		idsByName[def.Name] = uuid.New()
	}

	types := make([]*domain.WorkItemType, 0, len(defs))
	for _, def := range defs {
		childIDs := make([]uuid.UUID, 0, len(def.AllowedChildTypeNames))
		for _, childName := range def.AllowedChildTypeNames {
			childIDs = append(childIDs, idsByName[childName])
		}
		t, err := domain.NewWorkItemType(idsByName[def.Name], projectID, def, childIDs)
		if err != nil {
			s.metricsApplyFailure()
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to encode type definition", err.Error())
		}
		types = append(types, t)
	}

	if err := s.typeRepo.CreateBatch(ctx, types); err != nil {
		s.metricsApplyFailure()
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to persist work item types", err.Error())
	}

	s.typeCache.Invalidate(ctx, projectID)
	if s.metrics != nil {
		s.metrics.IncrementTemplateApplied()
	}
	s.logger.Info("Template applied",
		zap.String("project_id", projectID.String()),
		zap.Int("type_count", len(types)),
	)

	return toWorkItemTypeResponses(types), nil
}

// GetProjectTypes lists a project's active types, cache first
func (s *templateServiceImpl) GetProjectTypes(ctx context.Context, projectID uuid.UUID) ([]*dto.WorkItemTypeResponse, error) {
	if cached := s.typeCache.Get(ctx, projectID); cached != nil {
		return toWorkItemTypeResponses(cached), nil
	}

	types, err := s.typeRepo.FindByProject(ctx, projectID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch work item types", err.Error())
	}
	s.typeCache.Set(ctx, projectID, types)
	return toWorkItemTypeResponses(types), nil
}

func (s *templateServiceImpl) metricsApplyFailure() {
	if s.metrics != nil {
		s.metrics.IncrementTemplateApplyFailure()
	}
}
