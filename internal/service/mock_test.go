package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"project-tracker-api/internal/domain"
)

// MockProjectRepository is a mock implementation of ProjectRepository
type MockProjectRepository struct {
	CreateFunc      func(ctx context.Context, project *domain.Project) error
	FindByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	FindByOwnerFunc func(ctx context.Context, ownerID uuid.UUID) ([]*domain.Project, error)
	UpdateFunc      func(ctx context.Context, project *domain.Project) error
}

func (m *MockProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, project)
	}
	return nil
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockProjectRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Project, error) {
	if m.FindByOwnerFunc != nil {
		return m.FindByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *MockProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, project)
	}
	return nil
}

// MockWorkItemTypeRepository is a mock implementation of WorkItemTypeRepository
type MockWorkItemTypeRepository struct {
	CreateBatchFunc          func(ctx context.Context, types []*domain.WorkItemType) error
	FindByIDFunc             func(ctx context.Context, id uuid.UUID) (*domain.WorkItemType, error)
	FindByProjectFunc        func(ctx context.Context, projectID uuid.UUID) ([]*domain.WorkItemType, error)
	FindByProjectAndNameFunc func(ctx context.Context, projectID uuid.UUID, name string) (*domain.WorkItemType, error)
	DeactivateFunc           func(ctx context.Context, id uuid.UUID) error
}

func (m *MockWorkItemTypeRepository) CreateBatch(ctx context.Context, types []*domain.WorkItemType) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, types)
	}
	return nil
}

func (m *MockWorkItemTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.WorkItemType, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockWorkItemTypeRepository) FindByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.WorkItemType, error) {
	if m.FindByProjectFunc != nil {
		return m.FindByProjectFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *MockWorkItemTypeRepository) FindByProjectAndName(ctx context.Context, projectID uuid.UUID, name string) (*domain.WorkItemType, error) {
	if m.FindByProjectAndNameFunc != nil {
		return m.FindByProjectAndNameFunc(ctx, projectID, name)
	}
	return nil, nil
}

func (m *MockWorkItemTypeRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	if m.DeactivateFunc != nil {
		return m.DeactivateFunc(ctx, id)
	}
	return nil
}

// MockWorkItemRepository is a mock implementation of WorkItemRepository
type MockWorkItemRepository struct {
	CreateWithValuesFunc func(ctx context.Context, item *domain.WorkItem, values []*domain.FieldValue) error
	FindByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.WorkItem, error)
	FindByProjectFunc    func(ctx context.Context, projectID uuid.UUID) ([]*domain.WorkItem, error)
	FindChildrenFunc     func(ctx context.Context, parentID uuid.UUID) ([]*domain.WorkItem, error)
	UpdateWithValuesFunc func(ctx context.Context, item *domain.WorkItem, values []*domain.FieldValue) error
	SoftDeleteFunc       func(ctx context.Context, id uuid.UUID) error
}

func (m *MockWorkItemRepository) CreateWithValues(ctx context.Context, item *domain.WorkItem, values []*domain.FieldValue) error {
	if m.CreateWithValuesFunc != nil {
		return m.CreateWithValuesFunc(ctx, item, values)
	}
	return nil
}

func (m *MockWorkItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.WorkItem, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockWorkItemRepository) FindByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.WorkItem, error) {
	if m.FindByProjectFunc != nil {
		return m.FindByProjectFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *MockWorkItemRepository) FindChildren(ctx context.Context, parentID uuid.UUID) ([]*domain.WorkItem, error) {
	if m.FindChildrenFunc != nil {
		return m.FindChildrenFunc(ctx, parentID)
	}
	return nil, nil
}

func (m *MockWorkItemRepository) UpdateWithValues(ctx context.Context, item *domain.WorkItem, values []*domain.FieldValue) error {
	if m.UpdateWithValuesFunc != nil {
		return m.UpdateWithValuesFunc(ctx, item, values)
	}
	return nil
}

func (m *MockWorkItemRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if m.SoftDeleteFunc != nil {
		return m.SoftDeleteFunc(ctx, id)
	}
	return nil
}

// MockFieldValueRepository is a mock implementation of FieldValueRepository
type MockFieldValueRepository struct {
	FindByWorkItemFunc      func(ctx context.Context, workItemID uuid.UUID) ([]*domain.FieldValue, error)
	PurgeInactiveBeforeFunc func(ctx context.Context, cutoff time.Time) (int64, error)
}

func (m *MockFieldValueRepository) FindByWorkItem(ctx context.Context, workItemID uuid.UUID) ([]*domain.FieldValue, error) {
	if m.FindByWorkItemFunc != nil {
		return m.FindByWorkItemFunc(ctx, workItemID)
	}
	return nil, nil
}

func (m *MockFieldValueRepository) PurgeInactiveBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if m.PurgeInactiveBeforeFunc != nil {
		return m.PurgeInactiveBeforeFunc(ctx, cutoff)
	}
	return 0, nil
}

// MockAttachmentRepository is a mock implementation of AttachmentRepository
type MockAttachmentRepository struct {
	CreateFunc       func(ctx context.Context, attachment *domain.Attachment) error
	FindByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Attachment, error)
	FindByEntityFunc func(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) ([]*domain.Attachment, error)
	DeleteFunc       func(ctx context.Context, id uuid.UUID) error
}

func (m *MockAttachmentRepository) Create(ctx context.Context, attachment *domain.Attachment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, attachment)
	}
	return nil
}

func (m *MockAttachmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Attachment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockAttachmentRepository) FindByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) ([]*domain.Attachment, error) {
	if m.FindByEntityFunc != nil {
		return m.FindByEntityFunc(ctx, entityType, entityID)
	}
	return nil, nil
}

func (m *MockAttachmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}
