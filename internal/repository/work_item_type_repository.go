package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"project-tracker-api/internal/domain"
)

// WorkItemTypeRepository defines the interface for work item type data access
type WorkItemTypeRepository interface {
	// CreateBatch persists a set of types in a single transaction.
	// Either every type is persisted or none are; template application
	// must never leave a project with a partial type registry.
	CreateBatch(ctx context.Context, types []*domain.WorkItemType) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.WorkItemType, error)
	FindByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.WorkItemType, error)
	FindByProjectAndName(ctx context.Context, projectID uuid.UUID, name string) (*domain.WorkItemType, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

// workItemTypeRepositoryImpl is the GORM implementation of WorkItemTypeRepository
type workItemTypeRepositoryImpl struct {
	base
}

// NewWorkItemTypeRepository creates a new instance of WorkItemTypeRepository
func NewWorkItemTypeRepository(db *gorm.DB) WorkItemTypeRepository {
	return &workItemTypeRepositoryImpl{base{db: db}}
}

// CreateBatch persists all types atomically
func (r *workItemTypeRepositoryImpl) CreateBatch(ctx context.Context, types []*domain.WorkItemType) error {
	if len(types) == 0 {
		return nil
	}
	db, err := r.conn()
	if err != nil {
		return err
	}
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, t := range types {
			if err := tx.Create(t).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindByID finds an active work item type by ID
func (r *workItemTypeRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.WorkItemType, error) {
	db, err := r.conn()
	if err != nil {
		return nil, err
	}
	var t domain.WorkItemType
	if err := db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// FindByProject finds all active types of a project in creation order
func (r *workItemTypeRepositoryImpl) FindByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.WorkItemType, error) {
	db, err := r.conn()
	if err != nil {
		return nil, err
	}
	var types []*domain.WorkItemType
	if err := db.WithContext(ctx).
		Where("project_id = ? AND is_active = ?", projectID, true).
		Order("created_at ASC").
		Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

// FindByProjectAndName finds an active type by its name within a project
func (r *workItemTypeRepositoryImpl) FindByProjectAndName(ctx context.Context, projectID uuid.UUID, name string) (*domain.WorkItemType, error) {
	db, err := r.conn()
	if err != nil {
		return nil, err
	}
	var t domain.WorkItemType
	if err := db.WithContext(ctx).
		Where("project_id = ? AND name = ? AND is_active = ?", projectID, name, true).
		First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// Deactivate soft-disables a type. Historical work items keep their
// type reference; the projection layer degrades gracefully when a
// type's vocabularies later change.
func (r *workItemTypeRepositoryImpl) Deactivate(ctx context.Context, id uuid.UUID) error {
	db, err := r.conn()
	if err != nil {
		return err
	}
	return db.WithContext(ctx).
		Model(&domain.WorkItemType{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}
