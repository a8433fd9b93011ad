package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"project-tracker-api/internal/domain"
)

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Project, error)
	Update(ctx context.Context, project *domain.Project) error
}

// projectRepositoryImpl is the GORM implementation of ProjectRepository
type projectRepositoryImpl struct {
	base
}

// NewProjectRepository creates a new instance of ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepositoryImpl{base{db: db}}
}

// Create creates a new project
func (r *projectRepositoryImpl) Create(ctx context.Context, project *domain.Project) error {
	db, err := r.conn()
	if err != nil {
		return err
	}
	return db.WithContext(ctx).Create(project).Error
}

// FindByID finds an active project by ID
func (r *projectRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	db, err := r.conn()
	if err != nil {
		return nil, err
	}
	var project domain.Project
	if err := db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// FindByOwner finds all active projects owned by a user
func (r *projectRepositoryImpl) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Project, error) {
	db, err := r.conn()
	if err != nil {
		return nil, err
	}
	var projects []*domain.Project
	if err := db.WithContext(ctx).
		Where("owner_id = ? AND is_active = ?", ownerID, true).
		Order("created_at ASC").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// Update updates a project
func (r *projectRepositoryImpl) Update(ctx context.Context, project *domain.Project) error {
	db, err := r.conn()
	if err != nil {
		return err
	}
	return db.WithContext(ctx).Save(project).Error
}
