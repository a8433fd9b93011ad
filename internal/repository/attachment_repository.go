package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"project-tracker-api/internal/domain"
)

// AttachmentRepository defines the interface for attachment data access
type AttachmentRepository interface {
	Create(ctx context.Context, attachment *domain.Attachment) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Attachment, error)
	FindByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) ([]*domain.Attachment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// attachmentRepositoryImpl is the GORM implementation of AttachmentRepository
type attachmentRepositoryImpl struct {
	base
}

// NewAttachmentRepository creates a new instance of AttachmentRepository
func NewAttachmentRepository(db *gorm.DB) AttachmentRepository {
	return &attachmentRepositoryImpl{base{db: db}}
}

// Create stores a new attachment including its byte payload
func (r *attachmentRepositoryImpl) Create(ctx context.Context, attachment *domain.Attachment) error {
	db, err := r.conn()
	if err != nil {
		return err
	}
	return db.WithContext(ctx).Create(attachment).Error
}

// FindByID finds an attachment by ID, payload included
func (r *attachmentRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Attachment, error) {
	db, err := r.conn()
	if err != nil {
		return nil, err
	}
	var attachment domain.Attachment
	if err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&attachment).Error; err != nil {
		return nil, err
	}
	return &attachment, nil
}

// FindByEntity finds the attachments associated with one entity
func (r *attachmentRepositoryImpl) FindByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) ([]*domain.Attachment, error) {
	db, err := r.conn()
	if err != nil {
		return nil, err
	}
	var attachments []*domain.Attachment
	if err := db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("created_at ASC").
		Find(&attachments).Error; err != nil {
		return nil, err
	}
	return attachments, nil
}

// Delete removes an attachment
func (r *attachmentRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	db, err := r.conn()
	if err != nil {
		return err
	}
	return db.WithContext(ctx).Delete(&domain.Attachment{}, id).Error
}
