package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"project-tracker-api/internal/domain"
)

// FieldValueRepository defines the interface for field value data access
type FieldValueRepository interface {
	FindByWorkItem(ctx context.Context, workItemID uuid.UUID) ([]*domain.FieldValue, error)
	// PurgeInactiveBefore hard-deletes values deactivated before the
	// cutoff. Used by the retention cleanup job.
	PurgeInactiveBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// fieldValueRepositoryImpl is the GORM implementation of FieldValueRepository
type fieldValueRepositoryImpl struct {
	base
}

// NewFieldValueRepository creates a new instance of FieldValueRepository
func NewFieldValueRepository(db *gorm.DB) FieldValueRepository {
	return &fieldValueRepositoryImpl{base{db: db}}
}

// FindByWorkItem finds the active values of a work item
func (r *fieldValueRepositoryImpl) FindByWorkItem(ctx context.Context, workItemID uuid.UUID) ([]*domain.FieldValue, error) {
	db, err := r.conn()
	if err != nil {
		return nil, err
	}
	var values []*domain.FieldValue
	if err := db.WithContext(ctx).
		Where("work_item_id = ? AND is_active = ?", workItemID, true).
		Find(&values).Error; err != nil {
		return nil, err
	}
	return values, nil
}

// PurgeInactiveBefore removes long-deactivated values for good
func (r *fieldValueRepositoryImpl) PurgeInactiveBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	db, err := r.conn()
	if err != nil {
		return 0, err
	}
	result := db.WithContext(ctx).
		Unscoped().
		Where("is_active = ? AND updated_at < ?", false, cutoff).
		Delete(&domain.FieldValue{})
	return result.RowsAffected, result.Error
}
