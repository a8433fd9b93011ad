package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"project-tracker-api/internal/domain"
)

// WorkItemRepository defines the interface for work item data access
type WorkItemRepository interface {
	// CreateWithValues assigns the next per-project sequential number
	// and persists the item together with its field values in one
	// transaction.
	CreateWithValues(ctx context.Context, item *domain.WorkItem, values []*domain.FieldValue) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.WorkItem, error)
	FindByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.WorkItem, error)
	FindChildren(ctx context.Context, parentID uuid.UUID) ([]*domain.WorkItem, error)
	UpdateWithValues(ctx context.Context, item *domain.WorkItem, values []*domain.FieldValue) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// workItemRepositoryImpl is the GORM implementation of WorkItemRepository
type workItemRepositoryImpl struct {
	base
}

// NewWorkItemRepository creates a new instance of WorkItemRepository
func NewWorkItemRepository(db *gorm.DB) WorkItemRepository {
	return &workItemRepositoryImpl{base{db: db}}
}

// CreateWithValues persists the item and its EAV rows atomically
func (r *workItemRepositoryImpl) CreateWithValues(ctx context.Context, item *domain.WorkItem, values []*domain.FieldValue) error {
	db, err := r.conn()
	if err != nil {
		return err
	}
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxSeq int
		if err := tx.Model(&domain.WorkItem{}).
			Where("project_id = ?", item.ProjectID).
			Select("COALESCE(MAX(sequential_number), 0)").
			Scan(&maxSeq).Error; err != nil {
			return err
		}
		item.SequentialNumber = maxSeq + 1

		if err := tx.Create(item).Error; err != nil {
			return err
		}
		for _, v := range values {
			v.WorkItemID = item.ID
			if err := tx.Create(v).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindByID finds an active work item with its field values preloaded
func (r *workItemRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.WorkItem, error) {
	db, err := r.conn()
	if err != nil {
		return nil, err
	}
	var item domain.WorkItem
	if err := db.WithContext(ctx).
		Preload("FieldValues", "is_active = ?", true).
		Where("id = ? AND is_active = ?", id, true).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByProject finds all active work items of a project by sequence
func (r *workItemRepositoryImpl) FindByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.WorkItem, error) {
	db, err := r.conn()
	if err != nil {
		return nil, err
	}
	var items []*domain.WorkItem
	if err := db.WithContext(ctx).
		Where("project_id = ? AND is_active = ?", projectID, true).
		Order("sequential_number ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindChildren finds the active direct children of a work item
func (r *workItemRepositoryImpl) FindChildren(ctx context.Context, parentID uuid.UUID) ([]*domain.WorkItem, error) {
	db, err := r.conn()
	if err != nil {
		return nil, err
	}
	var items []*domain.WorkItem
	if err := db.WithContext(ctx).
		Where("parent_id = ? AND is_active = ?", parentID, true).
		Order("sequential_number ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateWithValues saves the item and upserts its field values in one
// transaction. Values for fields no longer submitted are deactivated,
// not deleted, keeping the EAV history readable.
func (r *workItemRepositoryImpl) UpdateWithValues(ctx context.Context, item *domain.WorkItem, values []*domain.FieldValue) error {
	db, err := r.conn()
	if err != nil {
		return err
	}
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(item).Error; err != nil {
			return err
		}

		submitted := make(map[string]bool, len(values))
		for _, v := range values {
			submitted[v.FieldID] = true

			var existing domain.FieldValue
			err := tx.Where("work_item_id = ? AND field_id = ?", item.ID, v.FieldID).
				First(&existing).Error
			switch {
			case err == nil:
				existing.Value = v.Value
				existing.IsAssignmentField = v.IsAssignmentField
				existing.UpdatedBy = v.UpdatedBy
				existing.IsActive = true
				if err := tx.Save(&existing).Error; err != nil {
					return err
				}
			case err == gorm.ErrRecordNotFound:
				v.WorkItemID = item.ID
				if err := tx.Create(v).Error; err != nil {
					return err
				}
			default:
				return err
			}
		}

		// Deactivate values whose fields were dropped from the submission
		var current []domain.FieldValue
		if err := tx.Where("work_item_id = ? AND is_active = ?", item.ID, true).
			Find(&current).Error; err != nil {
			return err
		}
		for _, cv := range current {
			if !submitted[cv.FieldID] {
				if err := tx.Model(&domain.FieldValue{}).
					Where("id = ?", cv.ID).
					Update("is_active", false).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// SoftDelete deactivates a work item and its field values
func (r *workItemRepositoryImpl) SoftDelete(ctx context.Context, id uuid.UUID) error {
	db, err := r.conn()
	if err != nil {
		return err
	}
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.WorkItem{}).
			Where("id = ?", id).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&domain.FieldValue{}).
			Where("work_item_id = ?", id).
			Update("is_active", false).Error
	})
}
