package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"project-tracker-api/internal/domain"
	"project-tracker-api/internal/schema"
)

func buildType(t *testing.T, projectID uuid.UUID, name string) *domain.WorkItemType {
	t.Helper()
	def := schema.TypeDefinition{
		Name:              name,
		DisplayName:       name,
		AllowedStatuses:   []schema.StatusOption{{ID: "open", Label: "Open"}},
		AllowedPriorities: []schema.PriorityOption{{ID: "low", Label: "Low", Value: 1}},
	}
	typ, err := domain.NewWorkItemType(uuid.New(), projectID, def, nil)
	require.NoError(t, err)
	return typ
}

func TestWorkItemTypeRepository_CreateBatchAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWorkItemTypeRepository(db)
	ctx := context.Background()
	project := seedProject(t, db)

	types := []*domain.WorkItemType{
		buildType(t, project.ID, "epic"),
		buildType(t, project.ID, "story"),
		buildType(t, project.ID, "task"),
	}
	require.NoError(t, repo.CreateBatch(ctx, types))

	found, err := repo.FindByProject(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, found, 3)

	byName, err := repo.FindByProjectAndName(ctx, project.ID, "story")
	require.NoError(t, err)
	assert.Equal(t, types[1].ID, byName.ID)
}

// A failing row aborts the whole batch; a later read-back must come up
// empty rather than partially populated.
func TestWorkItemTypeRepository_CreateBatchIsAtomic(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWorkItemTypeRepository(db)
	ctx := context.Background()
	project := seedProject(t, db)

	conflicting := buildType(t, project.ID, "epic")
	batch := []*domain.WorkItemType{
		buildType(t, project.ID, "epic"),
		buildType(t, project.ID, "story"),
		conflicting, // duplicate (project, name) violates the unique index
	}

	err := repo.CreateBatch(ctx, batch)
	require.Error(t, err)

	found, err := repo.FindByProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Empty(t, found, "a failed batch must persist nothing")
}

func TestWorkItemTypeRepository_FindByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWorkItemTypeRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestWorkItemTypeRepository_DeactivateHidesType(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWorkItemTypeRepository(db)
	ctx := context.Background()
	project := seedProject(t, db)

	typ := buildType(t, project.ID, "card")
	require.NoError(t, repo.CreateBatch(ctx, []*domain.WorkItemType{typ}))

	require.NoError(t, repo.Deactivate(ctx, typ.ID))

	_, err := repo.FindByID(ctx, typ.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	found, err := repo.FindByProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Empty(t, found)

	// The row itself survives for historical items
	var raw domain.WorkItemType
	require.NoError(t, db.Where("id = ?", typ.ID).First(&raw).Error)
	assert.False(t, raw.IsActive)
}
