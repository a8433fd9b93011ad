package repository

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"project-tracker-api/internal/domain"
)

func TestAttachmentRepository_ByteRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAttachmentRepository(db)
	ctx := context.Background()

	payload := bytes.Repeat([]byte{0x89, 0x50, 0x4E, 0x47}, 256)
	entityID := uuid.New()
	attachment := &domain.Attachment{
		BaseModel:   domain.BaseModel{ID: uuid.New()},
		EntityType:  domain.EntityTypeWorkItemType,
		EntityID:    &entityID,
		FileName:    "icon.png",
		ContentType: "image/png",
		FileSize:    int64(len(payload)),
		Data:        payload,
		UploadedBy:  uuid.New(),
	}
	require.NoError(t, repo.Create(ctx, attachment))

	found, err := repo.FindByID(ctx, attachment.ID)
	require.NoError(t, err)
	assert.Equal(t, payload, found.Data)
	assert.Equal(t, "image/png", found.ContentType)
	assert.Equal(t, int64(len(payload)), found.FileSize)
}

func TestAttachmentRepository_FindByEntity(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAttachmentRepository(db)
	ctx := context.Background()

	entityID := uuid.New()
	otherID := uuid.New()
	for _, name := range []string{"a.png", "b.gif"} {
		require.NoError(t, repo.Create(ctx, &domain.Attachment{
			BaseModel:   domain.BaseModel{ID: uuid.New()},
			EntityType:  domain.EntityTypeWorkItem,
			EntityID:    &entityID,
			FileName:    name,
			ContentType: "image/png",
			FileSize:    4,
			Data:        []byte{1, 2, 3, 4},
			UploadedBy:  uuid.New(),
		}))
	}
	require.NoError(t, repo.Create(ctx, &domain.Attachment{
		BaseModel:   domain.BaseModel{ID: uuid.New()},
		EntityType:  domain.EntityTypeWorkItem,
		EntityID:    &otherID,
		FileName:    "c.png",
		ContentType: "image/png",
		FileSize:    4,
		Data:        []byte{1, 2, 3, 4},
		UploadedBy:  uuid.New(),
	}))

	attachments, err := repo.FindByEntity(ctx, domain.EntityTypeWorkItem, entityID)
	require.NoError(t, err)
	require.Len(t, attachments, 2)
	assert.Equal(t, "a.png", attachments[0].FileName)
	assert.Equal(t, "b.gif", attachments[1].FileName)
}

func TestAttachmentRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAttachmentRepository(db)
	ctx := context.Background()

	attachment := &domain.Attachment{
		BaseModel:   domain.BaseModel{ID: uuid.New()},
		EntityType:  domain.EntityTypeProject,
		FileName:    "icon.gif",
		ContentType: "image/gif",
		FileSize:    2,
		Data:        []byte{0x47, 0x49},
		UploadedBy:  uuid.New(),
	}
	require.NoError(t, repo.Create(ctx, attachment))
	require.NoError(t, repo.Delete(ctx, attachment.ID))

	_, err := repo.FindByID(ctx, attachment.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
