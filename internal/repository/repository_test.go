package repository

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"project-tracker-api/internal/domain"
	"project-tracker-api/internal/schema"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	err = db.AutoMigrate(
		&domain.Project{},
		&domain.WorkItemType{},
		&domain.WorkItem{},
		&domain.FieldValue{},
		&domain.Attachment{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func seedProject(t *testing.T, db *gorm.DB) *domain.Project {
	t.Helper()
	project := &domain.Project{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		OwnerID:   uuid.New(),
		Name:      "Test Project",
		IsActive:  true,
	}
	if err := db.Create(project).Error; err != nil {
		t.Fatalf("failed to seed project: %v", err)
	}
	return project
}

func seedType(t *testing.T, db *gorm.DB, projectID uuid.UUID, name string) *domain.WorkItemType {
	t.Helper()
	def := schema.TypeDefinition{
		Name:        name,
		DisplayName: name,
		AllowedStatuses: []schema.StatusOption{
			{ID: "open", Label: "Open"},
			{ID: "done", Label: "Done"},
		},
		AllowedPriorities: []schema.PriorityOption{
			{ID: "low", Label: "Low", Value: 1},
		},
	}
	typ, err := domain.NewWorkItemType(uuid.New(), projectID, def, nil)
	if err != nil {
		t.Fatalf("failed to build type: %v", err)
	}
	if err := db.Create(typ).Error; err != nil {
		t.Fatalf("failed to seed type: %v", err)
	}
	return typ
}
