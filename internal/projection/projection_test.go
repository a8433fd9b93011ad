package projection

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"project-tracker-api/internal/domain"
	"project-tracker-api/internal/schema"
)

func displayType(t *testing.T) *domain.WorkItemType {
	t.Helper()
	def := schema.TypeDefinition{
		Name:        "card",
		DisplayName: "Card",
		Icon:        "square",
		Color:       "#3B82F6",
		AllowedStatuses: []schema.StatusOption{
			{ID: "doing", Label: "Doing", Color: "#3B82F6"},
			{ID: "done", Label: "Done", Color: "#10B981"},
		},
		AllowedPriorities: []schema.PriorityOption{
			{ID: "standard", Label: "Standard", Value: 1},
			{ID: "expedite", Label: "Expedite", Value: 10, Color: "#EF4444"},
		},
		AssignmentFields: []schema.FieldSchema{
			{ID: "assignee", Label: "Assignee", Kind: schema.FieldKindPerson},
		},
		CustomFields: []schema.FieldSchema{
			{ID: "class_of_service", Label: "Class of Service", Kind: schema.FieldKindSelect,
				Options: []schema.FieldOption{
					{Value: "a", Label: "Alpha"},
					{Value: "b", Label: "Beta"},
				}},
			{ID: "due_date", Label: "Due Date", Kind: schema.FieldKindDate},
			{ID: "labels", Label: "Labels", Kind: schema.FieldKindText},
		},
	}
	typ, err := domain.NewWorkItemType(uuid.New(), uuid.New(), def, nil)
	require.NoError(t, err)
	return typ
}

func TestProject_ResolvesStatusAndPriority(t *testing.T) {
	typ := displayType(t)
	item := &domain.WorkItem{
		BaseModel:     domain.BaseModel{ID: uuid.New()},
		Title:         "A card",
		StatusID:      "doing",
		PriorityValue: 10,
	}

	display := Project(item, typ)

	assert.Equal(t, "Card", display.TypeName)
	assert.Equal(t, "Doing", display.StatusLabel)
	assert.Equal(t, "#3B82F6", display.StatusColor)
	assert.Equal(t, "Expedite", display.PriorityLabel)
	assert.Equal(t, "#EF4444", display.PriorityColor)
}

// A select value with a declared option renders its label; a stored
// value the current schema no longer declares renders raw.
func TestProject_OptionLabelFallsBackToRawValue(t *testing.T) {
	typ := displayType(t)
	item := &domain.WorkItem{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		StatusID:  "doing",
		FieldValues: []domain.FieldValue{
			{FieldID: "class_of_service", Value: "a", IsActive: true},
		},
	}

	display := Project(item, typ)
	assert.Equal(t, "Alpha", display.CustomFields["class_of_service"].Value)

	item.FieldValues[0].Value = "z"
	display = Project(item, typ)
	assert.Equal(t, "z", display.CustomFields["class_of_service"].Value)
}

func TestProject_UnknownStatusAndPriorityRenderRaw(t *testing.T) {
	typ := displayType(t)
	item := &domain.WorkItem{
		BaseModel:     domain.BaseModel{ID: uuid.New()},
		StatusID:      "archived",
		PriorityValue: 42,
	}

	display := Project(item, typ)
	assert.Equal(t, "archived", display.StatusLabel)
	assert.Equal(t, "42", display.PriorityLabel)
}

// Values whose field id the type no longer declares still render, keyed
// by their raw field id
func TestProject_OrphanedFieldValuesStillRender(t *testing.T) {
	typ := displayType(t)
	item := &domain.WorkItem{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		FieldValues: []domain.FieldValue{
			{FieldID: "legacy_field", Value: "kept", IsActive: true},
		},
	}

	display := Project(item, typ)
	field, ok := display.CustomFields["legacy_field"]
	require.True(t, ok)
	assert.Equal(t, "legacy_field", field.Label)
	assert.Equal(t, "kept", field.Value)
}

func TestProject_NilTypeDegradesToRawEverything(t *testing.T) {
	item := &domain.WorkItem{
		BaseModel:     domain.BaseModel{ID: uuid.New()},
		Title:         "Orphan",
		StatusID:      "doing",
		PriorityValue: 3,
		FieldValues: []domain.FieldValue{
			{FieldID: "assignee", Value: "user-1", IsAssignmentField: true, IsActive: true},
		},
	}

	display := Project(item, nil)
	assert.Equal(t, "doing", display.StatusLabel)
	assert.Equal(t, "3", display.PriorityLabel)
	assert.Equal(t, "user-1", display.AssignmentFields["assignee"].Value)
}

func TestProject_DateFieldsReformatted(t *testing.T) {
	typ := displayType(t)
	item := &domain.WorkItem{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		FieldValues: []domain.FieldValue{
			{FieldID: "due_date", Value: "2026-03-15", IsActive: true},
		},
	}

	display := Project(item, typ)
	assert.Equal(t, "Mar 15, 2026", display.CustomFields["due_date"].Value)
	// And the due-date synonym surfaces it at the top level too
	assert.Equal(t, "Mar 15, 2026", display.DueDate)
}

func TestProject_MalformedDateRendersRaw(t *testing.T) {
	typ := displayType(t)
	item := &domain.WorkItem{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		FieldValues: []domain.FieldValue{
			{FieldID: "due_date", Value: "someday", IsActive: true},
		},
	}

	display := Project(item, typ)
	assert.Equal(t, "someday", display.CustomFields["due_date"].Value)
}

func TestProject_DueDatePrefersItemColumn(t *testing.T) {
	typ := displayType(t)
	due := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	item := &domain.WorkItem{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		DueDate:   &due,
		FieldValues: []domain.FieldValue{
			{FieldID: "due_date", Value: "2026-12-31", IsActive: true},
		},
	}

	display := Project(item, typ)
	assert.Equal(t, "Apr 1, 2026", display.DueDate)
}

func TestProject_LabelsFromItemColumn(t *testing.T) {
	item := &domain.WorkItem{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		Labels:    datatypes.JSON([]byte(`["backend","urgent"]`)),
	}

	display := Project(item, nil)
	assert.Equal(t, []string{"backend", "urgent"}, display.Labels)
}

// The labels field accepts both encodings seen in stored data: a JSON
// array and a comma-separated list
func TestProject_LabelsFieldFallback(t *testing.T) {
	jsonItem := &domain.WorkItem{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		FieldValues: []domain.FieldValue{
			{FieldID: "labels", Value: `["x","y"]`, IsActive: true},
		},
	}
	assert.Equal(t, []string{"x", "y"}, Project(jsonItem, nil).Labels)

	csvItem := &domain.WorkItem{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		FieldValues: []domain.FieldValue{
			{FieldID: "labels", Value: "x, y", IsActive: true},
		},
	}
	assert.Equal(t, []string{"x", "y"}, Project(csvItem, nil).Labels)
}

func TestParseLabels(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, ParseLabels(`["a","b"]`))
	assert.Equal(t, []string{"a", "b"}, ParseLabels("a,b"))
	assert.Equal(t, []string{"a", "b"}, ParseLabels(" a , b "))
	assert.Empty(t, ParseLabels("  ,  "))
}

func TestProject_NoLabelsYieldsEmptySlice(t *testing.T) {
	item := &domain.WorkItem{BaseModel: domain.BaseModel{ID: uuid.New()}}
	display := Project(item, nil)
	assert.NotNil(t, display.Labels)
	assert.Empty(t, display.Labels)
}
