package template

import "project-tracker-api/internal/schema"

// Shared vocabulary fragments used across the built-in templates.
// Each template copies these so catalog entries stay independent.

func defaultAssignmentFields() []schema.FieldSchema {
	return []schema.FieldSchema{
		{ID: "assignee", Label: "Assignee", Kind: schema.FieldKindPerson},
		{ID: "team", Label: "Team", Kind: schema.FieldKindTeam},
	}
}

func standardStatuses() []schema.StatusOption {
	return []schema.StatusOption{
		{ID: "open", Label: "Open", Color: "#6B7280"},
		{ID: "in_progress", Label: "In Progress", Color: "#3B82F6"},
		{ID: "done", Label: "Done", Color: "#10B981"},
	}
}

func standardPriorities() []schema.PriorityOption {
	return []schema.PriorityOption{
		{ID: "low", Label: "Low", Value: 1, Color: "#10B981"},
		{ID: "medium", Label: "Medium", Value: 2, Color: "#F59E0B"},
		{ID: "high", Label: "High", Value: 3, Color: "#EF4444"},
		{ID: "critical", Label: "Critical", Value: 4, Color: "#991B1B"},
	}
}

func basicTemplate() Template {
	return Template{
		ID:          "basic",
		Name:        "Basic",
		Description: "A single task type for simple tracking",
		Category:    CategoryGeneral,
		WorkItemTypes: []schema.TypeDefinition{
			{
				Name:        "task",
				DisplayName: "Task",
				Icon:        "check-square",
				Color:       "#3B82F6",
				// Tasks may nest under themselves without a depth limit
				AllowedChildTypeNames: []string{"task"},
				AllowedStatuses:       standardStatuses(),
				AllowedPriorities:     standardPriorities(),
				AssignmentFields:      defaultAssignmentFields(),
				CustomFields: []schema.FieldSchema{
					{ID: "due_date", Label: "Due Date", Kind: schema.FieldKindDate},
					{ID: "labels", Label: "Labels", Kind: schema.FieldKindText},
				},
			},
		},
	}
}
