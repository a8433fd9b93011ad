package template

import "project-tracker-api/internal/schema"

func kanbanTemplate() Template {
	return Template{
		ID:          "kanban",
		Name:        "Kanban",
		Description: "Flow-based cards with WIP-oriented statuses",
		Category:    CategoryLean,
		WorkItemTypes: []schema.TypeDefinition{
			{
				Name:                  "card",
				DisplayName:           "Card",
				Icon:                  "credit-card",
				Color:                 "#F59E0B",
				AllowedChildTypeNames: []string{"card"},
				AllowedStatuses: []schema.StatusOption{
					{ID: "backlog", Label: "Backlog", Color: "#6B7280"},
					{ID: "ready", Label: "Ready", Color: "#F59E0B"},
					{ID: "doing", Label: "Doing", Color: "#3B82F6"},
					{ID: "blocked", Label: "Blocked", Color: "#EF4444", Description: "Waiting on an external dependency"},
					{ID: "done", Label: "Done", Color: "#10B981"},
				},
				AllowedPriorities: []schema.PriorityOption{
					{ID: "standard", Label: "Standard", Value: 1, Color: "#6B7280"},
					{ID: "expedite", Label: "Expedite", Value: 10, Color: "#EF4444"},
				},
				AssignmentFields: defaultAssignmentFields(),
				CustomFields: []schema.FieldSchema{
					{ID: "class_of_service", Label: "Class of Service", Kind: schema.FieldKindSelect,
						DefaultValue: "standard",
						Options: []schema.FieldOption{
							{Value: "standard", Label: "Standard"},
							{Value: "fixed_date", Label: "Fixed Date"},
							{Value: "expedite", Label: "Expedite"},
							{Value: "intangible", Label: "Intangible"},
						}},
					{ID: "due_date", Label: "Due Date", Kind: schema.FieldKindDate},
					{ID: "labels", Label: "Labels", Kind: schema.FieldKindText},
				},
			},
		},
	}
}
