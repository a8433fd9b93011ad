package template

import "project-tracker-api/internal/schema"

func scrumTemplate() Template {
	storyPointMin := 0.0
	storyPointMax := 100.0
	return Template{
		ID:          "scrum",
		Name:        "Scrum",
		Description: "Epics, stories, tasks and bugs for sprint-based delivery",
		Category:    CategoryAgile,
		WorkItemTypes: []schema.TypeDefinition{
			{
				Name:                  "epic",
				DisplayName:           "Epic",
				Icon:                  "layers",
				Color:                 "#8B5CF6",
				AllowedChildTypeNames: []string{"story", "bug"},
				AllowedStatuses: []schema.StatusOption{
					{ID: "open", Label: "Open", Color: "#6B7280"},
					{ID: "in_progress", Label: "In Progress", Color: "#3B82F6"},
					{ID: "done", Label: "Done", Color: "#10B981"},
					{ID: "cancelled", Label: "Cancelled", Color: "#9CA3AF"},
				},
				AllowedPriorities: standardPriorities(),
				AssignmentFields:  defaultAssignmentFields(),
				CustomFields: []schema.FieldSchema{
					{ID: "target_quarter", Label: "Target Quarter", Kind: schema.FieldKindSelect, Options: []schema.FieldOption{
						{Value: "q1", Label: "Q1"},
						{Value: "q2", Label: "Q2"},
						{Value: "q3", Label: "Q3"},
						{Value: "q4", Label: "Q4"},
					}},
					{ID: "business_value", Label: "Business Value", Kind: schema.FieldKindNumber,
						Validation: &schema.FieldValidation{Min: &storyPointMin, Max: &storyPointMax}},
				},
			},
			{
				Name:                  "story",
				DisplayName:           "User Story",
				Icon:                  "bookmark",
				Color:                 "#10B981",
				AllowedChildTypeNames: []string{"task"},
				AllowedStatuses: []schema.StatusOption{
					{ID: "backlog", Label: "Backlog", Color: "#6B7280"},
					{ID: "sprint", Label: "In Sprint", Color: "#F59E0B"},
					{ID: "in_progress", Label: "In Progress", Color: "#3B82F6"},
					{ID: "review", Label: "In Review", Color: "#8B5CF6"},
					{ID: "done", Label: "Done", Color: "#10B981"},
				},
				AllowedPriorities: standardPriorities(),
				AssignmentFields:  defaultAssignmentFields(),
				CustomFields: []schema.FieldSchema{
					{ID: "story_points", Label: "Story Points", Kind: schema.FieldKindNumber,
						Validation: &schema.FieldValidation{Min: &storyPointMin, Max: &storyPointMax}},
					{ID: "acceptance_criteria", Label: "Acceptance Criteria", Kind: schema.FieldKindTextarea},
					{ID: "labels", Label: "Labels", Kind: schema.FieldKindText},
				},
			},
			{
				Name:                  "task",
				DisplayName:           "Task",
				Icon:                  "check-square",
				Color:                 "#3B82F6",
				AllowedChildTypeNames: []string{},
				AllowedStatuses:       standardStatuses(),
				AllowedPriorities:     standardPriorities(),
				AssignmentFields: []schema.FieldSchema{
					{ID: "assignee", Label: "Assignee", Kind: schema.FieldKindPerson, Required: true},
				},
				CustomFields: []schema.FieldSchema{
					{ID: "estimate_hours", Label: "Estimate (hours)", Kind: schema.FieldKindNumber,
						Validation: &schema.FieldValidation{Min: &storyPointMin}},
					{ID: "due_date", Label: "Due Date", Kind: schema.FieldKindDate},
				},
			},
			{
				Name:                  "bug",
				DisplayName:           "Bug",
				Icon:                  "bug",
				Color:                 "#EF4444",
				AllowedChildTypeNames: []string{"task"},
				AllowedStatuses: []schema.StatusOption{
					{ID: "open", Label: "Open", Color: "#EF4444"},
					{ID: "in_progress", Label: "In Progress", Color: "#3B82F6"},
					{ID: "resolved", Label: "Resolved", Color: "#10B981"},
					{ID: "wont_fix", Label: "Won't Fix", Color: "#9CA3AF"},
				},
				AllowedPriorities: standardPriorities(),
				AssignmentFields:  defaultAssignmentFields(),
				CustomFields: []schema.FieldSchema{
					{ID: "severity", Label: "Severity", Kind: schema.FieldKindRadio,
						DefaultValue: "minor",
						Options: []schema.FieldOption{
							{Value: "trivial", Label: "Trivial"},
							{Value: "minor", Label: "Minor"},
							{Value: "major", Label: "Major"},
							{Value: "blocker", Label: "Blocker"},
						}},
					{ID: "steps_to_reproduce", Label: "Steps to Reproduce", Kind: schema.FieldKindTextarea},
					{ID: "environment", Label: "Environment", Kind: schema.FieldKindText},
				},
			},
		},
	}
}
