package template

import "project-tracker-api/internal/schema"

func pmbokTemplate() Template {
	pctMin := 0.0
	pctMax := 100.0
	return Template{
		ID:          "pmbok",
		Name:        "PMBOK",
		Description: "Phases, deliverables, work packages and activities",
		Category:    CategoryTraditional,
		WorkItemTypes: []schema.TypeDefinition{
			{
				Name:                  "phase",
				DisplayName:           "Phase",
				Icon:                  "flag",
				Color:                 "#8B5CF6",
				AllowedChildTypeNames: []string{"deliverable", "milestone"},
				AllowedStatuses: []schema.StatusOption{
					{ID: "not_started", Label: "Not Started", Color: "#6B7280"},
					{ID: "active", Label: "Active", Color: "#3B82F6"},
					{ID: "closing", Label: "Closing", Color: "#F59E0B"},
					{ID: "closed", Label: "Closed", Color: "#10B981"},
				},
				AllowedPriorities: standardPriorities(),
				AssignmentFields: []schema.FieldSchema{
					{ID: "phase_manager", Label: "Phase Manager", Kind: schema.FieldKindPerson, Required: true},
				},
				CustomFields: []schema.FieldSchema{
					{ID: "start_date", Label: "Start Date", Kind: schema.FieldKindDate},
					{ID: "end_date", Label: "End Date", Kind: schema.FieldKindDate},
					{ID: "percent_complete", Label: "% Complete", Kind: schema.FieldKindNumber,
						Validation: &schema.FieldValidation{Min: &pctMin, Max: &pctMax}},
				},
			},
			{
				Name:                  "deliverable",
				DisplayName:           "Deliverable",
				Icon:                  "package",
				Color:                 "#10B981",
				AllowedChildTypeNames: []string{"work_package"},
				AllowedStatuses:       standardStatuses(),
				AllowedPriorities:     standardPriorities(),
				AssignmentFields:      defaultAssignmentFields(),
				CustomFields: []schema.FieldSchema{
					{ID: "acceptance_criteria", Label: "Acceptance Criteria", Kind: schema.FieldKindTextarea},
					{ID: "due_date", Label: "Due Date", Kind: schema.FieldKindDate},
				},
			},
			{
				Name:                  "work_package",
				DisplayName:           "Work Package",
				Icon:                  "box",
				Color:                 "#3B82F6",
				AllowedChildTypeNames: []string{"activity"},
				AllowedStatuses:       standardStatuses(),
				AllowedPriorities:     standardPriorities(),
				AssignmentFields:      defaultAssignmentFields(),
				CustomFields: []schema.FieldSchema{
					{ID: "wbs_code", Label: "WBS Code", Kind: schema.FieldKindText,
						Validation: &schema.FieldValidation{Pattern: `\d+(\.\d+)*`}},
					{ID: "budget", Label: "Budget", Kind: schema.FieldKindNumber,
						Validation: &schema.FieldValidation{Min: &pctMin}},
				},
			},
			{
				Name:                  "activity",
				DisplayName:           "Activity",
				Icon:                  "activity",
				Color:                 "#F59E0B",
				AllowedChildTypeNames: []string{},
				AllowedStatuses:       standardStatuses(),
				AllowedPriorities:     standardPriorities(),
				AssignmentFields: []schema.FieldSchema{
					{ID: "assignee", Label: "Assignee", Kind: schema.FieldKindPerson},
				},
				CustomFields: []schema.FieldSchema{
					{ID: "planned_start", Label: "Planned Start", Kind: schema.FieldKindDatetime},
					{ID: "planned_finish", Label: "Planned Finish", Kind: schema.FieldKindDatetime},
					{ID: "effort_hours", Label: "Effort (hours)", Kind: schema.FieldKindNumber,
						Validation: &schema.FieldValidation{Min: &pctMin}},
				},
			},
			{
				Name:                  "milestone",
				DisplayName:           "Milestone",
				Icon:                  "diamond",
				Color:                 "#EF4444",
				AllowedChildTypeNames: []string{},
				AllowedStatuses: []schema.StatusOption{
					{ID: "pending", Label: "Pending", Color: "#6B7280"},
					{ID: "reached", Label: "Reached", Color: "#10B981"},
					{ID: "missed", Label: "Missed", Color: "#EF4444"},
				},
				AllowedPriorities: standardPriorities(),
				AssignmentFields:  defaultAssignmentFields(),
				CustomFields: []schema.FieldSchema{
					{ID: "target_date", Label: "Target Date", Kind: schema.FieldKindDate, Required: true},
				},
			},
		},
	}
}
