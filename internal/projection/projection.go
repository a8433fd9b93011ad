// Package projection derives display-ready views of work items. It is
// deliberately tolerant: items created under an older revision of their
// type must always render, so every lookup degrades to the raw stored
// value instead of failing.
package projection

import (
	"encoding/json"
	"strconv"
	"strings"

	"project-tracker-api/internal/domain"
	"project-tracker-api/internal/dto"
	"project-tracker-api/internal/schema"
)

// Display layouts for date and datetime fields
const (
	dateLayout     = "Jan 2, 2006"
	datetimeLayout = "Jan 2, 2006 15:04"
)

// resolveOrRaw returns the resolved label when the lookup succeeds and
// the raw value verbatim otherwise. All status, priority and option
// resolution goes through this one combinator.
func resolveOrRaw(raw string, lookup func(string) (string, bool)) string {
	if label, ok := lookup(raw); ok {
		return label
	}
	return raw
}

// Project builds the display view of a work item against its type.
// It never returns an error; malformed or legacy data renders as-is.
func Project(item *domain.WorkItem, typ *domain.WorkItemType) *dto.DisplayWorkItem {
	display := &dto.DisplayWorkItem{
		WorkItemID:       item.ID,
		ProjectID:        item.ProjectID,
		TypeID:           item.TypeID,
		Title:            item.Title,
		Description:      item.Description,
		StatusID:         item.StatusID,
		PriorityValue:    item.PriorityValue,
		AssignmentFields: make(map[string]dto.DisplayField),
		CustomFields:     make(map[string]dto.DisplayField),
		SequentialNumber: item.SequentialNumber,
		CreatedAt:        item.CreatedAt,
		UpdatedAt:        item.UpdatedAt,
	}

	if typ != nil {
		display.TypeName = typ.DisplayName
		display.TypeIcon = typ.Icon
		display.TypeColor = typ.Color
	}

	projectStatus(display, item, typ)
	projectPriority(display, item, typ)
	projectFields(display, item, typ)
	display.Labels = projectLabels(item)
	display.DueDate = projectDueDate(item)

	return display
}

func projectStatus(display *dto.DisplayWorkItem, item *domain.WorkItem, typ *domain.WorkItemType) {
	display.StatusLabel = item.StatusID
	if typ == nil {
		return
	}
	statuses, err := typ.StatusOptions()
	if err != nil {
		return
	}
	display.StatusLabel = resolveOrRaw(item.StatusID, func(id string) (string, bool) {
		for _, s := range statuses {
			if s.ID == id {
				display.StatusColor = s.Color
				return s.Label, true
			}
		}
		return "", false
	})
}

func projectPriority(display *dto.DisplayWorkItem, item *domain.WorkItem, typ *domain.WorkItemType) {
	display.PriorityLabel = strconv.Itoa(item.PriorityValue)
	if typ == nil {
		return
	}
	priorities, err := typ.PriorityOptions()
	if err != nil {
		return
	}
	for _, p := range priorities {
		if p.Value == item.PriorityValue {
			display.PriorityLabel = p.Label
			display.PriorityColor = p.Color
			return
		}
	}
}

func projectFields(display *dto.DisplayWorkItem, item *domain.WorkItem, typ *domain.WorkItemType) {
	var fields map[string]schema.FieldSchema
	if typ != nil {
		fields = fieldIndex(typ)
	}

	for _, fv := range item.FieldValues {
		f, known := fields[fv.FieldID]

		label := fv.FieldID
		value := fv.Value
		if known {
			label = f.Label
			value = formatFieldValue(f, fv.Value)
		}

		target := display.CustomFields
		if fv.IsAssignmentField {
			target = display.AssignmentFields
		}
		target[fv.FieldID] = dto.DisplayField{
			FieldID: fv.FieldID,
			Label:   label,
			Value:   value,
		}
	}
}

// fieldIndex merges the type's assignment and custom schemas by id.
// Decode failures just yield an empty index; values then render raw.
func fieldIndex(typ *domain.WorkItemType) map[string]schema.FieldSchema {
	index := make(map[string]schema.FieldSchema)
	if assignment, err := typ.AssignmentFieldSchemas(); err == nil {
		for _, f := range assignment {
			index[f.ID] = f
		}
	}
	if custom, err := typ.CustomFieldSchemas(); err == nil {
		for _, f := range custom {
			index[f.ID] = f
		}
	}
	return index
}

// formatFieldValue renders a stored raw value per its schema kind
func formatFieldValue(f schema.FieldSchema, raw string) string {
	switch f.Kind {
	case schema.FieldKindSelect, schema.FieldKindRadio:
		return resolveOrRaw(raw, f.OptionLabel)
	case schema.FieldKindDate:
		return reformatDate(raw, dateLayout)
	case schema.FieldKindDatetime:
		return reformatDate(raw, datetimeLayout)
	default:
		return raw
	}
}

// reformatDate reparses and reformats a stored timestamp; on parse
// failure the raw string is returned unchanged
func reformatDate(raw, layout string) string {
	t, err := schema.ParseTimestamp(raw)
	if err != nil {
		return raw
	}
	return t.Format(layout)
}

// projectLabels resolves the item's labels with a three-step fallback:
// the item's own labels array, then a "labels" custom field holding a
// JSON-encoded array, then the same field comma-split.
func projectLabels(item *domain.WorkItem) []string {
	if len(item.Labels) > 0 {
		var labels []string
		if err := json.Unmarshal(item.Labels, &labels); err == nil && len(labels) > 0 {
			return labels
		}
	}
	for _, fv := range item.FieldValues {
		if fv.FieldID == "labels" && fv.Value != "" {
			return ParseLabels(fv.Value)
		}
	}
	return []string{}
}

// ParseLabels decodes a raw labels value: a JSON-encoded string array
// when possible, otherwise a comma-separated list
func ParseLabels(raw string) []string {
	var labels []string
	if err := json.Unmarshal([]byte(raw), &labels); err == nil {
		return labels
	}
	parts := strings.Split(raw, ",")
	labels = make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			labels = append(labels, trimmed)
		}
	}
	return labels
}

// projectDueDate prefers the item's own due date and falls back to any
// custom field whose id mentions "due"
func projectDueDate(item *domain.WorkItem) string {
	if item.DueDate != nil {
		return item.DueDate.Format(dateLayout)
	}
	for _, fv := range item.FieldValues {
		if fv.IsAssignmentField || fv.Value == "" {
			continue
		}
		if strings.Contains(strings.ToLower(fv.FieldID), "due") {
			return reformatDate(fv.Value, dateLayout)
		}
	}
	return ""
}
