package metrics

// IncrementWorkItemCreated increments the work item creation counter
func (m *Metrics) IncrementWorkItemCreated() {
	m.safeExecute("IncrementWorkItemCreated", func() {
		m.WorkItemsCreatedTotal.Inc()
	})
}

// IncrementTemplateApplied increments the template application counter
func (m *Metrics) IncrementTemplateApplied() {
	m.safeExecute("IncrementTemplateApplied", func() {
		m.TemplatesAppliedTotal.Inc()
	})
}

// IncrementTemplateApplyFailure increments the rejected application counter
func (m *Metrics) IncrementTemplateApplyFailure() {
	m.safeExecute("IncrementTemplateApplyFailure", func() {
		m.TemplateApplyFailuresTotal.Inc()
	})
}

// SetProjectsTotal sets the total projects gauge
func (m *Metrics) SetProjectsTotal(count int64) {
	m.safeExecute("SetProjectsTotal", func() {
		m.ProjectsTotal.Set(float64(count))
	})
}

// SetWorkItemsTotal sets the total work items gauge
func (m *Metrics) SetWorkItemsTotal(count int64) {
	m.safeExecute("SetWorkItemsTotal", func() {
		m.WorkItemsTotal.Set(float64(count))
	})
}

// SetWorkItemTypesTotal sets the total work item types gauge
func (m *Metrics) SetWorkItemTypesTotal(count int64) {
	m.safeExecute("SetWorkItemTypesTotal", func() {
		m.WorkItemTypesTotal.Set(float64(count))
	})
}
