package metrics

import (
	"database/sql"
	"time"
)

// UpdatePoolStats publishes the connection pool snapshot taken by the
// periodic stats collector. Wait totals are monotonic in sql.DBStats,
// so they feed counters rather than gauges.
func (m *Metrics) UpdatePoolStats(stats sql.DBStats) {
	m.safeExecute("UpdatePoolStats", func() {
		m.DBConnectionsOpen.Set(float64(stats.OpenConnections))
		m.DBConnectionsInUse.Set(float64(stats.InUse))
		m.DBConnectionsIdle.Set(float64(stats.Idle))
		m.DBConnectionsMax.Set(float64(stats.MaxOpenConnections))
		m.DBConnectionWaitTotal.Add(float64(stats.WaitCount))
		m.DBConnectionWaitDuration.Add(stats.WaitDuration.Seconds())
	})
}

// RecordDBQuery records the duration and outcome of one statement. The
// operation label comes from the gorm callback that timed it and the
// table label from the statement, so every repository call lands in the
// same few well-known series.
func (m *Metrics) RecordDBQuery(operation, table string, duration time.Duration, err error) {
	m.safeExecute("RecordDBQuery", func() {
		m.DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
		if err != nil {
			m.DBQueryErrors.WithLabelValues(operation, table).Inc()
		}
	})
}
