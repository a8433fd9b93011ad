package metrics

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestUpdatePoolStats(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry(), zap.NewNop())

	m.UpdatePoolStats(sql.DBStats{
		OpenConnections:    7,
		InUse:              3,
		Idle:               4,
		MaxOpenConnections: 25,
		WaitCount:          2,
		WaitDuration:       time.Second,
	})

	assert.Equal(t, float64(7), testutil.ToFloat64(m.DBConnectionsOpen))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.DBConnectionsInUse))
	assert.Equal(t, float64(4), testutil.ToFloat64(m.DBConnectionsIdle))
	assert.Equal(t, float64(25), testutil.ToFloat64(m.DBConnectionsMax))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.DBConnectionWaitTotal))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.DBConnectionWaitDuration))
}

func TestRecordDBQuery_ErrorsCountedSeparately(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry(), zap.NewNop())

	m.RecordDBQuery("select", "work_items", 5*time.Millisecond, nil)
	m.RecordDBQuery("insert", "work_items", 5*time.Millisecond, errors.New("constraint violation"))

	assert.Equal(t, float64(0), testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("select", "work_items")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("insert", "work_items")))
}
