package metrics

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"project-tracker-api/internal/domain"
)

// BusinessMetricsCollector collects business metrics periodically
type BusinessMetricsCollector struct {
	db      *gorm.DB
	metrics *Metrics
	logger  *zap.Logger
	ticker  *time.Ticker
	done    chan bool
}

// NewBusinessMetricsCollector creates a new collector
func NewBusinessMetricsCollector(db *gorm.DB, metrics *Metrics, logger *zap.Logger) *BusinessMetricsCollector {
	return &BusinessMetricsCollector{
		db:      db,
		metrics: metrics,
		logger:  logger,
		ticker:  time.NewTicker(60 * time.Second),
		done:    make(chan bool),
	}
}

// Start begins collecting metrics
func (c *BusinessMetricsCollector) Start() {
	go func() {
		c.collect()

		for {
			select {
			case <-c.ticker.C:
				c.collect()
			case <-c.done:
				return
			}
		}
	}()
}

// Stop stops the collector
func (c *BusinessMetricsCollector) Stop() {
	c.ticker.Stop()
	c.done <- true
}

// collect gathers business metrics
func (c *BusinessMetricsCollector) collect() {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Panic in business metrics collection",
				zap.Any("panic", r),
			)
		}
	}()

	var projectCount int64
	if err := c.db.Model(&domain.Project{}).Where("is_active = ?", true).Count(&projectCount).Error; err != nil {
		c.logger.Warn("Failed to count projects", zap.Error(err))
	} else {
		c.metrics.SetProjectsTotal(projectCount)
	}

	var typeCount int64
	if err := c.db.Model(&domain.WorkItemType{}).Where("is_active = ?", true).Count(&typeCount).Error; err != nil {
		c.logger.Warn("Failed to count work item types", zap.Error(err))
	} else {
		c.metrics.SetWorkItemTypesTotal(typeCount)
	}

	var itemCount int64
	if err := c.db.Model(&domain.WorkItem{}).Where("is_active = ?", true).Count(&itemCount).Error; err != nil {
		c.logger.Warn("Failed to count work items", zap.Error(err))
	} else {
		c.metrics.SetWorkItemsTotal(itemCount)
	}
}
