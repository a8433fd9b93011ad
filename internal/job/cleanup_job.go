package job

import (
	"context"
	"time"

	"go.uber.org/zap"

	"project-tracker-api/internal/repository"
)

// CleanupJob purges field values that were deactivated longer ago than
// the retention window. Deactivated values accumulate from work item
// updates and deletions; they are kept for a while so recent edits can
// be inspected, then removed for good.
type CleanupJob struct {
	fieldValueRepo repository.FieldValueRepository
	retention      time.Duration
	logger         *zap.Logger
}

// NewCleanupJob creates a new CleanupJob instance
func NewCleanupJob(
	fieldValueRepo repository.FieldValueRepository,
	retention time.Duration,
	logger *zap.Logger,
) *CleanupJob {
	return &CleanupJob{
		fieldValueRepo: fieldValueRepo,
		retention:      retention,
		logger:         logger,
	}
}

// Run executes the cleanup job. It satisfies cron.Job.
func (j *CleanupJob) Run() {
	ctx := context.Background()
	cutoff := time.Now().Add(-j.retention)

	j.logger.Info("Starting field value cleanup job",
		zap.Time("cutoff", cutoff),
	)

	purged, err := j.fieldValueRepo.PurgeInactiveBefore(ctx, cutoff)
	if err != nil {
		j.logger.Error("Failed to purge inactive field values",
			zap.Error(err),
		)
		return
	}

	j.logger.Info("Cleanup job completed",
		zap.Int64("purged", purged),
	)
}
