package jobs

import (
	"fmt"
	"log/slog"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	zoneSortingJob *ZoneSortingJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes handlers as dependencies to wire up the job execution.
func NewJobManager(
	sortableHandler queries.GetSortableParcelsQueryHandler,
	sortHandler commands.SortBatchCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		zoneSortingJob: NewZoneSortingJob(sortableHandler, sortHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.zoneSortingJob.Start(); err != nil {
		return fmt.Errorf("failed to start zone sorting job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.zoneSortingJob.Stop()
}
