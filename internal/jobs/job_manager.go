package jobs

import (
	"fmt"
	"log/slog"

	"logistics/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	transitReportJob *TransitReportJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(getContainersHandler queries.GetContainersQueryHandler, logger *slog.Logger) *JobManager {
	return &JobManager{
		transitReportJob: NewTransitReportJob(getContainersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.transitReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start transit report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.transitReportJob.Stop()
}
