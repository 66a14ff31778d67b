package jobs

import (
	"fmt"
	"log/slog"

	"kioskhub/internal/core/application/usecases/queries"
)

// JobManager coordinates the scheduled jobs in the application.
type JobManager struct {
	queueMonitorJob *QueueMonitorJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(dbProvider queries.DBProvider, logger *slog.Logger) *JobManager {
	return &JobManager{
		queueMonitorJob: NewQueueMonitorJob(dbProvider, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.queueMonitorJob.Start(); err != nil {
		return fmt.Errorf("failed to start queue monitor job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.queueMonitorJob.Stop()
}
