package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	pendingOrderReminderJob *PendingOrderReminderJob
}

// NewJobManager creates a job manager with all required jobs wired.
func NewJobManager(
	stalePendingHandler queries.GetStalePendingOrdersQueryHandler,
	notifier ports.Notifier,
	adminID kernel.UUID,
	staleAfter time.Duration,
	reminderSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		pendingOrderReminderJob: NewPendingOrderReminderJob(
			stalePendingHandler,
			notifier,
			adminID,
			staleAfter,
			reminderSchedule,
			logger,
		),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.pendingOrderReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start pending order reminder job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pendingOrderReminderJob.Stop()
}
