// Package jobs provides the scheduled background tasks of the service,
// built on github.com/robfig/cron/v3.
package jobs

import (
	"context"
	"log/slog"
	"time"

	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// PendingOrderReminderJob periodically looks for orders stuck in Pending
// and reminds the administration to review them. Orders nobody accepts
// never expire on their own, so the nudge is the only pressure.
type PendingOrderReminderJob struct {
	handler    queries.GetStalePendingOrdersQueryHandler
	notifier   ports.Notifier
	adminID    kernel.UUID
	staleAfter time.Duration
	schedule   string
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewPendingOrderReminderJob creates the reminder job. Orders older than
// staleAfter trigger a reminder; the schedule is a standard cron spec.
func NewPendingOrderReminderJob(
	handler queries.GetStalePendingOrdersQueryHandler,
	notifier ports.Notifier,
	adminID kernel.UUID,
	staleAfter time.Duration,
	schedule string,
	logger *slog.Logger,
) *PendingOrderReminderJob {
	return &PendingOrderReminderJob{
		handler:  handler,
		notifier: notifier,
		adminID:  adminID,
		staleAfter: staleAfter,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "pending_order_reminder_job"),
	}
}

// Start schedules the reminder job.
func (j *PendingOrderReminderJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending order reminder job started", "schedule", j.schedule)
	return nil
}

// Stop stops the reminder job.
func (j *PendingOrderReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending order reminder job stopped")
}

func (j *PendingOrderReminderJob) run() {
	ctx := context.Background()

	query, err := queries.NewGetStalePendingOrdersQuery(j.staleAfter)
	if err != nil {
		j.logger.ErrorContext(ctx, "Pending order reminder job misconfigured", "error", err)
		return
	}

	stale, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Pending order reminder job failed", "error", err)
		return
	}

	if len(stale) == 0 {
		return
	}

	j.notifier.Notify(ctx, ports.NewPendingOrdersReminderNotification(j.adminID, len(stale)))
	j.logger.InfoContext(ctx, "Pending order reminder sent", "count", len(stale))
}
