package commands

import (
	"context"
	"time"

	"orderflow/internal/core/domain/model/attempt"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/ports"
)

// ReportDelayCommandHandler moves an order into Reported and records
// the delay in the attempt ledger.
type ReportDelayCommandHandler struct {
	uowFactory TransitionUoWFactory
	notifier   ports.Notifier
}

// NewReportDelayCommandHandler creates a handler for delay reports.
func NewReportDelayCommandHandler(uowFactory TransitionUoWFactory, notifier ports.Notifier) ReportDelayCommandHandler {
	return ReportDelayCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the delay report.
func (h ReportDelayCommandHandler) Handle(ctx context.Context, cmd ReportDelayCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	reported, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = reported.ReportDelay(cmd.Actor(), cmd.Reason()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, reported); err != nil {
		return err
	}

	entry, err := attempt.NewAttempt(
		kernel.NewUUID(),
		reported.ID(),
		attempt.Other,
		reported.DeliveryMan(),
		cmd.Reason(),
		"",
		"",
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.AttemptRepository().Append(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, ports.NewOrderDelayedNotification(
		reported.MerchantID(),
		reported.ID(),
		reported.Code(),
		cmd.Reason(),
	))
	return nil
}
