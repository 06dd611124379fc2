package commands

import (
	"context"
	"time"

	"orderflow/internal/core/domain/model/attempt"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/ports"
)

const rescheduleReason = "delivery rescheduled after delay"

// ResolveDelayCommandHandler moves a reported order back into delivery
// with a new delivery date and tells the assigned worker.
type ResolveDelayCommandHandler struct {
	uowFactory TransitionUoWFactory
	notifier   ports.Notifier
}

// NewResolveDelayCommandHandler creates a handler for delay resolution.
func NewResolveDelayCommandHandler(uowFactory TransitionUoWFactory, notifier ports.Notifier) ResolveDelayCommandHandler {
	return ResolveDelayCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the resolution command.
func (h ResolveDelayCommandHandler) Handle(ctx context.Context, cmd ResolveDelayCommand) error {
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

	rescheduled, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = rescheduled.ResolveDelay(cmd.Actor(), cmd.NewDeliveryDate()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, rescheduled); err != nil {
		return err
	}

	entry, err := attempt.NewAttempt(
		kernel.NewUUID(),
		rescheduled.ID(),
		attempt.Other,
		rescheduled.DeliveryMan(),
		rescheduleReason,
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

	if worker := rescheduled.DeliveryMan(); worker != nil {
		h.notifier.Notify(ctx, ports.NewOrderRescheduledNotification(
			*worker,
			rescheduled.ID(),
			rescheduled.Code(),
			cmd.NewDeliveryDate().Format("2006-01-02"),
		))
	}
	return nil
}
