package commands

import (
	"context"
	"time"

	"orderflow/internal/core/domain/model/attempt"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/ports"
)

// DeclineOrderCommandHandler closes an order as Rejected or Cancelled.
// The closing attempt is recorded as Refused in the order's ledger.
type DeclineOrderCommandHandler struct {
	uowFactory TransitionUoWFactory
	notifier   ports.Notifier
}

// NewDeclineOrderCommandHandler creates a handler for closing orders.
func NewDeclineOrderCommandHandler(uowFactory TransitionUoWFactory, notifier ports.Notifier) DeclineOrderCommandHandler {
	return DeclineOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the decline command.
func (h DeclineOrderCommandHandler) Handle(ctx context.Context, cmd DeclineOrderCommand) error {
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

	declined, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = declined.Decline(cmd.Actor(), cmd.Target()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, declined); err != nil {
		return err
	}

	entry, err := attempt.NewAttempt(
		kernel.NewUUID(),
		declined.ID(),
		attempt.Refused,
		declined.DeliveryMan(),
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

	h.notifier.Notify(ctx, ports.NewOrderDeclinedNotification(
		declined.MerchantID(),
		declined.ID(),
		declined.Code(),
		declined.Status().String(),
	))
	return nil
}
