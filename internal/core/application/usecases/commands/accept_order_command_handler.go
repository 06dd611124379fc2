package commands

import (
	"context"
	"time"

	"orderflow/internal/core/domain/model/attempt"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/ports"
)

// AcceptOrderCommandHandler moves a pending order into Accepted.
// The transition and its audit ledger entry commit together; the merchant
// is notified after the commit.
type AcceptOrderCommandHandler struct {
	uowFactory TransitionUoWFactory
	notifier   ports.Notifier
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
func NewAcceptOrderCommandHandler(uowFactory TransitionUoWFactory, notifier ports.Notifier) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the acceptance command.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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

	accepted, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = accepted.Accept(cmd.Actor()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, accepted); err != nil {
		return err
	}

	entry, err := attempt.NewAttempt(
		kernel.NewUUID(),
		accepted.ID(),
		attempt.Other,
		nil,
		attempt.AcceptanceReason,
		cmd.Notes(),
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

	h.notifier.Notify(ctx, ports.NewOrderAcceptedNotification(accepted.MerchantID(), accepted.ID(), accepted.Code()))
	return nil
}
