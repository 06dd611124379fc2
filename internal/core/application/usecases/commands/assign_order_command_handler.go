package commands

import (
	"context"
	"time"

	"orderflow/internal/core/domain/model/attempt"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/ports"
)

// assignmentReason is the audit reason recorded on the assignment entry.
const assignmentReason = "order assigned to delivery worker"

// AssignOrderCommandHandler moves an accepted order into AssignedToDelivery.
//
// Two workers claiming the same order at once is the expected race here:
// the aggregate validates eligibility, but the actual winner is decided by
// the repository's conditional update, which only succeeds while the order
// is still unassigned. The loser gets a conflict error and no writes.
type AssignOrderCommandHandler struct {
	uowFactory AssignUoWFactory
	notifier   ports.Notifier
}

// NewAssignOrderCommandHandler creates a handler for delivery assignment.
func NewAssignOrderCommandHandler(uowFactory AssignUoWFactory, notifier ports.Notifier) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the assignment command.
func (h AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) error {
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

	assigned, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	worker, err := uow.DeliveryManRepository().Get(ctx, cmd.DeliveryManID())
	if err != nil {
		return err
	}

	if err = assigned.Assign(cmd.Actor(), worker.ID(), worker.City()); err != nil {
		return err
	}

	if err = orderRepo.ClaimForDelivery(ctx, assigned.ID(), worker.ID()); err != nil {
		return err
	}

	workerID := worker.ID()
	entry, err := attempt.NewAttempt(
		kernel.NewUUID(),
		assigned.ID(),
		attempt.Other,
		&workerID,
		assignmentReason,
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

	h.notifier.Notify(ctx, ports.NewOrderAssignedNotification(worker.ID(), assigned.ID(), assigned.Code()))
	return nil
}
