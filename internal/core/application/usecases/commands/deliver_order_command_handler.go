package commands

import (
	"context"
	"time"

	"orderflow/internal/core/domain/model/attempt"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/core/ports"

	"github.com/shopspring/decimal"
)

// DeliverOrderCommandHandler moves an assigned order into Delivered and
// runs the full settlement chain in one unit of work:
//
//  1. the status transition with its authority check
//  2. conditional stock decrements for every non-free item
//  3. merchant balance/earnings and worker stats/earnings updates
//  4. the Successful ledger entry
//
// Any failure, insufficient stock included, rolls back everything, so the
// order is never flagged Delivered with partial side effects. The transition
// table guarantees a second delivery of the same order is rejected before
// any side effect runs.
type DeliverOrderCommandHandler struct {
	uowFactory DeliverUoWFactory
	notifier   ports.Notifier
	inventory  services.InventoryPlanner
	settlement services.SettlementCalculator
}

// NewDeliverOrderCommandHandler creates a handler for delivery completion.
func NewDeliverOrderCommandHandler(uowFactory DeliverUoWFactory, notifier ports.Notifier) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		inventory:  services.NewInventoryPlanner(),
		settlement: services.NewSettlementCalculator(),
	}
}

// Handle processes the delivery command.
func (h DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) error {
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

	delivered, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	workerFee := decimal.Zero
	if workerID := delivered.DeliveryMan(); workerID != nil {
		worker, workerErr := uow.DeliveryManRepository().Get(ctx, *workerID)
		if workerErr != nil {
			return workerErr
		}
		workerFee = worker.BaseFee()
	}

	deliveredAt := time.Now().UTC()
	if err = delivered.MarkDelivered(cmd.Actor(), deliveredAt); err != nil {
		return err
	}

	// Stock moved since creation is re-validated here: the conditional
	// decrement fails the whole delivery if any product can no longer
	// cover its quantity.
	productRepo := uow.ProductRepository()
	for _, adjustment := range h.inventory.Plan(delivered.Items()) {
		if err = productRepo.DeductStock(ctx, adjustment.ProductID, adjustment.Quantity); err != nil {
			return err
		}
	}

	settlement, err := h.settlement.Settle(delivered, workerFee)
	if err != nil {
		return err
	}

	if err = uow.MerchantRepository().ApplySettlement(
		ctx,
		delivered.MerchantID(),
		settlement.MerchantBalanceDelta,
		settlement.MerchantEarnedDelta,
	); err != nil {
		return err
	}

	if settlement.CountsDelivery {
		if err = uow.DeliveryManRepository().RecordSuccessfulDelivery(
			ctx,
			*delivered.DeliveryMan(),
			settlement.DeliveryManEarning,
		); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, delivered); err != nil {
		return err
	}

	entry, err := attempt.NewAttempt(
		kernel.NewUUID(),
		delivered.ID(),
		attempt.Successful,
		delivered.DeliveryMan(),
		"",
		cmd.Notes(),
		cmd.Location(),
		deliveredAt,
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

	h.notifier.Notify(ctx, ports.NewOrderDeliveredNotification(
		delivered.MerchantID(), delivered.ID(), delivered.Code()))
	return nil
}
