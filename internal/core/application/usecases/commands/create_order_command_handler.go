package commands

import (
	"context"
	"fmt"
	"time"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Prices the selected items through the pricing engine, verifies stock
// availability, reserves the next per-city order code, and persists the
// order with its items in one transaction.
//
// Stock is only checked here, not decremented: inventory moves when the
// order is actually delivered, and availability is re-validated then.
type CreateOrderCommandHandler struct {
	uowFactory CreateUoWFactory
	pricing    services.PricingEngine
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory CreateUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pricing:    services.NewPricingEngine(),
	}
}

// Handle processes the order creation command and returns the created order.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	merchantRepo := uow.MerchantRepository()
	productRepo := uow.ProductRepository()
	orderRepo := uow.OrderRepository()

	owner, err := merchantRepo.Get(ctx, cmd.MerchantID())
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(cmd.Items()))
	for _, selection := range cmd.Items() {
		p, productErr := productRepo.Get(ctx, selection.ProductID())
		if productErr != nil {
			return nil, productErr
		}

		if !selection.IsFree() && !p.HasStockFor(selection.Quantity()) {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"insufficient stock",
				fmt.Errorf("product %s has %d units, %d requested",
					p.ID(), p.StockQuantity(), selection.Quantity()),
			)
		}

		effectivePrice := p.Price()
		if selection.IsFree() {
			effectivePrice = decimal.Zero
		}

		item, itemErr := order.NewItem(p.ID(), selection.Quantity(), effectivePrice, p.Price(), selection.IsFree())
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	totals, err := h.pricing.ComputeTotals(items, cmd.DiscountRule())
	if err != nil {
		return nil, err
	}

	sequence, err := orderRepo.NextCodeSequence(ctx, cmd.City())
	if err != nil {
		return nil, err
	}

	created, err := order.NewOrder(
		cmd.OrderID(),
		cmd.City(),
		sequence,
		cmd.MerchantID(),
		cmd.PaymentMethod(),
		items,
		totals.Original,
		totals.Discount,
		totals.Final,
		owner.BaseFee(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
