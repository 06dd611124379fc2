package services

import (
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Settlement is the set of ledger deltas one delivered order produces.
// Every delta is additive: repositories apply them with in-place arithmetic
// updates so they compose with administrative money transfers touching the
// same balances.
type Settlement struct {
	// MerchantBalanceDelta is added to the merchant's running balance:
	// totalPrice minus merchantBaseFee for COD, the negated fee for prepaid.
	MerchantBalanceDelta decimal.Decimal

	// MerchantEarnedDelta is the gross sale added to lifetime earnings,
	// recorded for both payment methods.
	MerchantEarnedDelta decimal.Decimal

	// DeliveryManEarning is the worker's fee, zero when no worker is assigned.
	DeliveryManEarning decimal.Decimal

	// CountsDelivery reports whether worker delivery stats increment.
	CountsDelivery bool
}

// SettlementCalculator derives the settlement deltas for a delivered order.
// It runs exactly once per order, at the Delivered transition, inside the
// same unit of work as the status write and the stock reconciliation.
type SettlementCalculator struct{}

// NewSettlementCalculator creates a SettlementCalculator instance.
func NewSettlementCalculator() SettlementCalculator {
	return SettlementCalculator{}
}

// Settle computes the deltas for the given order. The merchant deltas come
// from the values stored at creation (merchantEarning already encodes the
// payment-method sign); deliveryManBaseFee is the assigned worker's fee and
// is ignored when the order has no worker.
func (SettlementCalculator) Settle(o *order.Order, deliveryManBaseFee decimal.Decimal) (Settlement, error) {
	if err := o.Validate(); err != nil {
		return Settlement{}, err
	}
	if deliveryManBaseFee.IsNegative() {
		return Settlement{}, errs.NewValueIsInvalidError("delivery man base fee")
	}

	settlement := Settlement{
		MerchantBalanceDelta: o.MerchantEarning(),
		MerchantEarnedDelta:  o.TotalPrice(),
		DeliveryManEarning:   decimal.Zero,
	}

	if o.DeliveryMan() != nil {
		settlement.DeliveryManEarning = deliveryManBaseFee
		settlement.CountsDelivery = true
	}

	return settlement, nil
}
