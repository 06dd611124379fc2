package services

import (
	"orderflow/internal/core/domain/model/discount"
	"orderflow/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// Totals is the pricing engine's output for one order.
// The values are stored on the order at creation and never recomputed
// downstream, which keeps the rest of the system simple.
type Totals struct {
	Original decimal.Decimal
	Discount decimal.Decimal
	Final    decimal.Decimal
}

// PricingEngine computes order totals from the selected line items and an
// optional discount rule. It is a pure pricing function with no side
// effects; the create-order handler always re-runs it before persisting,
// regardless of what the caller claims the totals are.
//
// Rules:
//   - originalTotal sums originalPrice * quantity over non-free items
//   - PERCENTAGE discounts value% of the original total
//   - FIXED_AMOUNT discounts min(value, originalTotal)
//   - BUY_X_GET_Y discounts floor(qty/(buy+get)) * get free units of the
//     nominated product at its original unit price
//   - CUSTOM_PRICE overrides the final total to value
//   - finalTotal never drops below zero
type PricingEngine struct{}

// NewPricingEngine creates a PricingEngine instance.
func NewPricingEngine() PricingEngine {
	return PricingEngine{}
}

// ComputeTotals prices the given items under the optional discount rule.
// A nil rule yields a zero discount.
func (PricingEngine) ComputeTotals(items []order.Item, rule *discount.Rule) (Totals, error) {
	original := decimal.Zero
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return Totals{}, err
		}
		original = original.Add(item.Subtotal())
	}

	discountAmount := decimal.Zero
	if rule != nil {
		if err := rule.Validate(); err != nil {
			return Totals{}, err
		}

		switch rule.Kind() {
		case discount.Percentage:
			discountAmount = original.Mul(rule.Value()).Div(decimal.NewFromInt(100))
		case discount.FixedAmount:
			discountAmount = decimal.Min(rule.Value(), original)
		case discount.BuyXGetY:
			discountAmount = buyXGetYDiscount(items, rule)
		case discount.CustomPrice:
			discountAmount = original.Sub(rule.Value())
		}
	}

	final := original.Sub(discountAmount)
	if final.IsNegative() {
		final = decimal.Zero
	}

	return Totals{Original: original, Discount: discountAmount, Final: final}, nil
}

// buyXGetYDiscount prices the free units earned on the nominated product.
// When the order does not contain the nominated product, no discount applies.
func buyXGetYDiscount(items []order.Item, rule *discount.Rule) decimal.Decimal {
	bundle := rule.BuyQty() + rule.GetQty()
	for _, item := range items {
		if item.IsFree() || !item.ProductID().IsEqual(rule.ProductID()) {
			continue
		}

		freeUnits := item.Quantity() / bundle * rule.GetQty()
		return item.OriginalPrice().Mul(decimal.NewFromInt(int64(freeUnits)))
	}
	return decimal.Zero
}
