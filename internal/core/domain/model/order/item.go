package order

import (
	"fmt"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Item is one order line. Items are immutable after order creation.
//
// Free items are promotional give-aways: they stay on the order for display
// and audit, but are excluded entirely from stock and earnings accounting.
type Item struct {
	productID     kernel.UUID
	quantity      int
	price         decimal.Decimal
	originalPrice decimal.Decimal
	isFree        bool

	isConstructed bool
}

// NewItem creates an order line with validation.
// Quantity must be positive and both prices non-negative.
func NewItem(
	productID kernel.UUID,
	quantity int,
	price decimal.Decimal,
	originalPrice decimal.Decimal,
	isFree bool,
) (Item, error) {
	if err := productID.Validate(); err != nil {
		return Item{}, err
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	if price.IsNegative() {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"price is invalid",
			fmt.Errorf("%s is negative", price),
		)
	}
	if originalPrice.IsNegative() {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"original price is invalid",
			fmt.Errorf("%s is negative", originalPrice),
		)
	}

	return Item{
		productID:     productID,
		quantity:      quantity,
		price:         price,
		originalPrice: originalPrice,
		isFree:        isFree,
		isConstructed: true,
	}, nil
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return errs.NewValueIsRequiredError("item must be created via NewItem constructor")
	}
	return nil
}

// ProductID returns the product this line orders.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the ordered unit count.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the effective unit price after discounts.
func (i Item) Price() decimal.Decimal {
	return i.price
}

// OriginalPrice returns the catalog unit price before discounts.
func (i Item) OriginalPrice() decimal.Decimal {
	return i.originalPrice
}

// IsFree reports whether the line is a promotional give-away.
func (i Item) IsFree() bool {
	return i.isFree
}

// Subtotal returns originalPrice × quantity for non-free lines and zero
// for free lines.
func (i Item) Subtotal() decimal.Decimal {
	if i.isFree {
		return decimal.Zero
	}
	return i.originalPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}
