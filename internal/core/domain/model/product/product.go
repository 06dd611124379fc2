// Package product contains the Product aggregate: the stock and
// delivered-count counters the inventory adjuster maintains.
package product

import (
	"errors"
	"fmt"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

// Product tracks sellable stock. stockQuantity never goes negative: a
// delivery that would overdraw stock fails validation before any side
// effect is applied, and the repository's conditional decrement enforces
// the same bound under concurrent deliveries.
type Product struct {
	id             kernel.UUID
	name           string
	price          decimal.Decimal
	stockQuantity  int
	deliveredCount int

	isConstructed bool
}

// NewProduct creates a product with its initial stock.
func NewProduct(id kernel.UUID, name string, price decimal.Decimal, stockQuantity int) (*Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("product name")
	}
	if price.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause("product price", fmt.Errorf("%s is negative", price))
	}
	if stockQuantity < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"stock quantity",
			fmt.Errorf("%d is negative", stockQuantity),
		)
	}

	return &Product{
		id:            id,
		name:          name,
		price:         price,
		stockQuantity: stockQuantity,
		isConstructed: true,
	}, nil
}

// RestoreProduct reconstructs a product from persistence.
func RestoreProduct(
	id kernel.UUID,
	name string,
	price decimal.Decimal,
	stockQuantity int,
	deliveredCount int,
) (*Product, error) {
	restored, err := NewProduct(id, name, price, stockQuantity)
	if err != nil {
		return nil, err
	}

	restored.deliveredCount = deliveredCount
	return restored, nil
}

// Validate ensures the Product was created through a constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the catalog unit price.
func (p *Product) Price() decimal.Decimal {
	return p.price
}

// StockQuantity returns the units currently in stock.
func (p *Product) StockQuantity() int {
	return p.stockQuantity
}

// DeliveredCount returns the units delivered to date.
func (p *Product) DeliveredCount() int {
	return p.deliveredCount
}

// HasStockFor reports whether quantity units can be taken from stock.
func (p *Product) HasStockFor(quantity int) bool {
	return quantity > 0 && p.stockQuantity >= quantity
}

// Deduct moves quantity units from stock to the delivered counter.
// Fails without mutating if stock would go negative.
func (p *Product) Deduct(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"deduct quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	if p.stockQuantity < quantity {
		return errs.NewConflictError(
			"product stock",
			fmt.Sprintf("insufficient stock: have %d, need %d", p.stockQuantity, quantity),
		)
	}

	p.stockQuantity -= quantity
	p.deliveredCount += quantity
	return nil
}
