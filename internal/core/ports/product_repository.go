package ports

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for products.
type ProductRepository interface {
	// Add persists a new product.
	Add(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// DeductStock conditionally moves quantity units from stock to the
	// delivered counter. The update only succeeds while remaining stock
	// covers the quantity; otherwise a conflict error is returned and
	// nothing is written, which aborts the surrounding delivery.
	DeductStock(ctx context.Context, productID kernel.UUID, quantity int) error
}
