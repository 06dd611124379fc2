package ports

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate and its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Items are immutable and never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its items by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// NextCodeSequence reserves the next per-city order code sequence number.
	// Must run inside the same transaction that persists the order and lock
	// against concurrent readers so two orders never share a code.
	NextCodeSequence(ctx context.Context, city kernel.City) (int, error)

	// ClaimForDelivery conditionally assigns a delivery worker: the update
	// only succeeds while the order is still unassigned. A lost race returns
	// a conflict error and writes nothing.
	ClaimForDelivery(ctx context.Context, orderID, deliveryManID kernel.UUID) error
}
