// Package ports defines the driven-side contracts the core depends on:
// repositories, the unit of work, and the notification emitter. Adapters
// implement them; command handlers consume them.
package ports

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
)

// UnitOfWork coordinates a single business transaction across repositories.
// Every externally triggered operation executes all of its writes (status
// update, attempt insert, stock decrements, balance updates) inside one
// unit of work, so partial application under crash or conflict is impossible.
type UnitOfWork interface {
	// Begin starts the transaction. Safe to call once per instance.
	Begin(ctx context.Context) error

	// Commit finalizes all changes made within the transaction.
	Commit(ctx context.Context) error

	// Rollback discards all changes made within the transaction.
	Rollback(ctx context.Context) error

	// OrderRepository returns an order repository bound to the transaction.
	OrderRepository() OrderRepository

	// AttemptRepository returns an attempt repository bound to the transaction.
	AttemptRepository() AttemptRepository

	// ProductRepository returns a product repository bound to the transaction.
	ProductRepository() ProductRepository

	// MerchantRepository returns a merchant repository bound to the transaction.
	MerchantRepository() MerchantRepository

	// DeliveryManRepository returns a delivery-worker repository bound to the transaction.
	DeliveryManRepository() DeliveryManRepository

	// TrackAggregate registers an aggregate modified within this unit of work.
	TrackAggregate(id kernel.UUID, aggregate any)
}
