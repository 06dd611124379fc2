package ports

import (
	"context"

	"orderflow/internal/core/domain/model/attempt"
	"orderflow/internal/core/domain/model/kernel"
)

// AttemptRepository defines the persistence contract for the append-only
// delivery-attempt ledger.
type AttemptRepository interface {
	// Append inserts a new ledger entry, assigning the next attempt number
	// for the order atomically with the insert so concurrent writers on the
	// same order never produce duplicate or gapped numbers. The assigned
	// number is set on the aggregate. Entries are never updated or deleted.
	Append(ctx context.Context, aggregate *attempt.Attempt) error

	// ListByOrder returns an order's ledger entries in attempt-number order.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*attempt.Attempt, error)
}
