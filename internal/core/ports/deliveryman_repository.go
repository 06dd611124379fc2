package ports

import (
	"context"

	"orderflow/internal/core/domain/model/deliveryman"
	"orderflow/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// DeliveryManRepository defines the persistence contract for delivery workers.
type DeliveryManRepository interface {
	// Add persists a new delivery worker.
	Add(ctx context.Context, aggregate *deliveryman.DeliveryMan) error

	// Get retrieves a delivery worker by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*deliveryman.DeliveryMan, error)

	// RecordSuccessfulDelivery increments the worker's delivery counters and
	// adds the earning in place, composing with external balance adjustments.
	RecordSuccessfulDelivery(ctx context.Context, id kernel.UUID, earning decimal.Decimal) error
}
