package ports

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/merchant"

	"github.com/shopspring/decimal"
)

// MerchantRepository defines the persistence contract for merchants.
type MerchantRepository interface {
	// Add persists a new merchant.
	Add(ctx context.Context, aggregate *merchant.Merchant) error

	// Get retrieves a merchant by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*merchant.Merchant, error)

	// ApplySettlement adds the settlement deltas to the merchant's balance
	// and lifetime earnings in place. Additive on purpose: administrative
	// money transfers write the same balance and both writers must compose.
	ApplySettlement(ctx context.Context, id kernel.UUID, balanceDelta, earnedDelta decimal.Decimal) error
}
