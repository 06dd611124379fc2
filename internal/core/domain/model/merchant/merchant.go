// Package merchant contains the Merchant aggregate: the shop owner whose
// balance and lifetime earnings the settlement ledger maintains.
package merchant

import (
	"errors"
	"fmt"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrMerchantIsNotConstructed is returned when a Merchant instance was not
// created through NewMerchant or RestoreMerchant.
var ErrMerchantIsNotConstructed = errors.New("Merchant must be created via NewMerchant or RestoreMerchant")

// Merchant owns orders and accumulates settlement results.
//
// balance is the running net amount owed to (positive) or by (negative) the
// merchant; totalEarned is lifetime gross sales. Both are mutated only by the
// settlement ledger and by administrative money transfers, always additively,
// so the two writers compose instead of overwriting each other.
type Merchant struct {
	id          kernel.UUID
	name        string
	baseFee     decimal.Decimal
	balance     decimal.Decimal
	totalEarned decimal.Decimal

	isConstructed bool
}

// NewMerchant creates a merchant with a zero balance and the platform fee
// charged per order.
func NewMerchant(id kernel.UUID, name string, baseFee decimal.Decimal) (*Merchant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("merchant name")
	}
	if baseFee.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause("merchant base fee", fmt.Errorf("%s is negative", baseFee))
	}

	return &Merchant{
		id:            id,
		name:          name,
		baseFee:       baseFee,
		balance:       decimal.Zero,
		totalEarned:   decimal.Zero,
		isConstructed: true,
	}, nil
}

// RestoreMerchant reconstructs a merchant from persistence.
func RestoreMerchant(
	id kernel.UUID,
	name string,
	baseFee decimal.Decimal,
	balance decimal.Decimal,
	totalEarned decimal.Decimal,
) (*Merchant, error) {
	restored, err := NewMerchant(id, name, baseFee)
	if err != nil {
		return nil, err
	}

	restored.balance = balance
	restored.totalEarned = totalEarned
	return restored, nil
}

// Validate ensures the Merchant was created through a constructor.
func (m *Merchant) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMerchantIsNotConstructed
	}
	return nil
}

// ID returns the merchant's unique identifier.
func (m *Merchant) ID() kernel.UUID {
	return m.id
}

// Name returns the merchant's display name.
func (m *Merchant) Name() string {
	return m.name
}

// BaseFee returns the platform fee charged per order.
func (m *Merchant) BaseFee() decimal.Decimal {
	return m.baseFee
}

// Balance returns the running net amount owed to or by the merchant.
func (m *Merchant) Balance() decimal.Decimal {
	return m.balance
}

// TotalEarned returns lifetime gross sales.
func (m *Merchant) TotalEarned() decimal.Decimal {
	return m.totalEarned
}

// ApplySettlement adds the settlement deltas for one delivered order:
// the net earning to the balance and the gross sale to lifetime earnings.
// The balance delta is negative for prepaid orders.
func (m *Merchant) ApplySettlement(balanceDelta, earnedDelta decimal.Decimal) {
	m.balance = m.balance.Add(balanceDelta)
	m.totalEarned = m.totalEarned.Add(earnedDelta)
}
