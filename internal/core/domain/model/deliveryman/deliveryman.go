// Package deliveryman contains the DeliveryMan aggregate: the delivery
// worker whose earnings and delivery stats grow on each successful delivery.
package deliveryman

import (
	"errors"
	"fmt"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrDeliveryManIsNotConstructed is returned when a DeliveryMan instance was
// not created through NewDeliveryMan or RestoreDeliveryMan.
var ErrDeliveryManIsNotConstructed = errors.New("DeliveryMan must be created via NewDeliveryMan or RestoreDeliveryMan")

// DeliveryMan is a delivery worker. The city gates which orders the worker
// may claim; stats and earnings are mutated only on successful delivery,
// always additively.
type DeliveryMan struct {
	id                   kernel.UUID
	name                 string
	city                 kernel.City
	baseFee              decimal.Decimal
	totalDeliveries      int
	successfulDeliveries int
	totalEarned          decimal.Decimal

	isConstructed bool
}

// NewDeliveryMan creates a delivery worker eligible for orders in one city,
// earning baseFee per successful delivery.
func NewDeliveryMan(id kernel.UUID, name string, city kernel.City, baseFee decimal.Decimal) (*DeliveryMan, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("delivery man name")
	}
	if err := city.Validate(); err != nil {
		return nil, err
	}
	if baseFee.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause("delivery man base fee", fmt.Errorf("%s is negative", baseFee))
	}

	return &DeliveryMan{
		id:            id,
		name:          name,
		city:          city,
		baseFee:       baseFee,
		totalEarned:   decimal.Zero,
		isConstructed: true,
	}, nil
}

// RestoreDeliveryMan reconstructs a delivery worker from persistence.
func RestoreDeliveryMan(
	id kernel.UUID,
	name string,
	city kernel.City,
	baseFee decimal.Decimal,
	totalDeliveries int,
	successfulDeliveries int,
	totalEarned decimal.Decimal,
) (*DeliveryMan, error) {
	restored, err := NewDeliveryMan(id, name, city, baseFee)
	if err != nil {
		return nil, err
	}

	restored.totalDeliveries = totalDeliveries
	restored.successfulDeliveries = successfulDeliveries
	restored.totalEarned = totalEarned
	return restored, nil
}

// Validate ensures the DeliveryMan was created through a constructor.
func (d *DeliveryMan) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryManIsNotConstructed
	}
	return nil
}

// ID returns the worker's unique identifier.
func (d *DeliveryMan) ID() kernel.UUID {
	return d.id
}

// Name returns the worker's display name.
func (d *DeliveryMan) Name() string {
	return d.name
}

// City returns the city the worker delivers in.
func (d *DeliveryMan) City() kernel.City {
	return d.city
}

// BaseFee returns the fee the worker earns per successful delivery.
func (d *DeliveryMan) BaseFee() decimal.Decimal {
	return d.baseFee
}

// TotalDeliveries returns the lifetime delivery count.
func (d *DeliveryMan) TotalDeliveries() int {
	return d.totalDeliveries
}

// SuccessfulDeliveries returns the lifetime successful delivery count.
func (d *DeliveryMan) SuccessfulDeliveries() int {
	return d.successfulDeliveries
}

// TotalEarned returns lifetime earnings.
func (d *DeliveryMan) TotalEarned() decimal.Decimal {
	return d.totalEarned
}

// RecordSuccessfulDelivery adds one successful delivery and credits the
// given earning (the worker's base fee at settlement time).
func (d *DeliveryMan) RecordSuccessfulDelivery(earning decimal.Decimal) {
	d.totalDeliveries++
	d.successfulDeliveries++
	d.totalEarned = d.totalEarned.Add(earning)
}
