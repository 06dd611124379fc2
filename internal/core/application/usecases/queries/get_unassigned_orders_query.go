package queries

import (
	"errors"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetUnassignedOrdersQueryIsNotConstructed = errors.New(
	"GetUnassignedOrdersQuery must be created via NewGetUnassignedOrdersQuery constructor",
)

// GetUnassignedOrdersQuery retrieves accepted orders in one city that no
// delivery worker has claimed yet. Delivery workers poll it to find work.
//
// Example:
//
//	query, err := NewGetUnassignedOrdersQuery(kernel.Dakhla)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
type GetUnassignedOrdersQuery struct {
	city kernel.City

	guard guard.ConstructorGuard
}

// NewGetUnassignedOrdersQuery creates a query for claimable orders in a city.
func NewGetUnassignedOrdersQuery(city kernel.City) (GetUnassignedOrdersQuery, error) {
	if err := city.Validate(); err != nil {
		return GetUnassignedOrdersQuery{}, err
	}

	return GetUnassignedOrdersQuery{
		city:  city,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUnassignedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnassignedOrdersQueryIsNotConstructed)
}

// City returns the city the caller works in.
func (q GetUnassignedOrdersQuery) City() kernel.City {
	return q.city
}

// GetUnassignedOrdersQueryResponse is one claimable order.
type GetUnassignedOrdersQueryResponse struct {
	ID         kernel.UUID
	Code       string
	MerchantID kernel.UUID
	TotalPrice decimal.Decimal
	CreatedAt  time.Time
}
