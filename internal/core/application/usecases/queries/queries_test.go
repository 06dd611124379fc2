package queries_test

import (
	"testing"
	"time"

	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetUnassignedOrdersQuery(t *testing.T) {
	t.Run("should create query for a valid city", func(t *testing.T) {
		query, err := queries.NewGetUnassignedOrdersQuery(kernel.Boujdour)

		require.NoError(t, err)
		assert.Equal(t, kernel.Boujdour, query.City())
		require.NoError(t, query.Validate())
	})

	t.Run("should reject unknown city", func(t *testing.T) {
		_, err := queries.NewGetUnassignedOrdersQuery(kernel.CityUnknown)

		require.Error(t, err)
	})

	t.Run("should fail validation on zero value", func(t *testing.T) {
		var query queries.GetUnassignedOrdersQuery

		assert.ErrorIs(t, query.Validate(), queries.ErrGetUnassignedOrdersQueryIsNotConstructed)
	})
}

func TestNewGetOrderTimelineQuery(t *testing.T) {
	t.Run("should create query", func(t *testing.T) {
		orderID := kernel.NewUUID()

		query, err := queries.NewGetOrderTimelineQuery(orderID)

		require.NoError(t, err)
		assert.True(t, query.OrderID().IsEqual(orderID))
		require.NoError(t, query.Validate())
	})

	t.Run("should reject zero order ID", func(t *testing.T) {
		_, err := queries.NewGetOrderTimelineQuery(kernel.UUID{})

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("should fail validation on zero value", func(t *testing.T) {
		var query queries.GetOrderTimelineQuery

		assert.ErrorIs(t, query.Validate(), queries.ErrGetOrderTimelineQueryIsNotConstructed)
	})
}

func TestNewGetStalePendingOrdersQuery(t *testing.T) {
	t.Run("should create query", func(t *testing.T) {
		query, err := queries.NewGetStalePendingOrdersQuery(2 * time.Hour)

		require.NoError(t, err)
		assert.Equal(t, 2*time.Hour, query.OlderThan())
		require.NoError(t, query.Validate())
	})

	t.Run("should reject non-positive duration", func(t *testing.T) {
		_, err := queries.NewGetStalePendingOrdersQuery(0)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail validation on zero value", func(t *testing.T) {
		var query queries.GetStalePendingOrdersQuery

		assert.ErrorIs(t, query.Validate(), queries.ErrGetStalePendingOrdersQueryIsNotConstructed)
	})
}
