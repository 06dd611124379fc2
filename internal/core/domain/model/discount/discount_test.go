package discount_test

import (
	"testing"

	"orderflow/internal/core/domain/model/discount"
	"orderflow/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPercentage(t *testing.T) {
	t.Run("should accept values within (0, 100]", func(t *testing.T) {
		for _, v := range []int64{1, 50, 100} {
			rule, err := discount.NewPercentage(decimal.NewFromInt(v))

			require.NoError(t, err)
			assert.Equal(t, discount.Percentage, rule.Kind())
		}
	})

	t.Run("should reject zero, negative and over-100 values", func(t *testing.T) {
		for _, v := range []int64{0, -10, 101} {
			_, err := discount.NewPercentage(decimal.NewFromInt(v))
			require.Error(t, err, "value %d", v)
		}
	})
}

func TestNewFixedAmount(t *testing.T) {
	t.Run("should require a positive amount", func(t *testing.T) {
		rule, err := discount.NewFixedAmount(decimal.NewFromInt(30))
		require.NoError(t, err)
		assert.Equal(t, discount.FixedAmount, rule.Kind())

		_, err = discount.NewFixedAmount(decimal.Zero)
		require.Error(t, err)
	})
}

func TestNewBuyXGetY(t *testing.T) {
	t.Run("should carry the nominated product and quantities", func(t *testing.T) {
		productID := kernel.NewUUID()

		rule, err := discount.NewBuyXGetY(productID, 2, 1)

		require.NoError(t, err)
		assert.Equal(t, discount.BuyXGetY, rule.Kind())
		assert.True(t, rule.ProductID().IsEqual(productID))
		assert.Equal(t, 2, rule.BuyQty())
		assert.Equal(t, 1, rule.GetQty())
	})

	t.Run("should reject non-positive quantities", func(t *testing.T) {
		productID := kernel.NewUUID()

		_, err := discount.NewBuyXGetY(productID, 0, 1)
		require.Error(t, err)

		_, err = discount.NewBuyXGetY(productID, 2, 0)
		require.Error(t, err)
	})

	t.Run("should reject an unconstructed product ID", func(t *testing.T) {
		var productID kernel.UUID

		_, err := discount.NewBuyXGetY(productID, 2, 1)

		require.Error(t, err)
	})
}

func TestNewCustomPrice(t *testing.T) {
	t.Run("should accept zero as a full comp", func(t *testing.T) {
		rule, err := discount.NewCustomPrice(decimal.Zero)

		require.NoError(t, err)
		assert.Equal(t, discount.CustomPrice, rule.Kind())
	})

	t.Run("should reject negative prices", func(t *testing.T) {
		_, err := discount.NewCustomPrice(decimal.NewFromInt(-1))

		require.Error(t, err)
	})
}

func TestRule_Validate(t *testing.T) {
	t.Run("should reject the zero value", func(t *testing.T) {
		var rule discount.Rule

		require.Error(t, rule.Validate())
	})
}
