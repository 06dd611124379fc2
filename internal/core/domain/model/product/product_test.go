package product_test

import (
	"testing"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/product"
	"orderflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("should create product with initial stock", func(t *testing.T) {
		id := kernel.NewUUID()

		p, err := product.NewProduct(id, "Thermal Flask", decimal.NewFromInt(50), 10)

		require.NoError(t, err)
		assert.True(t, p.ID().IsEqual(id))
		assert.Equal(t, "Thermal Flask", p.Name())
		assert.Equal(t, 10, p.StockQuantity())
		assert.Equal(t, 0, p.DeliveredCount())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "", decimal.NewFromInt(50), 10)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject negative price", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "Thermal Flask", decimal.NewFromInt(-1), 10)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject negative stock", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "Thermal Flask", decimal.NewFromInt(50), -1)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestProduct_HasStockFor(t *testing.T) {
	p, err := product.NewProduct(kernel.NewUUID(), "Thermal Flask", decimal.NewFromInt(50), 3)
	require.NoError(t, err)

	t.Run("should report true when stock covers the quantity", func(t *testing.T) {
		assert.True(t, p.HasStockFor(3))
	})

	t.Run("should report false when stock is short", func(t *testing.T) {
		assert.False(t, p.HasStockFor(4))
	})

	t.Run("should report false for non-positive quantity", func(t *testing.T) {
		assert.False(t, p.HasStockFor(0))
	})
}

func TestProduct_Deduct(t *testing.T) {
	t.Run("should move units from stock to delivered", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), "Thermal Flask", decimal.NewFromInt(50), 5)
		require.NoError(t, err)

		err = p.Deduct(2)

		require.NoError(t, err)
		assert.Equal(t, 3, p.StockQuantity())
		assert.Equal(t, 2, p.DeliveredCount())
	})

	t.Run("should fail without mutating when stock is short", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), "Thermal Flask", decimal.NewFromInt(50), 1)
		require.NoError(t, err)

		err = p.Deduct(2)

		assert.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, 1, p.StockQuantity())
		assert.Equal(t, 0, p.DeliveredCount())
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), "Thermal Flask", decimal.NewFromInt(50), 5)
		require.NoError(t, err)

		err = p.Deduct(0)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreProduct(t *testing.T) {
	t.Run("should restore delivered counter", func(t *testing.T) {
		p, err := product.RestoreProduct(kernel.NewUUID(), "Thermal Flask", decimal.NewFromInt(50), 4, 6)

		require.NoError(t, err)
		assert.Equal(t, 4, p.StockQuantity())
		assert.Equal(t, 6, p.DeliveredCount())
	})
}

func TestProduct_Validate(t *testing.T) {
	t.Run("should fail on zero value", func(t *testing.T) {
		var p product.Product

		assert.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)
	})

	t.Run("should fail on nil", func(t *testing.T) {
		var p *product.Product

		assert.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)
	})
}
