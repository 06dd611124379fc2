package commands_test

import (
	"testing"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/discount"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSelection(t *testing.T) []commands.ItemSelection {
	t.Helper()
	selection, err := commands.NewItemSelection(kernel.NewUUID(), 2, false)
	require.NoError(t, err)
	return []commands.ItemSelection{selection}
}

func TestNewItemSelection(t *testing.T) {
	t.Run("should create selection", func(t *testing.T) {
		productID := kernel.NewUUID()

		selection, err := commands.NewItemSelection(productID, 3, true)

		require.NoError(t, err)
		assert.True(t, selection.ProductID().IsEqual(productID))
		assert.Equal(t, 3, selection.Quantity())
		assert.True(t, selection.IsFree())
	})

	t.Run("should reject zero quantity", func(t *testing.T) {
		_, err := commands.NewItemSelection(kernel.NewUUID(), 0, false)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject zero product ID", func(t *testing.T) {
		_, err := commands.NewItemSelection(kernel.UUID{}, 1, false)

		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestNewCreateOrderCommand(t *testing.T) {
	merchantID := kernel.NewUUID()
	merchantActor, err := kernel.NewActor(merchantID, kernel.RoleMerchant)
	require.NoError(t, err)

	t.Run("should create command for merchant's own order", func(t *testing.T) {
		orderID := kernel.NewUUID()

		cmd, cmdErr := commands.NewCreateOrderCommand(
			orderID, merchantActor, merchantID, kernel.Dakhla, order.CashOnDelivery, testSelection(t), nil)

		require.NoError(t, cmdErr)
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.True(t, cmd.MerchantID().IsEqual(merchantID))
		assert.Equal(t, kernel.Dakhla, cmd.City())
		assert.Nil(t, cmd.DiscountRule())
		require.NoError(t, cmd.Validate())
	})

	t.Run("should let admin create on any merchant's behalf", func(t *testing.T) {
		admin, actorErr := kernel.NewActor(kernel.NewUUID(), kernel.RoleAdmin)
		require.NoError(t, actorErr)

		_, cmdErr := commands.NewCreateOrderCommand(
			kernel.NewUUID(), admin, merchantID, kernel.Laayoune, order.Prepaid, testSelection(t), nil)

		require.NoError(t, cmdErr)
	})

	t.Run("should reject merchant creating for another merchant", func(t *testing.T) {
		_, cmdErr := commands.NewCreateOrderCommand(
			kernel.NewUUID(), merchantActor, kernel.NewUUID(), kernel.Dakhla,
			order.CashOnDelivery, testSelection(t), nil)

		assert.ErrorIs(t, cmdErr, errs.ErrNotAuthorized)
	})

	t.Run("should reject delivery worker as creator", func(t *testing.T) {
		worker, actorErr := kernel.NewActor(kernel.NewUUID(), kernel.RoleDeliveryMan)
		require.NoError(t, actorErr)

		_, cmdErr := commands.NewCreateOrderCommand(
			kernel.NewUUID(), worker, merchantID, kernel.Dakhla,
			order.CashOnDelivery, testSelection(t), nil)

		assert.ErrorIs(t, cmdErr, errs.ErrNotAuthorized)
	})

	t.Run("should reject empty item list", func(t *testing.T) {
		_, cmdErr := commands.NewCreateOrderCommand(
			kernel.NewUUID(), merchantActor, merchantID, kernel.Dakhla, order.CashOnDelivery, nil, nil)

		assert.ErrorIs(t, cmdErr, commands.ErrNoItemsSelected)
	})

	t.Run("should accept a valid discount rule", func(t *testing.T) {
		rule, ruleErr := discount.NewPercentage(decimal.NewFromInt(10))
		require.NoError(t, ruleErr)

		cmd, cmdErr := commands.NewCreateOrderCommand(
			kernel.NewUUID(), merchantActor, merchantID, kernel.Dakhla,
			order.CashOnDelivery, testSelection(t), &rule)

		require.NoError(t, cmdErr)
		require.NotNil(t, cmd.DiscountRule())
		assert.Equal(t, discount.Percentage, cmd.DiscountRule().Kind())
	})

	t.Run("should reject unconstructed discount rule", func(t *testing.T) {
		var rule discount.Rule

		_, cmdErr := commands.NewCreateOrderCommand(
			kernel.NewUUID(), merchantActor, merchantID, kernel.Dakhla,
			order.CashOnDelivery, testSelection(t), &rule)

		require.Error(t, cmdErr)
	})
}

func TestCreateOrderCommand_Validate(t *testing.T) {
	t.Run("should fail on zero value", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
