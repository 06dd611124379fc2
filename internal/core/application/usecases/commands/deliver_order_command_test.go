package commands_test

import (
	"testing"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeliverOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleDeliveryMan)
	require.NoError(t, err)

	cmd, err := commands.NewDeliverOrderCommand(orderID, actor, "left at reception", "Hay El Qods")

	require.NoError(t, err)
	assert.True(t, cmd.OrderID().IsEqual(orderID))
	assert.Equal(t, "left at reception", cmd.Notes())
	assert.Equal(t, "Hay El Qods", cmd.Location())
	require.NoError(t, cmd.Validate())
}

func TestNewDeliverOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewDeliverOrderCommand(kernel.UUID{}, adminActor(t), "", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestDeliverOrderCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.DeliverOrderCommand

	assert.ErrorIs(t, cmd.Validate(), commands.ErrDeliverOrderCommandIsNotConstructed)
}
