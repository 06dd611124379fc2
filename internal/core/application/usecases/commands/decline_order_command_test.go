package commands_test

import (
	"testing"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeclineOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()

	cmd, err := commands.NewDeclineOrderCommand(orderID, adminActor(t), order.Rejected, "customer unreachable")

	require.NoError(t, err)
	assert.True(t, cmd.OrderID().IsEqual(orderID))
	assert.Equal(t, order.Rejected, cmd.Target())
	assert.Equal(t, "customer unreachable", cmd.Reason())
	require.NoError(t, cmd.Validate())
}

func TestNewDeclineOrderCommand_CancelledTarget(t *testing.T) {
	cmd, err := commands.NewDeclineOrderCommand(kernel.NewUUID(), adminActor(t), order.Cancelled, "")

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, cmd.Target())
}

func TestNewDeclineOrderCommand_NonTerminalTarget(t *testing.T) {
	_, err := commands.NewDeclineOrderCommand(kernel.NewUUID(), adminActor(t), order.Accepted, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestDeclineOrderCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.DeclineOrderCommand

	assert.ErrorIs(t, cmd.Validate(), commands.ErrDeclineOrderCommandIsNotConstructed)
}
