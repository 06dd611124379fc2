package commands_test

import (
	"testing"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReportDelayCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleDeliveryMan)
	require.NoError(t, err)

	cmd, err := commands.NewReportDelayCommand(orderID, actor, "customer asked for tomorrow")

	require.NoError(t, err)
	assert.True(t, cmd.OrderID().IsEqual(orderID))
	assert.Equal(t, "customer asked for tomorrow", cmd.Reason())
	require.NoError(t, cmd.Validate())
}

func TestNewReportDelayCommand_EmptyReason(t *testing.T) {
	_, err := commands.NewReportDelayCommand(kernel.NewUUID(), adminActor(t), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestReportDelayCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.ReportDelayCommand

	assert.ErrorIs(t, cmd.Validate(), commands.ErrReportDelayCommandIsNotConstructed)
}
