package commands_test

import (
	"testing"
	"time"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestResolveDelayCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	workerID := kernel.NewUUID()
	reported := orderFixture(t, order.Reported, &workerID)
	newDate := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	cmd, err := commands.NewResolveDelayCommand(reported.ID(), adminActor(t), newDate)
	require.NoError(t, err)

	orderRepo := new(MockTransitionOrderRepository)
	attemptRepo := new(MockTransitionAttemptRepository)
	uow := new(MockTransitionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, reported.ID()).Return(reported, nil).Once(),
		orderRepo.On("Update", mock.Anything, reported).Return(nil).Once(),
		uow.On("AttemptRepository").Return(attemptRepo).Once(),
		attemptRepo.On("Append", mock.Anything, mock.AnythingOfType("*attempt.Attempt")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransitionUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("Notify", mock.Anything, mock.MatchedBy(func(n ports.Notification) bool {
		return n.Kind == ports.NotificationOrderRescheduled && n.Recipient.IsEqual(workerID)
	})).Once()

	h := commands.NewResolveDelayCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.AssignedToDelivery, reported.Status())
	require.NotNil(t, reported.DeliveryDate())
	assert.True(t, reported.DeliveryDate().Equal(newDate))
	notifier.AssertExpectations(t)
}

func TestResolveDelayCommandHandler_Handle_NoWorkerNoNotification(t *testing.T) {
	ctx := t.Context()
	reported := orderFixture(t, order.Reported, nil)
	cmd, err := commands.NewResolveDelayCommand(
		reported.ID(), adminActor(t), time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	orderRepo := new(MockTransitionOrderRepository)
	attemptRepo := new(MockTransitionAttemptRepository)
	uow := new(MockTransitionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, reported.ID()).Return(reported, nil).Once(),
		orderRepo.On("Update", mock.Anything, reported).Return(nil).Once(),
		uow.On("AttemptRepository").Return(attemptRepo).Once(),
		attemptRepo.On("Append", mock.Anything, mock.AnythingOfType("*attempt.Attempt")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransitionUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)

	h := commands.NewResolveDelayCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestResolveDelayCommandHandler_Handle_NonAdmin(t *testing.T) {
	ctx := t.Context()
	workerID := kernel.NewUUID()
	reported := orderFixture(t, order.Reported, &workerID)
	claimer, err := kernel.NewActor(workerID, kernel.RoleDeliveryMan)
	require.NoError(t, err)
	cmd, err := commands.NewResolveDelayCommand(
		reported.ID(), claimer, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	orderRepo := new(MockTransitionOrderRepository)
	uow := new(MockTransitionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, reported.ID()).Return(reported, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransitionUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)

	h := commands.NewResolveDelayCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNotAuthorized)
	assert.Equal(t, order.Reported, reported.Status())
}
