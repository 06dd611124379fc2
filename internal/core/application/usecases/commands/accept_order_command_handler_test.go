package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/attempt"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTransitionOrderRepository struct{ mock.Mock }

func (m *MockTransitionOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockTransitionOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockTransitionOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockTransitionOrderRepository) NextCodeSequence(ctx context.Context, city kernel.City) (int, error) {
	args := m.Called(ctx, city)
	return args.Int(0), args.Error(1)
}

func (m *MockTransitionOrderRepository) ClaimForDelivery(ctx context.Context, orderID, deliveryManID kernel.UUID) error {
	args := m.Called(ctx, orderID, deliveryManID)
	return args.Error(0)
}

type MockTransitionAttemptRepository struct{ mock.Mock }

func (m *MockTransitionAttemptRepository) Append(ctx context.Context, a *attempt.Attempt) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockTransitionAttemptRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*attempt.Attempt, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*attempt.Attempt), args.Error(1)
}

type MockTransitionUoW struct{ mock.Mock }

func (m *MockTransitionUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTransitionUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTransitionUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTransitionUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockTransitionUoW) AttemptRepository() ports.AttemptRepository {
	args := m.Called()
	return args.Get(0).(ports.AttemptRepository)
}

type MockTransitionUoWFactory struct{ mock.Mock }

func (m *MockTransitionUoWFactory) Create() commands.TransitionUoW {
	args := m.Called()
	return args.Get(0).(commands.TransitionUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(ctx context.Context, notification ports.Notification) {
	m.Called(ctx, notification)
}

// orderFixture restores an order in the given status with a single line item.
func orderFixture(t *testing.T, status order.Status, deliveryManID *kernel.UUID) *order.Order {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), 2, decimal.NewFromInt(50), decimal.NewFromInt(50), false)
	require.NoError(t, err)

	o, err := order.RestoreOrder(
		kernel.NewUUID(),
		"OR-DA-000001",
		1,
		status,
		order.CashOnDelivery,
		kernel.Dakhla,
		kernel.NewUUID(),
		deliveryManID,
		[]order.Item{item},
		decimal.NewFromInt(100),
		decimal.Zero,
		decimal.NewFromInt(100),
		decimal.NewFromInt(75),
		time.Now().UTC().Add(-time.Hour),
		nil,
		nil,
		nil,
		"",
	)
	require.NoError(t, err)
	return o
}

func TestAcceptOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	pending := orderFixture(t, order.Pending, nil)
	cmd, err := commands.NewAcceptOrderCommand(pending.ID(), adminActor(t), "")
	require.NoError(t, err)

	orderRepo := new(MockTransitionOrderRepository)
	attemptRepo := new(MockTransitionAttemptRepository)
	uow := new(MockTransitionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, pending.ID()).Return(pending, nil).Once(),
		orderRepo.On("Update", mock.Anything, pending).Return(nil).Once(),
		uow.On("AttemptRepository").Return(attemptRepo).Once(),
		attemptRepo.On("Append", mock.Anything, mock.AnythingOfType("*attempt.Attempt")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransitionUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("Notify", mock.Anything, mock.MatchedBy(func(n ports.Notification) bool {
		return n.Kind == ports.NotificationOrderAccepted && n.Recipient.IsEqual(pending.MerchantID())
	})).Once()

	h := commands.NewAcceptOrderCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Accepted, pending.Status())
	orderRepo.AssertExpectations(t)
	attemptRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestAcceptOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockTransitionUoWFactory)
	notifier := new(MockNotifier)

	h := commands.NewAcceptOrderCommandHandler(factory, notifier)
	err := h.Handle(ctx, commands.AcceptOrderCommand{})

	require.Error(t, err)
}

func TestAcceptOrderCommandHandler_Handle_NotAuthorized(t *testing.T) {
	ctx := t.Context()
	pending := orderFixture(t, order.Pending, nil)
	merchantActor, err := kernel.NewActor(pending.MerchantID(), kernel.RoleMerchant)
	require.NoError(t, err)
	cmd, err := commands.NewAcceptOrderCommand(pending.ID(), merchantActor, "")
	require.NoError(t, err)

	orderRepo := new(MockTransitionOrderRepository)
	uow := new(MockTransitionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, pending.ID()).Return(pending, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransitionUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)

	h := commands.NewAcceptOrderCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNotAuthorized)
	assert.Equal(t, order.Pending, pending.Status())
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestAcceptOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	pending := orderFixture(t, order.Pending, nil)
	cmd, err := commands.NewAcceptOrderCommand(pending.ID(), adminActor(t), "")
	require.NoError(t, err)

	orderRepo := new(MockTransitionOrderRepository)
	attemptRepo := new(MockTransitionAttemptRepository)
	uow := new(MockTransitionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, pending.ID()).Return(pending, nil).Once(),
		orderRepo.On("Update", mock.Anything, pending).Return(nil).Once(),
		uow.On("AttemptRepository").Return(attemptRepo).Once(),
		attemptRepo.On("Append", mock.Anything, mock.AnythingOfType("*attempt.Attempt")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransitionUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)

	h := commands.NewAcceptOrderCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}
