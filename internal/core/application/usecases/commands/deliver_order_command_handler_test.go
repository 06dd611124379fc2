package commands_test

import (
	"context"
	"testing"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/merchant"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/product"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDeliverProductRepository struct{ mock.Mock }

func (m *MockDeliverProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockDeliverProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockDeliverProductRepository) DeductStock(ctx context.Context, productID kernel.UUID, quantity int) error {
	args := m.Called(ctx, productID, quantity)
	return args.Error(0)
}

type MockDeliverMerchantRepository struct{ mock.Mock }

func (m *MockDeliverMerchantRepository) Add(ctx context.Context, mc *merchant.Merchant) error {
	args := m.Called(ctx, mc)
	return args.Error(0)
}

func (m *MockDeliverMerchantRepository) Get(ctx context.Context, id kernel.UUID) (*merchant.Merchant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*merchant.Merchant), args.Error(1)
}

func (m *MockDeliverMerchantRepository) ApplySettlement(
	ctx context.Context, id kernel.UUID, balanceDelta, earnedDelta decimal.Decimal,
) error {
	args := m.Called(ctx, id, balanceDelta, earnedDelta)
	return args.Error(0)
}

type MockDeliverUoW struct{ mock.Mock }

func (m *MockDeliverUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliverUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliverUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliverUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockDeliverUoW) AttemptRepository() ports.AttemptRepository {
	args := m.Called()
	return args.Get(0).(ports.AttemptRepository)
}

func (m *MockDeliverUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockDeliverUoW) MerchantRepository() ports.MerchantRepository {
	args := m.Called()
	return args.Get(0).(ports.MerchantRepository)
}

func (m *MockDeliverUoW) DeliveryManRepository() ports.DeliveryManRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryManRepository)
}

type MockDeliverUoWFactory struct{ mock.Mock }

func (m *MockDeliverUoWFactory) Create() commands.DeliverUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliverUoW)
}

func TestDeliverOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	worker := workerFixture(t, kernel.Dakhla)
	workerID := worker.ID()
	assigned := orderFixture(t, order.AssignedToDelivery, &workerID)
	productID := assigned.Items()[0].ProductID()
	claimer, err := kernel.NewActor(workerID, kernel.RoleDeliveryMan)
	require.NoError(t, err)
	cmd, err := commands.NewDeliverOrderCommand(assigned.ID(), claimer, "", "")
	require.NoError(t, err)

	orderRepo := new(MockTransitionOrderRepository)
	attemptRepo := new(MockTransitionAttemptRepository)
	productRepo := new(MockDeliverProductRepository)
	merchantRepo := new(MockDeliverMerchantRepository)
	workerRepo := new(MockAssignDeliveryManRepository)
	uow := new(MockDeliverUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, assigned.ID()).Return(assigned, nil).Once(),
		uow.On("DeliveryManRepository").Return(workerRepo).Once(),
		workerRepo.On("Get", mock.Anything, workerID).Return(worker, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("DeductStock", mock.Anything, productID, 2).Return(nil).Once(),
		uow.On("MerchantRepository").Return(merchantRepo).Once(),
		merchantRepo.On("ApplySettlement", mock.Anything, assigned.MerchantID(),
			decimal.NewFromInt(75), decimal.NewFromInt(100)).Return(nil).Once(),
		uow.On("DeliveryManRepository").Return(workerRepo).Once(),
		workerRepo.On("RecordSuccessfulDelivery", mock.Anything, workerID,
			decimal.NewFromInt(15)).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, assigned).Return(nil).Once(),
		uow.On("AttemptRepository").Return(attemptRepo).Once(),
		attemptRepo.On("Append", mock.Anything, mock.AnythingOfType("*attempt.Attempt")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliverUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("Notify", mock.Anything, mock.MatchedBy(func(n ports.Notification) bool {
		return n.Kind == ports.NotificationOrderDelivered && n.Recipient.IsEqual(assigned.MerchantID())
	})).Once()

	h := commands.NewDeliverOrderCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Delivered, assigned.Status())
	require.NotNil(t, assigned.DeliveredAt())
	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	merchantRepo.AssertExpectations(t)
	workerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestDeliverOrderCommandHandler_Handle_InsufficientStock(t *testing.T) {
	ctx := t.Context()
	worker := workerFixture(t, kernel.Dakhla)
	workerID := worker.ID()
	assigned := orderFixture(t, order.AssignedToDelivery, &workerID)
	productID := assigned.Items()[0].ProductID()
	cmd, err := commands.NewDeliverOrderCommand(assigned.ID(), adminActor(t), "", "")
	require.NoError(t, err)

	orderRepo := new(MockTransitionOrderRepository)
	productRepo := new(MockDeliverProductRepository)
	workerRepo := new(MockAssignDeliveryManRepository)
	uow := new(MockDeliverUoW)
	conflict := errs.NewConflictError("product stock", "insufficient stock")
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, assigned.ID()).Return(assigned, nil).Once(),
		uow.On("DeliveryManRepository").Return(workerRepo).Once(),
		workerRepo.On("Get", mock.Anything, workerID).Return(worker, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("DeductStock", mock.Anything, productID, 2).Return(conflict).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliverUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)

	h := commands.NewDeliverOrderCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestDeliverOrderCommandHandler_Handle_UnassignedActor(t *testing.T) {
	ctx := t.Context()
	worker := workerFixture(t, kernel.Dakhla)
	workerID := worker.ID()
	assigned := orderFixture(t, order.AssignedToDelivery, &workerID)
	stranger, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleDeliveryMan)
	require.NoError(t, err)
	cmd, err := commands.NewDeliverOrderCommand(assigned.ID(), stranger, "", "")
	require.NoError(t, err)

	orderRepo := new(MockTransitionOrderRepository)
	workerRepo := new(MockAssignDeliveryManRepository)
	uow := new(MockDeliverUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, assigned.ID()).Return(assigned, nil).Once(),
		uow.On("DeliveryManRepository").Return(workerRepo).Once(),
		workerRepo.On("Get", mock.Anything, workerID).Return(worker, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliverUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)

	h := commands.NewDeliverOrderCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNotAuthorized)
	assert.Equal(t, order.AssignedToDelivery, assigned.Status())
}
