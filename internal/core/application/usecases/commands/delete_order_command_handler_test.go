package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testOrder := newTestOrder(t, order.Served)
	item := testOrder.Items()[0]

	cmd, err := commands.NewDeleteOrderCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	menuRepo := new(MockMenuItemRepository)
	paymentRepo := new(MockPaymentRepository)
	uow := new(MockCleanupUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("MenuItemRepository").Return(menuRepo).Once(),
		menuRepo.On("IncrementStock", ctx, item.MenuItemID(), item.Quantity()).Return(nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		paymentRepo.On("DeleteByOrder", ctx, testOrder.ID()).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Delete", ctx, testOrder.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCleanupUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	menuRepo.AssertExpectations(t)
	paymentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	cmd, err := commands.NewDeleteOrderCommand(orderID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockCleanupUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).
			Return(nil, errs.NewObjectNotFoundError("orderID", orderID)).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCleanupUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit")
}

func TestDeleteAllOrdersCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	first := newTestOrder(t, order.Pending)
	second := newTestOrder(t, order.Served)
	orders := []*order.Order{first, second}

	cmd := commands.NewDeleteAllOrdersCommand()

	orderRepo := new(MockOrderRepository)
	menuRepo := new(MockMenuItemRepository)
	paymentRepo := new(MockPaymentRepository)
	uow := new(MockCleanupUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("MenuItemRepository").Return(menuRepo)
	uow.On("PaymentRepository").Return(paymentRepo)
	orderRepo.On("GetAll", ctx).Return(orders, nil).Once()
	for _, o := range orders {
		item := o.Items()[0]
		menuRepo.On("IncrementStock", ctx, item.MenuItemID(), item.Quantity()).Return(nil).Once()
		paymentRepo.On("DeleteByOrder", ctx, o.ID()).Return(nil).Once()
		orderRepo.On("Delete", ctx, o.ID()).Return(nil).Once()
	}
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCleanupUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteAllOrdersCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	menuRepo.AssertExpectations(t)
	paymentRepo.AssertExpectations(t)
}

func TestDeleteAllOrdersCommandHandler_Handle_Empty(t *testing.T) {
	ctx := t.Context()

	cmd := commands.NewDeleteAllOrdersCommand()

	orderRepo := new(MockOrderRepository)
	uow := new(MockCleanupUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAll", ctx).Return([]*order.Order{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCleanupUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteAllOrdersCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
