package commands_test

import (
	"errors"
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func defaultPolicy() services.AccessPolicy {
	return services.NewAccessPolicy(services.DefaultRoleNames())
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	waiter, waiterRole := newTestUserWithRole(t, "WAITER")
	menuItem, err := menu.NewMenuItem(kernel.NewUUID(), "Margherita", 10, 5)
	require.NoError(t, err)

	orderID := kernel.NewUUID()
	lines := []commands.OrderLine{{MenuItemID: menuItem.ID(), Quantity: 2}}
	cmd, err := commands.NewCreateOrderCommand(orderID, waiter.ID(), lines)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	menuRepo := new(MockMenuItemRepository)
	staffRepo := new(MockStaffRepository)
	uow := new(MockOrderingUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StaffRepository").Return(staffRepo).Once(),
		staffRepo.On("GetUser", ctx, waiter.ID()).Return(waiter, nil).Once(),
		staffRepo.On("GetRoleByName", ctx, "WAITER").Return(waiterRole, nil).Once(),
		uow.On("MenuItemRepository").Return(menuRepo).Once(),
		menuRepo.On("Get", ctx, menuItem.ID()).Return(menuItem, nil).Once(),
		menuRepo.On("DecrementStock", ctx, menuItem.ID(), 2).Return(true, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, defaultPolicy())
	placed, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, orderID, placed.ID())
	assert.Equal(t, order.Pending, placed.Status())
	assert.InDelta(t, 20.0, placed.Total(), 0.001)
	require.Len(t, placed.Items(), 1)
	assert.Equal(t, 2, placed.Items()[0].Quantity())
	assert.InDelta(t, 10.0, placed.Items()[0].UnitPrice(), 0.001)

	orderRepo.AssertExpectations(t)
	menuRepo.AssertExpectations(t)
	staffRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly

	factory := new(MockOrderingUoWFactory)
	handler := commands.NewCreateOrderCommandHandler(factory, defaultPolicy())
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_AccessDenied(t *testing.T) {
	ctx := t.Context()

	chef, _ := newTestUserWithRole(t, "CHEF")
	_, waiterRole := newTestUserWithRole(t, "WAITER")
	lines := []commands.OrderLine{{MenuItemID: kernel.NewUUID(), Quantity: 1}}
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), chef.ID(), lines)
	require.NoError(t, err)

	staffRepo := new(MockStaffRepository)
	uow := new(MockOrderingUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StaffRepository").Return(staffRepo).Once(),
		staffRepo.On("GetUser", ctx, chef.ID()).Return(chef, nil).Once(),
		staffRepo.On("GetRoleByName", ctx, "WAITER").Return(waiterRole, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, defaultPolicy())
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrAccessDenied)
	uow.AssertNotCalled(t, "Commit")
}

func TestCreateOrderCommandHandler_Handle_InsufficientStock(t *testing.T) {
	ctx := t.Context()

	waiter, waiterRole := newTestUserWithRole(t, "WAITER")
	menuItem, err := menu.NewMenuItem(kernel.NewUUID(), "Margherita", 10, 3)
	require.NoError(t, err)

	lines := []commands.OrderLine{{MenuItemID: menuItem.ID(), Quantity: 5}}
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), waiter.ID(), lines)
	require.NoError(t, err)

	menuRepo := new(MockMenuItemRepository)
	staffRepo := new(MockStaffRepository)
	uow := new(MockOrderingUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StaffRepository").Return(staffRepo).Once(),
		staffRepo.On("GetUser", ctx, waiter.ID()).Return(waiter, nil).Once(),
		staffRepo.On("GetRoleByName", ctx, "WAITER").Return(waiterRole, nil).Once(),
		uow.On("MenuItemRepository").Return(menuRepo).Once(),
		menuRepo.On("Get", ctx, menuItem.ID()).Return(menuItem, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, defaultPolicy())
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "Margherita")
	menuRepo.AssertNotCalled(t, "DecrementStock")
	uow.AssertNotCalled(t, "Commit")
}

func TestCreateOrderCommandHandler_Handle_DecrementRaceLost(t *testing.T) {
	ctx := t.Context()

	waiter, waiterRole := newTestUserWithRole(t, "WAITER")
	menuItem, err := menu.NewMenuItem(kernel.NewUUID(), "Margherita", 10, 5)
	require.NoError(t, err)
	// Stock visible after losing the conditional update race.
	drained, err := menu.NewMenuItem(menuItem.ID(), "Margherita", 10, 1)
	require.NoError(t, err)

	lines := []commands.OrderLine{{MenuItemID: menuItem.ID(), Quantity: 2}}
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), waiter.ID(), lines)
	require.NoError(t, err)

	menuRepo := new(MockMenuItemRepository)
	staffRepo := new(MockStaffRepository)
	uow := new(MockOrderingUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StaffRepository").Return(staffRepo).Once(),
		staffRepo.On("GetUser", ctx, waiter.ID()).Return(waiter, nil).Once(),
		staffRepo.On("GetRoleByName", ctx, "WAITER").Return(waiterRole, nil).Once(),
		uow.On("MenuItemRepository").Return(menuRepo).Once(),
		menuRepo.On("Get", ctx, menuItem.ID()).Return(menuItem, nil).Once(),
		menuRepo.On("DecrementStock", ctx, menuItem.ID(), 2).Return(false, nil).Once(),
		menuRepo.On("Get", ctx, menuItem.ID()).Return(drained, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, defaultPolicy())
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInsufficientStock)
	uow.AssertNotCalled(t, "Commit")
}

func TestCreateOrderCommandHandler_Handle_MenuItemNotFound(t *testing.T) {
	ctx := t.Context()

	waiter, waiterRole := newTestUserWithRole(t, "WAITER")
	menuItemID := kernel.NewUUID()
	lines := []commands.OrderLine{{MenuItemID: menuItemID, Quantity: 1}}
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), waiter.ID(), lines)
	require.NoError(t, err)

	menuRepo := new(MockMenuItemRepository)
	staffRepo := new(MockStaffRepository)
	uow := new(MockOrderingUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StaffRepository").Return(staffRepo).Once(),
		staffRepo.On("GetUser", ctx, waiter.ID()).Return(waiter, nil).Once(),
		staffRepo.On("GetRoleByName", ctx, "WAITER").Return(waiterRole, nil).Once(),
		uow.On("MenuItemRepository").Return(menuRepo).Once(),
		menuRepo.On("Get", ctx, menuItemID).
			Return(nil, errs.NewObjectNotFoundError("menuItemID", menuItemID)).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, defaultPolicy())
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()

	lines := []commands.OrderLine{{MenuItemID: kernel.NewUUID(), Quantity: 1}}
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), lines)
	require.NoError(t, err)

	uow := new(MockOrderingUoW)
	factory := new(MockOrderingUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	handler := commands.NewCreateOrderCommandHandler(factory, defaultPolicy())
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "begin error")
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()

	waiter, waiterRole := newTestUserWithRole(t, "WAITER")
	menuItem, err := menu.NewMenuItem(kernel.NewUUID(), "Margherita", 10, 5)
	require.NoError(t, err)

	lines := []commands.OrderLine{{MenuItemID: menuItem.ID(), Quantity: 1}}
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), waiter.ID(), lines)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	menuRepo := new(MockMenuItemRepository)
	staffRepo := new(MockStaffRepository)
	uow := new(MockOrderingUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StaffRepository").Return(staffRepo).Once(),
		staffRepo.On("GetUser", ctx, waiter.ID()).Return(waiter, nil).Once(),
		staffRepo.On("GetRoleByName", ctx, "WAITER").Return(waiterRole, nil).Once(),
		uow.On("MenuItemRepository").Return(menuRepo).Once(),
		menuRepo.On("Get", ctx, menuItem.ID()).Return(menuItem, nil).Once(),
		menuRepo.On("DecrementStock", ctx, menuItem.ID(), 1).Return(true, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, defaultPolicy())
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "commit error")
}
