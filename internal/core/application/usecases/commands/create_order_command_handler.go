package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for placing orders.
// Only waiters may place orders. Stock is reserved for every line or for
// none: the handler first dry-runs the reservation against current stock,
// then applies conditional decrements, and the surrounding transaction rolls
// everything back if any line cannot be covered.
type CreateOrderCommandHandler struct {
	uowFactory OrderingUoWFactory
	policy     services.AccessPolicy
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires an OrderingUoWFactory for transactional persistence and the
// access policy for role checks.
func NewCreateOrderCommandHandler(uowFactory OrderingUoWFactory, policy services.AccessPolicy) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the order placement command and returns the created order.
//
// Steps, all inside one transaction:
//  1. Authorize the acting user as a waiter
//  2. Dry-run the stock reservation for every requested line
//  3. Apply conditional stock decrements (a concurrent order that drained
//     stock between the dry-run and the decrement fails the whole command)
//  4. Build the line items with current menu prices and persist the order
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := authorize(ctx, h.policy, uow.StaffRepository(), services.ActionCreateOrder, cmd.WaiterID()); err != nil {
		return nil, err
	}

	menuRepo := uow.MenuItemRepository()

	items := make([]order.OrderItem, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		menuItem, err := menuRepo.Get(ctx, line.MenuItemID)
		if err != nil {
			return nil, err
		}
		if err = menuItem.CanReserve(line.Quantity); err != nil {
			return nil, err
		}

		item, err := order.NewOrderItem(kernel.NewUUID(), menuItem.ID(), line.Quantity, menuItem.Price())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	for _, line := range cmd.Lines() {
		ok, err := menuRepo.DecrementStock(ctx, line.MenuItemID, line.Quantity)
		if err != nil {
			return nil, err
		}
		if !ok {
			// Lost the race for the stock. Re-read for an accurate error.
			menuItem, err := menuRepo.Get(ctx, line.MenuItemID)
			if err != nil {
				return nil, err
			}
			return nil, errs.NewInsufficientStockError(menuItem.Name(), menuItem.StockQuantity(), line.Quantity)
		}
	}

	placed, err := order.NewOrder(cmd.OrderID(), cmd.WaiterID(), time.Now().UTC(), items)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}
