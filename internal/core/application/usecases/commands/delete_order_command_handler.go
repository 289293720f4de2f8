package commands

import (
	"context"

	"restaurant/internal/core/domain/model/order"
)

// DeleteOrderCommandHandler removes an order and everything attached to it.
// Deletion is compensating: the stock every line item reserved is added back
// to the menu before the rows disappear, and the order's payment record is
// removed with it. The whole teardown runs in one transaction.
type DeleteOrderCommandHandler struct {
	uowFactory CleanupUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory CleanupUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the order identified by the command.
// Returns ObjectNotFoundError if the order does not exist.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = tearDownOrder(ctx, uow, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// tearDownOrder releases the order's stock reservations, removes its payment
// and deletes the order itself. Shared by single and bulk deletion.
func tearDownOrder(ctx context.Context, uow CleanupUoW, aggregate *order.Order) error {
	menuRepo := uow.MenuItemRepository()
	for _, item := range aggregate.Items() {
		if err := menuRepo.IncrementStock(ctx, item.MenuItemID(), item.Quantity()); err != nil {
			return err
		}
	}

	if err := uow.PaymentRepository().DeleteByOrder(ctx, aggregate.ID()); err != nil {
		return err
	}

	return uow.OrderRepository().Delete(ctx, aggregate.ID())
}
