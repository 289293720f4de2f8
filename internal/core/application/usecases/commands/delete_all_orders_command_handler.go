package commands

import (
	"context"
)

// DeleteAllOrdersCommandHandler removes every order in one transaction,
// running the same compensating teardown as single deletion for each order.
// Either all orders disappear and all stock is restored, or nothing changes.
type DeleteAllOrdersCommandHandler struct {
	uowFactory CleanupUoWFactory
}

// NewDeleteAllOrdersCommandHandler creates a handler for bulk order deletion.
func NewDeleteAllOrdersCommandHandler(uowFactory CleanupUoWFactory) DeleteAllOrdersCommandHandler {
	return DeleteAllOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes all orders. Completes without error when there are none.
func (h *DeleteAllOrdersCommandHandler) Handle(ctx context.Context, cmd DeleteAllOrdersCommand) error {
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

	orders, err := uow.OrderRepository().GetAll(ctx)
	if err != nil {
		return err
	}

	for _, aggregate := range orders {
		if err = tearDownOrder(ctx, uow, aggregate); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
