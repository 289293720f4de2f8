package commands

import (
	"context"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
)

// MarkOrderServedCommandHandler moves an order into its final Served status.
// The transition is only valid from Ready.
type MarkOrderServedCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	policy     services.AccessPolicy
}

// NewMarkOrderServedCommandHandler creates a handler for the mark-served
// transition.
func NewMarkOrderServedCommandHandler(uowFactory FulfillmentUoWFactory, policy services.AccessPolicy) MarkOrderServedCommandHandler {
	return MarkOrderServedCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle authorizes the acting user as a waiter, applies the Ready to Served
// transition, and persists the order.
func (h *MarkOrderServedCommandHandler) Handle(ctx context.Context, cmd MarkOrderServedCommand) (*order.Order, error) {
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

	if err := authorize(ctx, h.policy, uow.StaffRepository(), services.ActionMarkOrderServed, cmd.UserID()); err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.MarkServed(); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
