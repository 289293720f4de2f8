package commands

import (
	"context"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
)

// StartCookingCommandHandler moves an order into the Preparing status.
// The transition is only valid from Pending; any other starting status is a
// state conflict.
type StartCookingCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	policy     services.AccessPolicy
}

// NewStartCookingCommandHandler creates a handler for the start-cooking
// transition.
func NewStartCookingCommandHandler(uowFactory FulfillmentUoWFactory, policy services.AccessPolicy) StartCookingCommandHandler {
	return StartCookingCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle authorizes the acting user, applies the Pending to Preparing
// transition, and persists the order. Returns the updated order.
func (h *StartCookingCommandHandler) Handle(ctx context.Context, cmd StartCookingCommand) (*order.Order, error) {
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

	if err := authorize(ctx, h.policy, uow.StaffRepository(), services.ActionStartCooking, cmd.UserID()); err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.StartCooking(); err != nil {
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
