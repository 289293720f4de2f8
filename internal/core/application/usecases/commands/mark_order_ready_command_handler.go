package commands

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"
)

// MarkOrderReadyCommandHandler moves an order into the Ready status.
// Besides the Preparing status requirement, a settled payment must exist for
// the order. The payment gate runs before the status transition so that an
// unpaid Preparing order reports the missing payment, not a status conflict.
type MarkOrderReadyCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	policy     services.AccessPolicy
}

// NewMarkOrderReadyCommandHandler creates a handler for the mark-ready
// transition.
func NewMarkOrderReadyCommandHandler(uowFactory FulfillmentUoWFactory, policy services.AccessPolicy) MarkOrderReadyCommandHandler {
	return MarkOrderReadyCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle authorizes the acting user as a chef, verifies that the order is
// paid, applies the Preparing to Ready transition, and persists the order.
func (h *MarkOrderReadyCommandHandler) Handle(ctx context.Context, cmd MarkOrderReadyCommand) (*order.Order, error) {
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

	if err := authorize(ctx, h.policy, uow.StaffRepository(), services.ActionMarkOrderReady, cmd.UserID()); err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	pay, err := uow.PaymentRepository().GetByOrder(ctx, cmd.OrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewStateConflictError("order", "must be paid before marking as ready")
		}
		return nil, err
	}
	if !pay.IsPaid() {
		return nil, errs.NewStateConflictError("payment", "payment is not confirmed")
	}

	if err = aggregate.MarkReady(); err != nil {
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
