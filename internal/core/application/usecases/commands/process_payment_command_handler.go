package commands

import (
	"context"
	"errors"
	"time"

	"restaurant/internal/core/domain/model/payment"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"
)

// ProcessPaymentCommandHandler settles the payment for an order.
// The store keeps at most one payment per order: when a pending payment
// record already exists it is settled in place, otherwise a new record is
// created and settled in the same transaction. Settling an already paid
// order is a state conflict.
//
// Settlement also confirms the payment on the order side: a Pending order
// advances to Preparing, orders further along keep their status.
type ProcessPaymentCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	policy     services.AccessPolicy
}

// NewProcessPaymentCommandHandler creates a handler for payment settlement.
func NewProcessPaymentCommandHandler(uowFactory FulfillmentUoWFactory, policy services.AccessPolicy) ProcessPaymentCommandHandler {
	return ProcessPaymentCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle authorizes the acting user as a cashier, settles the order's
// payment with the order total as the amount, and returns the payment.
func (h *ProcessPaymentCommandHandler) Handle(ctx context.Context, cmd ProcessPaymentCommand) (*payment.Payment, error) {
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

	if err := authorize(ctx, h.policy, uow.StaffRepository(), services.ActionProcessPayment, cmd.CashierID()); err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if err = aggregate.AcceptsPayment(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	paymentRepo := uow.PaymentRepository()

	pay, err := paymentRepo.GetByOrder(ctx, cmd.OrderID())
	isNew := false
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return nil, err
		}
		if pay, err = payment.NewPayment(cmd.PaymentID(), cmd.OrderID(), now); err != nil {
			return nil, err
		}
		isNew = true
	}

	if err = pay.Settle(cmd.CashierID(), aggregate.Total(), cmd.Method(), now); err != nil {
		return nil, err
	}

	if isNew {
		err = paymentRepo.Add(ctx, pay)
	} else {
		err = paymentRepo.Update(ctx, pay)
	}
	if err != nil {
		return nil, err
	}

	aggregate.ConfirmPayment()
	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return pay, nil
}
