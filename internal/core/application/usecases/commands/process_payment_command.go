package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrProcessPaymentCommandIsNotConstructed = errors.New(
	"ProcessPaymentCommand must be created via NewProcessPaymentCommand constructor",
)

// ProcessPaymentCommand represents a cashier's request to settle the payment
// for an order. The amount is not part of the request; the payment always
// settles the order's current total.
type ProcessPaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID
	orderID   kernel.UUID
	cashierID kernel.UUID
	method    string

	guard guard.ConstructorGuard
}

// NewProcessPaymentCommand creates a command to settle an order's payment.
// Validates that all identifiers are valid and the payment method is not
// empty.
func NewProcessPaymentCommand(paymentID, orderID, cashierID kernel.UUID, method string) (ProcessPaymentCommand, error) {
	cmd := ProcessPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPaymentID(paymentID),
		cmd.setOrderID(orderID),
		cmd.setCashierID(cashierID),
		cmd.setMethod(method),
	); err != nil {
		return ProcessPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessPaymentCommand) Validate() error {
	return c.guard.Validate(ErrProcessPaymentCommandIsNotConstructed)
}

// PaymentID returns the identifier to use for a newly created payment.
func (c ProcessPaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// OrderID returns the identifier of the order being settled.
func (c ProcessPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CashierID returns the identifier of the acting cashier.
func (c ProcessPaymentCommand) CashierID() kernel.UUID {
	return c.cashierID
}

// Method returns the payment method, e.g. "cash".
func (c ProcessPaymentCommand) Method() string {
	return c.method
}

func (c *ProcessPaymentCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}

	c.paymentID = paymentID
	return nil
}

func (c *ProcessPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ProcessPaymentCommand) setCashierID(cashierID kernel.UUID) error {
	if err := cashierID.Validate(); err != nil {
		return err
	}

	c.cashierID = cashierID
	return nil
}

func (c *ProcessPaymentCommand) setMethod(method string) error {
	if method == "" {
		return errs.NewValueIsRequiredError("paymentMethod")
	}

	c.method = method
	return nil
}
