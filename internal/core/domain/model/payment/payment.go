package payment

import (
	"errors"
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// ErrPaymentIsNotConstructed is returned when a Payment instance was not
// created through a factory method.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

// Payment records the settlement of one order's total. At most one payment
// exists per order: repositories upsert by order reference, and settling an
// existing Pending row updates it in place rather than creating a duplicate.
//
// A payment snapshots the order total at settlement time; later changes to
// the order do not retroactively alter the amount.
type Payment struct {
	// id is the unique identifier for the payment
	id kernel.UUID

	// orderID references the order being settled (one payment per order)
	orderID kernel.UUID

	// cashierID references the cashier who confirmed the payment (nil until settled)
	cashierID *kernel.UUID

	// amount is the snapshot of the order total at settlement time
	amount float64

	// method is the free-form payment method, e.g. "cash" (non-empty once settled)
	method string

	// status is Pending until a cashier settles the payment
	status Status

	// createdAt is the instant the payment record was created
	createdAt time.Time

	// processedAt is the instant the payment was settled (nil until then)
	processedAt *time.Time

	guard kernel.ConstructorGuard
}

// NewPayment creates a Pending payment record for an order. Settlement data
// (cashier, amount, method) is attached via Settle.
func NewPayment(id, orderID kernel.UUID, createdAt time.Time) (*Payment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	return &Payment{
		id:        id,
		orderID:   orderID,
		status:    Pending,
		createdAt: createdAt,
		guard:     kernel.NewConstructorGuard(),
	}, nil
}

// RestorePayment reconstructs a Payment from persistence.
func RestorePayment(
	id, orderID kernel.UUID,
	cashierID *kernel.UUID,
	amount float64,
	method string,
	status Status,
	createdAt time.Time,
	processedAt *time.Time,
) (*Payment, error) {
	p, err := NewPayment(id, orderID, createdAt)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	p.cashierID = cashierID
	p.amount = amount
	p.method = method
	p.status = status
	p.processedAt = processedAt
	return p, nil
}

// Validate ensures the Payment was properly constructed through a factory method.
func (p *Payment) Validate() error {
	if p == nil {
		return ErrPaymentIsNotConstructed
	}
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// OrderID returns the identifier of the order being settled.
func (p *Payment) OrderID() kernel.UUID {
	return p.orderID
}

// CashierID returns the identifier of the cashier who settled the payment.
// Returns nil for payments that are still pending.
func (p *Payment) CashierID() *kernel.UUID {
	return p.cashierID
}

// Amount returns the settled amount (the order total snapshot).
func (p *Payment) Amount() float64 {
	return p.amount
}

// Method returns the payment method.
func (p *Payment) Method() string {
	return p.method
}

// Status returns the settlement status.
func (p *Payment) Status() Status {
	return p.status
}

// CreatedAt returns the instant the payment record was created.
func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}

// ProcessedAt returns the settlement instant, or nil while pending.
func (p *Payment) ProcessedAt() *time.Time {
	return p.processedAt
}

// IsPaid reports whether the payment has been settled.
func (p *Payment) IsPaid() bool {
	return p.status == Paid
}

// Settle confirms the payment: it snapshots the order total, records the
// cashier and method, and moves the status to Paid.
//
// Business rules:
//   - A payment that is already Paid cannot be settled again
//   - The payment method must be non-empty
//   - The amount must not be negative
func (p *Payment) Settle(cashierID kernel.UUID, amount float64, method string, processedAt time.Time) error {
	if p.status == Paid {
		return errs.NewStateConflictError("payment", "order is already paid")
	}
	if err := cashierID.Validate(); err != nil {
		return err
	}
	if method == "" {
		return errs.NewValueIsRequiredError("paymentMethod")
	}
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%f is negative", amount))
	}
	if processedAt.IsZero() {
		return errs.NewValueIsRequiredError("processedAt")
	}

	p.cashierID = &cashierID
	p.amount = amount
	p.method = method
	p.status = Paid
	p.processedAt = &processedAt
	return nil
}
