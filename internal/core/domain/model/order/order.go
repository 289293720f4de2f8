package order

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a table order in the system. It is the aggregate root that
// manages the order lifecycle from creation through cooking and serving.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a valid waiter reference
//   - Must contain at least one order item
//   - Total always equals the sum of item subtotals
//   - Status transitions follow the lifecycle state machine
//   - Can only be created through NewOrder / RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// waiterID references the waiter who placed the order
	waiterID kernel.UUID

	// createdAt is the instant the order was placed
	createdAt time.Time

	// status represents the current state in the order lifecycle
	status Status

	// total is the sum of item subtotals at time of last save
	total float64

	// items is the ordered sequence of line items owned by the order
	items []OrderItem

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in Pending status with validation. This is the
// only way to create a valid new Order, ensuring all business invariants are
// maintained: the item list must be non-empty and every item must itself be
// valid. The total is computed from the item subtotals.
func NewOrder(id, waiterID kernel.UUID, createdAt time.Time, items []OrderItem) (*Order, error) {
	order := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setWaiterID(waiterID),
		order.setCreatedAt(createdAt),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence with an explicit status
// and stored total. It is used by repositories when mapping database rows back
// to the domain and applies the same field validation as NewOrder.
func RestoreOrder(id, waiterID kernel.UUID, createdAt time.Time, status Status, total float64, items []OrderItem) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setWaiterID(waiterID),
		order.setCreatedAt(createdAt),
		order.setItems(items),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	order.status = status
	order.total = total
	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly instantiating
// the struct and should be called when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// WaiterID returns the identifier of the waiter who placed the order.
func (o *Order) WaiterID() kernel.UUID {
	return o.waiterID
}

// CreatedAt returns the instant the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Total returns the sum of item subtotals at time of last save.
func (o *Order) Total() float64 {
	return o.total
}

// Items returns a copy of the order's line items in insertion order.
func (o *Order) Items() []OrderItem {
	items := make([]OrderItem, len(o.items))
	copy(items, o.items)
	return items
}

// StartCooking moves the order from Pending to Preparing.
//
// Returns an error if the order is not in Pending status; the status is left
// unchanged in that case.
func (o *Order) StartCooking() error {
	newStatus, err := o.status.StartCooking()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkReady moves the order from Preparing to Ready.
//
// The caller is responsible for verifying that a confirmed payment exists
// before invoking this transition.
func (o *Order) MarkReady() error {
	newStatus, err := o.status.MarkReady()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkServed moves the order from Ready to Served.
func (o *Order) MarkServed() error {
	newStatus, err := o.status.MarkServed()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AcceptsPayment reports whether the order can be paid for. Cancelled orders
// reject payment with a state conflict.
func (o *Order) AcceptsPayment() error {
	if o.status == Cancelled {
		return errs.NewStateConflictError("order", "cannot process payment for a cancelled order")
	}
	return nil
}

// ConfirmPayment advances a Pending order to Preparing once its payment is
// settled. Orders already past Pending keep their current status; the payment
// confirmation never moves an order backwards.
func (o *Order) ConfirmPayment() {
	if o.status == Pending {
		o.status = Preparing
	}
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setWaiterID validates and sets the waiter reference.
// This is a private method used only during construction.
func (o *Order) setWaiterID(waiterID kernel.UUID) error {
	if err := waiterID.Validate(); err != nil {
		return err
	}
	o.waiterID = waiterID
	return nil
}

// setCreatedAt validates and sets the creation timestamp.
// This is a private method used only during construction.
func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}

// setItems validates and sets the line items, recomputing the total.
// The order must contain at least one item.
// This is a private method used only during construction.
func (o *Order) setItems(items []OrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	total := 0.0
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		total += item.Subtotal()
	}

	o.items = make([]OrderItem, len(items))
	copy(o.items, items)
	o.total = total
	return nil
}
