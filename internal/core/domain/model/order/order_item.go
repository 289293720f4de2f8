package order

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// ErrOrderItemIsNotConstructed is returned when an OrderItem instance was not
// created through the NewOrderItem factory method.
var ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem constructor")

// OrderItem is a line item owned exclusively by an Order. It links the order
// to a menu item with a quantity and a price snapshot taken at order time.
//
// OrderItem follows these invariants:
//   - Quantity must be positive (greater than 0)
//   - Unit price is captured at creation and immutable afterwards
//   - Subtotal always equals quantity × unit price
//
// Order items live and die with their order: deleting the order deletes its
// items and reverses their stock deductions.
type OrderItem struct {
	// id is the unique identifier for the line item
	id kernel.UUID

	// menuItemID references the menu item the line was priced from
	menuItemID kernel.UUID

	// quantity is the number of units ordered (must be positive)
	quantity int

	// unitPrice is the menu item price snapshot taken at order time
	unitPrice float64

	// subtotal is quantity × unitPrice, fixed at creation
	subtotal float64

	guard kernel.ConstructorGuard
}

// NewOrderItem creates a new OrderItem with validation. The unit price is the
// snapshot of the menu item's price at order time; the subtotal is derived
// from it and never recomputed from the live menu.
func NewOrderItem(id, menuItemID kernel.UUID, quantity int, unitPrice float64) (OrderItem, error) {
	if err := id.Validate(); err != nil {
		return OrderItem{}, err
	}
	if err := menuItemID.Validate(); err != nil {
		return OrderItem{}, err
	}
	if quantity <= 0 {
		return OrderItem{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0 for menu item id: %s", quantity, menuItemID),
		)
	}
	if unitPrice < 0 {
		return OrderItem{}, errs.NewValueIsInvalidErrorWithCause(
			"unitPrice",
			fmt.Errorf("%f is negative", unitPrice),
		)
	}

	return OrderItem{
		id:         id,
		menuItemID: menuItemID,
		quantity:   quantity,
		unitPrice:  unitPrice,
		subtotal:   float64(quantity) * unitPrice,
		guard:      kernel.NewConstructorGuard(),
	}, nil
}

// RestoreOrderItem reconstructs an OrderItem from persistence. The stored
// subtotal is trusted as written; consistency with quantity × unitPrice is an
// invariant of the write path.
func RestoreOrderItem(id, menuItemID kernel.UUID, quantity int, unitPrice, subtotal float64) (OrderItem, error) {
	item, err := NewOrderItem(id, menuItemID, quantity, unitPrice)
	if err != nil {
		return OrderItem{}, err
	}
	item.subtotal = subtotal
	return item, nil
}

// Validate ensures the OrderItem was properly constructed through NewOrderItem.
func (i OrderItem) Validate() error {
	return i.guard.Validate(ErrOrderItemIsNotConstructed)
}

// ID returns the line item's unique identifier.
func (i OrderItem) ID() kernel.UUID {
	return i.id
}

// MenuItemID returns the referenced menu item's identifier.
func (i OrderItem) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Quantity returns the number of units ordered.
func (i OrderItem) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price snapshot taken at order time.
func (i OrderItem) UnitPrice() float64 {
	return i.unitPrice
}

// Subtotal returns quantity × unit price.
func (i OrderItem) Subtotal() float64 {
	return i.subtotal
}
