package menu

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// ErrMenuItemIsNotConstructed is returned when a MenuItem instance was not
// created through a factory method.
var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")

// MaxPrice bounds a menu item's unit price. Prices are per-portion amounts;
// anything above this is a data-entry mistake.
const MaxPrice = 100_000.0

// MenuItem is a sellable item with a price and an available stock count.
// It is referenced by order line items but not owned by them: the stock
// counter is decremented when an order reserves items and incremented back
// when an order is deleted.
type MenuItem struct {
	// id is the unique identifier for the menu item
	id kernel.UUID

	// name is the display name (unique per menu, non-empty)
	name string

	// price is the current unit price
	price float64

	// stockQuantity is the number of units available for ordering
	stockQuantity int

	guard kernel.ConstructorGuard
}

// NewMenuItem creates a new MenuItem with validation: the name must be
// non-empty, the price must lie within [0, MaxPrice], and the stock count
// must not be negative.
func NewMenuItem(id kernel.UUID, name string, price float64, stockQuantity int) (*MenuItem, error) {
	item := &MenuItem{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setPrice(price),
		item.setStockQuantity(stockQuantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreMenuItem reconstructs a MenuItem from persistence. It applies the
// same validation as NewMenuItem.
func RestoreMenuItem(id kernel.UUID, name string, price float64, stockQuantity int) (*MenuItem, error) {
	return NewMenuItem(id, name, price, stockQuantity)
}

// Validate ensures the MenuItem was properly constructed through a factory method.
func (m *MenuItem) Validate() error {
	if m == nil {
		return ErrMenuItemIsNotConstructed
	}
	return m.guard.Validate(ErrMenuItemIsNotConstructed)
}

// ID returns the menu item's unique identifier.
func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

// Name returns the display name.
func (m *MenuItem) Name() string {
	return m.name
}

// Price returns the current unit price.
func (m *MenuItem) Price() float64 {
	return m.price
}

// StockQuantity returns the number of units available for ordering.
func (m *MenuItem) StockQuantity() int {
	return m.stockQuantity
}

// CanReserve reports whether the requested quantity is available. It returns
// an InsufficientStockError carrying the item name and the available and
// requested counts when stock does not cover the request.
//
// This is the dry-run half of stock reservation: the actual decrement is a
// conditional update performed by the repository, so a race that empties the
// stock between this check and the decrement still cannot oversell.
func (m *MenuItem) CanReserve(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0 for menu item id: %s", quantity, m.id),
		)
	}
	if m.stockQuantity < quantity {
		return errs.NewInsufficientStockError(m.name, m.stockQuantity, quantity)
	}
	return nil
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

func (m *MenuItem) setPrice(price float64) error {
	if price < 0 || price > MaxPrice {
		return errs.NewValueIsOutOfRangeError("price", price, 0, MaxPrice)
	}
	m.price = price
	return nil
}

func (m *MenuItem) setStockQuantity(stockQuantity int) error {
	if stockQuantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"stockQuantity",
			fmt.Errorf("%d is negative", stockQuantity),
		)
	}
	m.stockQuantity = stockQuantity
	return nil
}
