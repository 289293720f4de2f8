package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/guard"
)

var ErrCreateMenuItemCommandIsNotConstructed = errors.New(
	"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
)

// CreateMenuItemCommand represents a request to add a sellable item to the
// menu with an initial stock count.
type CreateMenuItemCommand struct { //nolint:recvcheck //using for validation
	menuItemID    kernel.UUID
	name          string
	price         float64
	stockQuantity int

	guard guard.ConstructorGuard
}

// NewCreateMenuItemCommand creates a command to add a menu item.
// Field validation (non-empty name, price range, non-negative stock) is
// delegated to the MenuItem constructor so the rules live in one place.
func NewCreateMenuItemCommand(menuItemID kernel.UUID, name string, price float64, stockQuantity int) (CreateMenuItemCommand, error) {
	if _, err := menu.NewMenuItem(menuItemID, name, price, stockQuantity); err != nil {
		return CreateMenuItemCommand{}, err
	}

	return CreateMenuItemCommand{
		menuItemID:    menuItemID,
		name:          name,
		price:         price,
		stockQuantity: stockQuantity,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

// MenuItemID returns the unique identifier for the new menu item.
func (c CreateMenuItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// Name returns the display name.
func (c CreateMenuItemCommand) Name() string {
	return c.name
}

// Price returns the unit price.
func (c CreateMenuItemCommand) Price() float64 {
	return c.price
}

// StockQuantity returns the initial stock count.
func (c CreateMenuItemCommand) StockQuantity() int {
	return c.stockQuantity
}
