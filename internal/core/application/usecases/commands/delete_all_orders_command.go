package commands

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var ErrDeleteAllOrdersCommandIsNotConstructed = errors.New(
	"DeleteAllOrdersCommand must be created via NewDeleteAllOrdersCommand constructor",
)

// DeleteAllOrdersCommand represents a request to remove every order in the
// system, releasing all reserved stock. Intended for end-of-day cleanup and
// test environments.
type DeleteAllOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewDeleteAllOrdersCommand creates a command to delete all orders.
func NewDeleteAllOrdersCommand() DeleteAllOrdersCommand {
	return DeleteAllOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c DeleteAllOrdersCommand) Validate() error {
	return c.guard.Validate(ErrDeleteAllOrdersCommandIsNotConstructed)
}
