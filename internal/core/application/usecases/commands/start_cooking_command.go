package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrStartCookingCommandIsNotConstructed = errors.New(
	"StartCookingCommand must be created via NewStartCookingCommand constructor",
)

// StartCookingCommand represents a request to move an order from Pending to
// Preparing. The acting user must hold the cashier role; in this kitchen the
// cashier releases orders to the kitchen once the table is confirmed.
type StartCookingCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	userID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartCookingCommand creates a command to start cooking an order.
func NewStartCookingCommand(orderID, userID kernel.UUID) (StartCookingCommand, error) {
	cmd := StartCookingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
	); err != nil {
		return StartCookingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartCookingCommand) Validate() error {
	return c.guard.Validate(ErrStartCookingCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to start cooking.
func (c StartCookingCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the identifier of the acting user.
func (c StartCookingCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *StartCookingCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *StartCookingCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}
