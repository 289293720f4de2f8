package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrMarkOrderServedCommandIsNotConstructed = errors.New(
	"MarkOrderServedCommand must be created via NewMarkOrderServedCommand constructor",
)

// MarkOrderServedCommand represents a waiter's request to move an order from
// Ready to Served. Served is the final status of the lifecycle.
type MarkOrderServedCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	userID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkOrderServedCommand creates a command to mark an order as served.
func NewMarkOrderServedCommand(orderID, userID kernel.UUID) (MarkOrderServedCommand, error) {
	cmd := MarkOrderServedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
	); err != nil {
		return MarkOrderServedCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderServedCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderServedCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to mark as served.
func (c MarkOrderServedCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the identifier of the acting user.
func (c MarkOrderServedCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *MarkOrderServedCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *MarkOrderServedCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}
