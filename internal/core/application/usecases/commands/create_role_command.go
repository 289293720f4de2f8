package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrCreateRoleCommandIsNotConstructed = errors.New(
	"CreateRoleCommand must be created via NewCreateRoleCommand constructor",
)

// CreateRoleCommand represents a request to register a new role name in the
// staff directory.
type CreateRoleCommand struct { //nolint:recvcheck //using for validation
	roleID kernel.UUID
	name   string

	guard guard.ConstructorGuard
}

// NewCreateRoleCommand creates a command to register a role.
func NewCreateRoleCommand(roleID kernel.UUID, name string) (CreateRoleCommand, error) {
	cmd := CreateRoleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRoleID(roleID),
		cmd.setName(name),
	); err != nil {
		return CreateRoleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRoleCommand) Validate() error {
	return c.guard.Validate(ErrCreateRoleCommandIsNotConstructed)
}

// RoleID returns the unique identifier for the new role.
func (c CreateRoleCommand) RoleID() kernel.UUID {
	return c.roleID
}

// Name returns the unique role name.
func (c CreateRoleCommand) Name() string {
	return c.name
}

func (c *CreateRoleCommand) setRoleID(roleID kernel.UUID) error {
	if err := roleID.Validate(); err != nil {
		return err
	}

	c.roleID = roleID
	return nil
}

func (c *CreateRoleCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}
