package commands

import (
	"context"

	"restaurant/internal/core/domain/model/staff"
)

// CreateRoleCommandHandler registers a new role in the staff directory.
// Role names are unique; registering a duplicate name is a state conflict.
type CreateRoleCommandHandler struct {
	uowFactory StaffUoWFactory
}

// NewCreateRoleCommandHandler creates a handler for role registration.
func NewCreateRoleCommandHandler(uowFactory StaffUoWFactory) CreateRoleCommandHandler {
	return CreateRoleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates and persists the role, returning it on success.
func (h *CreateRoleCommandHandler) Handle(ctx context.Context, cmd CreateRoleCommand) (*staff.Role, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	role, err := staff.NewRole(cmd.RoleID(), cmd.Name())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.StaffRepository().AddRole(ctx, role); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return role, nil
}
