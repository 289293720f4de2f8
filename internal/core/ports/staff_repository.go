package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/staff"
)

// StaffRepository defines the persistence contract for the user/role
// directory. The core reads it for authorization lookups; role creation is
// exposed for directory maintenance, and user creation exists for seeding
// and tests. Identity management proper is external.
type StaffRepository interface {
	// GetUser retrieves a user by id.
	// Returns ObjectNotFoundError if the user does not exist.
	GetUser(ctx context.Context, id kernel.UUID) (*staff.User, error)

	// AddUser persists a new user.
	AddUser(ctx context.Context, user *staff.User) error

	// GetRoleByName retrieves a role by its unique name.
	// Returns ObjectNotFoundError if the role does not exist.
	GetRoleByName(ctx context.Context, name string) (*staff.Role, error)

	// AddRole persists a new role. Returns StateConflictError if a role
	// with the same name already exists.
	AddRole(ctx context.Context, role *staff.Role) error

	// GetAllRoles retrieves every role.
	GetAllRoles(ctx context.Context) ([]*staff.Role, error)
}
