package staff

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through the NewUser factory method.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is a staff member known to the directory. Identity management is
// external; the lifecycle engine only reads users to resolve their role for
// authorization decisions. The role reference is optional; a user without a
// role fails every role-gated operation.
type User struct {
	id     kernel.UUID
	name   string
	roleID *kernel.UUID

	guard kernel.ConstructorGuard
}

// NewUser creates a User with an optional role assignment.
func NewUser(id kernel.UUID, name string, roleID *kernel.UUID) (*User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if roleID != nil {
		if err := roleID.Validate(); err != nil {
			return nil, err
		}
	}

	return &User{
		id:     id,
		name:   name,
		roleID: roleID,
		guard:  kernel.NewConstructorGuard(),
	}, nil
}

// RestoreUser reconstructs a User from persistence.
func RestoreUser(id kernel.UUID, name string, roleID *kernel.UUID) (*User, error) {
	return NewUser(id, name, roleID)
}

// Validate ensures the User was properly constructed through NewUser.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the user's display name.
func (u *User) Name() string {
	return u.name
}

// RoleID returns the assigned role's identifier, or nil when the user has
// no role.
func (u *User) RoleID() *kernel.UUID {
	return u.roleID
}

// HasRole reports whether the user holds the given role.
func (u *User) HasRole(role *Role) bool {
	return role != nil && u.roleID != nil && u.roleID.IsEqual(role.ID())
}
