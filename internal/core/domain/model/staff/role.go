package staff

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// ErrRoleIsNotConstructed is returned when a Role instance was not created
// through the NewRole factory method.
var ErrRoleIsNotConstructed = errors.New("Role must be created via NewRole constructor")

// Role is a named authorization class (e.g. WAITER, CHEF, CASHIER) assigned
// to users. Role names are unique; the lifecycle engine compares a user's
// role against the role resolved by name from the authorization policy.
type Role struct {
	id   kernel.UUID
	name string

	guard kernel.ConstructorGuard
}

// NewRole creates a Role with a non-empty unique name.
func NewRole(id kernel.UUID, name string) (*Role, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Role{
		id:    id,
		name:  name,
		guard: kernel.NewConstructorGuard(),
	}, nil
}

// RestoreRole reconstructs a Role from persistence.
func RestoreRole(id kernel.UUID, name string) (*Role, error) {
	return NewRole(id, name)
}

// Validate ensures the Role was properly constructed through NewRole.
func (r *Role) Validate() error {
	if r == nil {
		return ErrRoleIsNotConstructed
	}
	return r.guard.Validate(ErrRoleIsNotConstructed)
}

// ID returns the role's unique identifier.
func (r *Role) ID() kernel.UUID {
	return r.id
}

// Name returns the unique role name.
func (r *Role) Name() string {
	return r.name
}
