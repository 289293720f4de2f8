package kernel

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when a
// zero-value guard is validated with a nil error, so validation always fails
// with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard lets a value object or entity detect whether it was
// created through its designated constructor rather than as a zero value.
// Embed it as a private field and set it via NewConstructorGuard inside the
// constructor; a struct built any other way then fails Validate.
//
// All domain objects in this package tree use the guard, so an aggregate
// restored with a missing field or constructed literally in a test cannot
// slip past the invariant checks.
//
// Example:
//
//	type Role struct {
//	    id    UUID
//	    name  string
//	    guard ConstructorGuard
//	}
//
//	func NewRole(id UUID, name string) Role {
//	    return Role{
//	        id:    id,
//	        name:  name,
//	        guard: NewConstructorGuard(),
//	    }
//	}
//
//	func (r Role) Validate() error {
//	    return r.guard.Validate(ErrRoleIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed. Call it only inside constructors.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was created through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
