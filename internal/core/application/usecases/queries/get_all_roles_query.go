package queries

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var ErrGetAllRolesQueryIsNotConstructed = errors.New(
	"GetAllRolesQuery must be created via NewGetAllRolesQuery constructor",
)

// GetAllRolesQuery retrieves every role of the staff directory, ordered by
// name.
type GetAllRolesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllRolesQuery creates a parameterless query for all roles.
func NewGetAllRolesQuery() GetAllRolesQuery {
	return GetAllRolesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllRolesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllRolesQueryIsNotConstructed)
}
