package queries

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var ErrGetAllMenuItemsQueryIsNotConstructed = errors.New(
	"GetAllMenuItemsQuery must be created via NewGetAllMenuItemsQuery constructor",
)

// GetAllMenuItemsQuery retrieves the whole menu with stock counters, ordered
// by name.
type GetAllMenuItemsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllMenuItemsQuery creates a parameterless query for the whole menu.
func NewGetAllMenuItemsQuery() GetAllMenuItemsQuery {
	return GetAllMenuItemsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllMenuItemsQueryIsNotConstructed)
}
