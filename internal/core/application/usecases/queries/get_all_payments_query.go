package queries

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var ErrGetAllPaymentsQueryIsNotConstructed = errors.New(
	"GetAllPaymentsQuery must be created via NewGetAllPaymentsQuery constructor",
)

// GetAllPaymentsQuery retrieves every payment record, newest first.
type GetAllPaymentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllPaymentsQuery creates a parameterless query for all payments.
func NewGetAllPaymentsQuery() GetAllPaymentsQuery {
	return GetAllPaymentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllPaymentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllPaymentsQueryIsNotConstructed)
}
