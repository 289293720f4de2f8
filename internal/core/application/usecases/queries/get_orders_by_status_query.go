package queries

import (
	"errors"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
	"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
)

// GetOrdersByStatusQuery retrieves every order in a given lifecycle status.
// The match is case-sensitive and exact: "pending" does not match Pending
// orders, and a string naming no status simply matches nothing.
type GetOrdersByStatusQuery struct {
	status string

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates a query for orders in one status.
// The status string must be non-empty.
func NewGetOrdersByStatusQuery(status string) (GetOrdersByStatusQuery, error) {
	if status == "" {
		return GetOrdersByStatusQuery{}, errs.NewValueIsRequiredError("status")
	}

	return GetOrdersByStatusQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

// Status returns the status string to filter by.
func (q GetOrdersByStatusQuery) Status() string {
	return q.status
}
