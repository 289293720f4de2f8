package queries

import (
	"errors"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrGetPaymentsByStatusQueryIsNotConstructed = errors.New(
	"GetPaymentsByStatusQuery must be created via NewGetPaymentsByStatusQuery constructor",
)

// GetPaymentsByStatusQuery retrieves every payment in a given settlement
// status. The match is case-sensitive and exact.
type GetPaymentsByStatusQuery struct {
	status string

	guard guard.ConstructorGuard
}

// NewGetPaymentsByStatusQuery creates a query for payments in one status.
// The status string must be non-empty.
func NewGetPaymentsByStatusQuery(status string) (GetPaymentsByStatusQuery, error) {
	if status == "" {
		return GetPaymentsByStatusQuery{}, errs.NewValueIsRequiredError("status")
	}

	return GetPaymentsByStatusQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPaymentsByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentsByStatusQueryIsNotConstructed)
}

// Status returns the status string to filter by.
func (q GetPaymentsByStatusQuery) Status() string {
	return q.status
}
