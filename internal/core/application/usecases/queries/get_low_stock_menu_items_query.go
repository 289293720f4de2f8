package queries

import (
	"errors"
	"fmt"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrGetLowStockMenuItemsQueryIsNotConstructed = errors.New(
	"GetLowStockMenuItemsQuery must be created via NewGetLowStockMenuItemsQuery constructor",
)

// GetLowStockMenuItemsQuery retrieves menu items whose stock counter has
// fallen below a threshold. Used by the periodic low stock report.
type GetLowStockMenuItemsQuery struct {
	threshold int

	guard guard.ConstructorGuard
}

// NewGetLowStockMenuItemsQuery creates a query for menu items with stock
// below the given threshold. The threshold must be positive.
func NewGetLowStockMenuItemsQuery(threshold int) (GetLowStockMenuItemsQuery, error) {
	if threshold <= 0 {
		return GetLowStockMenuItemsQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"threshold",
			fmt.Errorf("%d is not greater than 0", threshold),
		)
	}

	return GetLowStockMenuItemsQuery{
		threshold: threshold,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLowStockMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetLowStockMenuItemsQueryIsNotConstructed)
}

// Threshold returns the stock level below which items are reported.
func (q GetLowStockMenuItemsQuery) Threshold() int {
	return q.threshold
}
