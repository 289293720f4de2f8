package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrGetPaymentByOrderQueryIsNotConstructed = errors.New(
	"GetPaymentByOrderQuery must be created via NewGetPaymentByOrderQuery constructor",
)

// GetPaymentByOrderQuery retrieves the payment attached to an order.
// At most one payment exists per order.
type GetPaymentByOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPaymentByOrderQuery creates a query to retrieve an order's payment.
func NewGetPaymentByOrderQuery(orderID kernel.UUID) (GetPaymentByOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetPaymentByOrderQuery{}, err
	}

	return GetPaymentByOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPaymentByOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentByOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order whose payment to retrieve.
func (q GetPaymentByOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}
