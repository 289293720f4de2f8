package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrGetPaymentQueryIsNotConstructed = errors.New(
	"GetPaymentQuery must be created via NewGetPaymentQuery constructor",
)

// GetPaymentQuery retrieves a single payment by its identifier.
type GetPaymentQuery struct {
	paymentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPaymentQuery creates a query to retrieve one payment.
func NewGetPaymentQuery(paymentID kernel.UUID) (GetPaymentQuery, error) {
	if err := paymentID.Validate(); err != nil {
		return GetPaymentQuery{}, err
	}

	return GetPaymentQuery{
		paymentID: paymentID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPaymentQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentQueryIsNotConstructed)
}

// PaymentID returns the identifier of the payment to retrieve.
func (q GetPaymentQuery) PaymentID() kernel.UUID {
	return q.paymentID
}
