package queries

import (
	"context"

	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetPaymentByOrderQueryHandler retrieves an order's payment from the
// database.
type GetPaymentByOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetPaymentByOrderQueryHandler creates a handler for payment-by-order
// queries.
func NewGetPaymentByOrderQueryHandler(db *gorm.DB) GetPaymentByOrderQueryHandler {
	return GetPaymentByOrderQueryHandler{db: db}
}

// Handle executes the query.
// Returns ObjectNotFoundError when the order has no payment.
func (h GetPaymentByOrderQueryHandler) Handle(
	ctx context.Context,
	query GetPaymentByOrderQuery,
) (PaymentResponse, error) {
	if err := query.Validate(); err != nil {
		return PaymentResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		paymentSelect+"WHERE order_id = ?", query.OrderID().Bytes(),
	).Rows()
	if err != nil {
		return PaymentResponse{}, err
	}
	defer rows.Close()

	payments, err := scanPaymentRows(rows)
	if err != nil {
		return PaymentResponse{}, err
	}
	if len(payments) == 0 {
		return PaymentResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}

	return payments[0], nil
}
