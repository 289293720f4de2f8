package queries

import (
	"context"

	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetPaymentQueryHandler retrieves a single payment from the database.
type GetPaymentQueryHandler struct {
	db *gorm.DB
}

// NewGetPaymentQueryHandler creates a handler for single payment queries.
func NewGetPaymentQueryHandler(db *gorm.DB) GetPaymentQueryHandler {
	return GetPaymentQueryHandler{db: db}
}

// Handle executes the query.
// Returns ObjectNotFoundError when no payment matches the identifier.
func (h GetPaymentQueryHandler) Handle(ctx context.Context, query GetPaymentQuery) (PaymentResponse, error) {
	if err := query.Validate(); err != nil {
		return PaymentResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		paymentSelect+"WHERE id = ?", query.PaymentID().Bytes(),
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
		return PaymentResponse{}, errs.NewObjectNotFoundError("paymentID", query.PaymentID())
	}

	return payments[0], nil
}
