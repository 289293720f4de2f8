package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllPaymentsQueryHandler retrieves every payment from the database.
type GetAllPaymentsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllPaymentsQueryHandler creates a handler for the all-payments query.
func NewGetAllPaymentsQueryHandler(db *gorm.DB) GetAllPaymentsQueryHandler {
	return GetAllPaymentsQueryHandler{db: db}
}

// Handle executes the query, returning payments newest first.
func (h GetAllPaymentsQueryHandler) Handle(
	ctx context.Context,
	query GetAllPaymentsQuery,
) ([]PaymentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(paymentSelect + "ORDER BY created_at DESC, id").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPaymentRows(rows)
}
