package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetPaymentsByStatusQueryHandler retrieves payments filtered by status.
type GetPaymentsByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetPaymentsByStatusQueryHandler creates a handler for status-filtered
// payment queries.
func NewGetPaymentsByStatusQueryHandler(db *gorm.DB) GetPaymentsByStatusQueryHandler {
	return GetPaymentsByStatusQueryHandler{db: db}
}

// Handle executes the query. A status string matching no payments yields an
// empty result, not an error.
func (h GetPaymentsByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetPaymentsByStatusQuery,
) ([]PaymentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		paymentSelect+"WHERE status = ? ORDER BY created_at DESC, id", query.Status(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPaymentRows(rows)
}
