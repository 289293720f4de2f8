package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetLowStockMenuItemsQueryHandler retrieves menu items running low on
// stock.
type GetLowStockMenuItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetLowStockMenuItemsQueryHandler creates a handler for low stock
// queries.
func NewGetLowStockMenuItemsQueryHandler(db *gorm.DB) GetLowStockMenuItemsQueryHandler {
	return GetLowStockMenuItemsQueryHandler{db: db}
}

// Handle executes the query, returning items with stock strictly below the
// threshold, the emptiest first.
func (h GetLowStockMenuItemsQueryHandler) Handle(
	ctx context.Context,
	query GetLowStockMenuItemsQuery,
) ([]MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price,
			stock_quantity
		FROM menu_items
		WHERE stock_quantity < ?
		ORDER BY stock_quantity, name
	`, query.Threshold()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMenuItemRows(rows)
}
