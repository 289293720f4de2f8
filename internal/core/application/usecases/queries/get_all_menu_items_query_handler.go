package queries

import (
	"context"
	"database/sql"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllMenuItemsQueryHandler retrieves the menu from the database.
type GetAllMenuItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllMenuItemsQueryHandler creates a handler for menu queries.
func NewGetAllMenuItemsQueryHandler(db *gorm.DB) GetAllMenuItemsQueryHandler {
	return GetAllMenuItemsQueryHandler{db: db}
}

// Handle executes the query, returning menu items ordered by name.
func (h GetAllMenuItemsQueryHandler) Handle(
	ctx context.Context,
	query GetAllMenuItemsQuery,
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
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMenuItemRows(rows)
}

// scanMenuItemRows reads menu item rows produced by a
// "SELECT id, name, price, stock_quantity" query.
func scanMenuItemRows(rows *sql.Rows) ([]MenuItemResponse, error) {
	items := make([]MenuItemResponse, 0)

	for rows.Next() {
		var id uuid.UUID
		var name string
		var price float64
		var stockQuantity int

		if err := rows.Scan(&id, &name, &price, &stockQuantity); err != nil {
			return nil, err
		}

		itemID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		items = append(items, MenuItemResponse{
			ID:            itemID,
			Name:          name,
			Price:         price,
			StockQuantity: stockQuantity,
		})
	}

	return items, rows.Err()
}
