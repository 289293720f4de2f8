package queries

import (
	"context"
	"database/sql"
	"time"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// scanOrderRows reads order header rows produced by a
// "SELECT id, waiter_id, status, total, created_at" query.
func scanOrderRows(rows *sql.Rows) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	for rows.Next() {
		var id, waiterID uuid.UUID
		var status string
		var total float64
		var createdAt time.Time

		if err := rows.Scan(&id, &waiterID, &status, &total, &createdAt); err != nil {
			return nil, err
		}

		orderID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		orderWaiterID, err := kernel.UUIDFromBytes(waiterID[:])
		if err != nil {
			return nil, err
		}

		orders = append(orders, OrderResponse{
			ID:        orderID,
			WaiterID:  orderWaiterID,
			Status:    status,
			Total:     total,
			CreatedAt: createdAt,
			Items:     make([]OrderItemResponse, 0),
		})
	}

	return orders, rows.Err()
}

// attachOrderItems loads the line items of the given orders in one query and
// attaches them to their owners.
func attachOrderItems(ctx context.Context, db *gorm.DB, orders []OrderResponse) error {
	if len(orders) == 0 {
		return nil
	}

	index := make(map[kernel.UUID]int, len(orders))
	ids := make([]uuid.UUID, 0, len(orders))
	for i, o := range orders {
		index[o.ID] = i
		ids = append(ids, o.ID.Bytes())
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			menu_item_id,
			quantity,
			unit_price,
			subtotal
		FROM order_items
		WHERE order_id IN ?
		ORDER BY id
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var id, orderID, menuItemID uuid.UUID
		var quantity int
		var unitPrice, subtotal float64

		if err = rows.Scan(&id, &orderID, &menuItemID, &quantity, &unitPrice, &subtotal); err != nil {
			return err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return idErr
		}
		itemOrderID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return idErr
		}
		itemMenuItemID, idErr := kernel.UUIDFromBytes(menuItemID[:])
		if idErr != nil {
			return idErr
		}

		i, ok := index[itemOrderID]
		if !ok {
			continue
		}
		orders[i].Items = append(orders[i].Items, OrderItemResponse{
			ID:         itemID,
			MenuItemID: itemMenuItemID,
			Quantity:   quantity,
			UnitPrice:  unitPrice,
			Subtotal:   subtotal,
		})
	}

	return rows.Err()
}
