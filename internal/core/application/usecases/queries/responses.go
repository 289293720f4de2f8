package queries

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
)

// OrderResponse represents one order with its line items as read from the
// database. Shared by every order query.
type OrderResponse struct {
	ID        kernel.UUID
	WaiterID  kernel.UUID
	Status    string
	Total     float64
	CreatedAt time.Time
	Items     []OrderItemResponse
}

// OrderItemResponse represents one line item of an order.
type OrderItemResponse struct {
	ID         kernel.UUID
	MenuItemID kernel.UUID
	Quantity   int
	UnitPrice  float64
	Subtotal   float64
}

// PaymentResponse represents one payment record. Shared by every payment
// query. CashierID and ProcessedAt are nil for payments still pending.
type PaymentResponse struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	CashierID   *kernel.UUID
	Amount      float64
	Method      string
	Status      string
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// MenuItemResponse represents one menu item with its stock counter.
type MenuItemResponse struct {
	ID            kernel.UUID
	Name          string
	Price         float64
	StockQuantity int
}

// RoleResponse represents one role of the staff directory.
type RoleResponse struct {
	ID   kernel.UUID
	Name string
}
