package http

import (
	"time"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/payment"
	"restaurant/internal/core/domain/model/staff"
)

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Order is the JSON representation of an order with its line items.
type Order struct {
	ID        string      `json:"id"`
	WaiterID  string      `json:"waiterId"`
	Status    string      `json:"status"`
	Total     float64     `json:"total"`
	CreatedAt time.Time   `json:"createdAt"`
	Items     []OrderItem `json:"items"`
}

// OrderItem is the JSON representation of one order line.
type OrderItem struct {
	ID         string  `json:"id"`
	MenuItemID string  `json:"menuItemId"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	Subtotal   float64 `json:"subtotal"`
}

// Payment is the JSON representation of a payment record.
// CashierID and ProcessedAt are null while the payment is pending.
type Payment struct {
	ID          string     `json:"id"`
	OrderID     string     `json:"orderId"`
	CashierID   *string    `json:"cashierId"`
	Amount      float64    `json:"amount"`
	Method      string     `json:"method"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	ProcessedAt *time.Time `json:"processedAt"`
}

// MenuItem is the JSON representation of a menu item.
type MenuItem struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stockQuantity"`
}

// Role is the JSON representation of a staff role.
type Role struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func orderFromQuery(response queries.OrderResponse) Order {
	items := make([]OrderItem, len(response.Items))
	for i, item := range response.Items {
		items[i] = OrderItem{
			ID:         item.ID.String(),
			MenuItemID: item.MenuItemID.String(),
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			Subtotal:   item.Subtotal,
		}
	}

	return Order{
		ID:        response.ID.String(),
		WaiterID:  response.WaiterID.String(),
		Status:    response.Status,
		Total:     response.Total,
		CreatedAt: response.CreatedAt,
		Items:     items,
	}
}

func orderFromDomain(aggregate *order.Order) Order {
	domainItems := aggregate.Items()
	items := make([]OrderItem, len(domainItems))
	for i, item := range domainItems {
		items[i] = OrderItem{
			ID:         item.ID().String(),
			MenuItemID: item.MenuItemID().String(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice(),
			Subtotal:   item.Subtotal(),
		}
	}

	return Order{
		ID:        aggregate.ID().String(),
		WaiterID:  aggregate.WaiterID().String(),
		Status:    aggregate.Status().String(),
		Total:     aggregate.Total(),
		CreatedAt: aggregate.CreatedAt(),
		Items:     items,
	}
}

func paymentFromQuery(response queries.PaymentResponse) Payment {
	var cashierID *string
	if response.CashierID != nil {
		s := response.CashierID.String()
		cashierID = &s
	}

	return Payment{
		ID:          response.ID.String(),
		OrderID:     response.OrderID.String(),
		CashierID:   cashierID,
		Amount:      response.Amount,
		Method:      response.Method,
		Status:      response.Status,
		CreatedAt:   response.CreatedAt,
		ProcessedAt: response.ProcessedAt,
	}
}

func paymentFromDomain(aggregate *payment.Payment) Payment {
	var cashierID *string
	if aggregate.CashierID() != nil {
		s := aggregate.CashierID().String()
		cashierID = &s
	}

	return Payment{
		ID:          aggregate.ID().String(),
		OrderID:     aggregate.OrderID().String(),
		CashierID:   cashierID,
		Amount:      aggregate.Amount(),
		Method:      aggregate.Method(),
		Status:      aggregate.Status().String(),
		CreatedAt:   aggregate.CreatedAt(),
		ProcessedAt: aggregate.ProcessedAt(),
	}
}

func menuItemFromQuery(response queries.MenuItemResponse) MenuItem {
	return MenuItem{
		ID:            response.ID.String(),
		Name:          response.Name,
		Price:         response.Price,
		StockQuantity: response.StockQuantity,
	}
}

func menuItemFromDomain(item *menu.MenuItem) MenuItem {
	return MenuItem{
		ID:            item.ID().String(),
		Name:          item.Name(),
		Price:         item.Price(),
		StockQuantity: item.StockQuantity(),
	}
}

func roleFromQuery(response queries.RoleResponse) Role {
	return Role{
		ID:   response.ID.String(),
		Name: response.Name,
	}
}

func roleFromDomain(role *staff.Role) Role {
	return Role{
		ID:   role.ID().String(),
		Name: role.Name(),
	}
}
