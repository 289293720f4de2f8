package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment records.
// The store enforces at most one payment per order: writes go through
// Add/Update keyed by the payment id, and GetByOrder resolves the single
// payment attached to an order.
type PaymentRepository interface {
	// Add persists a new payment record.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// Update persists changes to an existing payment record.
	// Returns ObjectNotFoundError if the payment does not exist.
	Update(ctx context.Context, aggregate *payment.Payment) error

	// Get retrieves a payment by its unique identifier.
	// Returns ObjectNotFoundError if the payment does not exist.
	Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error)

	// GetByOrder retrieves the payment attached to an order.
	// Returns ObjectNotFoundError if the order has no payment.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error)

	// DeleteByOrder removes the payment attached to an order, if any.
	// Deleting a payment that does not exist is not an error.
	DeleteByOrder(ctx context.Context, orderID kernel.UUID) error
}
