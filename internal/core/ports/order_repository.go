// Package ports defines repository and unit-of-work interfaces for the
// restaurant core. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order is stored together with its line items; loading an order always
// returns the complete aggregate.
type OrderRepository interface {
	// Add persists a new order aggregate, including its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Returns ObjectNotFoundError if the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns ObjectNotFoundError if the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every order with its line items.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// Delete removes an order together with its line items.
	// Returns ObjectNotFoundError if the order does not exist.
	Delete(ctx context.Context, id kernel.UUID) error
}
