package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
)

// MenuItemRepository defines the persistence contract for menu items and
// their stock counters.
//
// Stock mutation is deliberately not read-modify-write: DecrementStock and
// IncrementStock are conditional single-statement updates so that concurrent
// reservations racing on the same item cannot oversell.
type MenuItemRepository interface {
	// Add persists a new menu item.
	Add(ctx context.Context, item *menu.MenuItem) error

	// Update persists changes to an existing menu item.
	// Returns ObjectNotFoundError if the item does not exist.
	Update(ctx context.Context, item *menu.MenuItem) error

	// Get retrieves a menu item by its unique identifier.
	// Returns ObjectNotFoundError if the item does not exist.
	Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error)

	// GetAll retrieves every menu item.
	GetAll(ctx context.Context) ([]*menu.MenuItem, error)

	// DecrementStock atomically subtracts quantity from the item's stock,
	// but only if the remaining stock covers it. Returns true when a row
	// was updated, false when stock was insufficient at execution time.
	DecrementStock(ctx context.Context, id kernel.UUID, quantity int) (bool, error)

	// IncrementStock atomically adds quantity back to the item's stock.
	// Used when deleting orders to reverse earlier reservations.
	IncrementStock(ctx context.Context, id kernel.UUID, quantity int) error
}
