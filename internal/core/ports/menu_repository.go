package ports

import (
	"context"

	"kitchen/internal/core/domain/model/menu"
)

// MenuItemRepository defines the persistence contract for the menu catalog.
// The order core reads it to verify a requested item exists and is
// available; catalog maintenance adds items.
type MenuItemRepository interface {
	// Get retrieves a menu item by id.
	Get(ctx context.Context, id int64) (*menu.Item, error)

	// Add persists a new menu item and assigns its identifier.
	Add(ctx context.Context, item *menu.Item) error
}
