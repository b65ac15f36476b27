package ports

import (
	"context"

	"kitchen/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The store is the single source of truth for order state and the sole
// writer of order rows.
type OrderRepository interface {
	// Add persists a new order aggregate and assigns its identifier.
	// On success the aggregate carries the store-assigned id.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Only status and the update timestamp ever change after creation.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its identifier.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetForUpdate retrieves an order and locks its row for the duration of
	// the surrounding transaction. Concurrent mutations of the same order
	// serialize on this lock, making validate-then-persist atomic per order.
	// Must be called within an active unit of work transaction.
	GetForUpdate(ctx context.Context, id int64) (*order.Order, error)
}
