package queries

import (
	"context"

	"kitchen/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetStatsQueryHandler computes the kitchen counters from the order table.
type GetStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetStatsQueryHandler creates a handler for kitchen counter queries.
func NewGetStatsQueryHandler(db *gorm.DB) GetStatsQueryHandler {
	return GetStatsQueryHandler{db: db}
}

// Handle executes the query. Today's count uses the database clock, so all
// clients agree on when a day rolls over.
func (h GetStatsQueryHandler) Handle(
	ctx context.Context,
	query GetStatsQuery,
) (GetStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStatsQueryResponse{}, err
	}

	var stats GetStatsQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE created_at >= date_trunc('day', now())) AS today_orders,
			COUNT(*) FILTER (WHERE status = ?) AS pending_orders
		FROM orders
	`, order.Pending).Row()

	if err := row.Scan(&stats.TodayOrders, &stats.PendingOrders); err != nil {
		return GetStatsQueryResponse{}, err
	}

	return stats, nil
}
