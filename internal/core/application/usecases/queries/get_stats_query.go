package queries

import (
	"errors"

	"kitchen/internal/pkg/guard"
)

var ErrGetStatsQueryIsNotConstructed = errors.New(
	"GetStatsQuery must be created via NewGetStatsQuery constructor",
)

// GetStatsQuery retrieves the kitchen's daily counters.
type GetStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStatsQuery creates a query for the kitchen counters.
func NewGetStatsQuery() GetStatsQuery {
	return GetStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetStatsQueryIsNotConstructed)
}

// GetStatsQueryResponse carries the counters shown on the kitchen dashboard.
type GetStatsQueryResponse struct {
	TodayOrders   int64 `json:"todayOrders"`
	PendingOrders int64 `json:"pendingOrders"`
}
