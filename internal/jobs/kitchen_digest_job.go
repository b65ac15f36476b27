// Package jobs provides scheduled background tasks for the kitchen service,
// implemented with github.com/robfig/cron/v3 and managed through JobManager.
package jobs

import (
	"context"
	"log/slog"

	"kitchen/internal/core/application/usecases/queries"
)

// statsHandler is the slice of the stats query the digest needs.
type statsHandler interface {
	Handle(ctx context.Context, query queries.GetStatsQuery) (queries.GetStatsQueryResponse, error)
}

// KitchenDigestJob periodically logs the kitchen workload so operators can
// follow the queue from the service logs without hitting the stats endpoint.
type KitchenDigestJob struct {
	handler statsHandler
	logger  *slog.Logger
}

// NewKitchenDigestJob creates the digest job backed by the stats query handler.
func NewKitchenDigestJob(handler statsHandler, logger *slog.Logger) *KitchenDigestJob {
	return &KitchenDigestJob{
		handler: handler,
		logger:  logger.With("component", "kitchen_digest_job"),
	}
}

// Run executes one digest pass.
func (j *KitchenDigestJob) Run() {
	ctx := context.Background()

	stats, err := j.handler.Handle(ctx, queries.NewGetStatsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Kitchen digest job failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Kitchen digest",
		"today_orders", stats.TodayOrders,
		"pending_orders", stats.PendingOrders,
	)
}
