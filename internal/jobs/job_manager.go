package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// digestSchedule runs the kitchen digest once a minute. The digest is an
// operational heartbeat, not a data feed; a minute keeps logs readable.
const digestSchedule = "0 * * * * *"

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	cron      *cron.Cron
	digestJob *KitchenDigestJob
	logger    *slog.Logger
}

// NewJobManager creates a job manager owning the cron scheduler.
func NewJobManager(digestJob *KitchenDigestJob, logger *slog.Logger) *JobManager {
	return &JobManager{
		cron:      cron.New(cron.WithSeconds()),
		digestJob: digestJob,
		logger:    logger.With("component", "job_manager"),
	}
}

// StartAll schedules and starts all background jobs.
func (jm *JobManager) StartAll() error {
	if _, err := jm.cron.AddJob(digestSchedule, jm.digestJob); err != nil {
		return err
	}

	jm.cron.Start()
	jm.logger.InfoContext(context.Background(), "Background jobs started")
	return nil
}

// StopAll stops the scheduler. Jobs already running finish their pass.
func (jm *JobManager) StopAll() {
	jm.cron.Stop()
	jm.logger.InfoContext(context.Background(), "Background jobs stopped")
}
