package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	promotionRefreshJob *PromotionRefreshJob
}

func NewJobManager(
	promotions PromotionRefresher,
	promotionRefreshSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		promotionRefreshJob: NewPromotionRefreshJob(promotions, promotionRefreshSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.promotionRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start promotion refresh job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.promotionRefreshJob.Stop()
}
