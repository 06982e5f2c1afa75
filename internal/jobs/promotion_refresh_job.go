package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultPromotionRefreshSchedule reloads the catalog at the top of every minute.
const DefaultPromotionRefreshSchedule = "0 * * * * *"

// PromotionRefresher reloads the in-memory promotion catalog.
type PromotionRefresher interface {
	Refresh(ctx context.Context) error
}

// PromotionRefreshJob keeps the promotion cache close to the database so that
// expired or disabled promotions stop being offered without a restart.
type PromotionRefreshJob struct {
	refresher PromotionRefresher
	schedule  string
	timeout   time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewPromotionRefreshJob creates the job. schedule is a six-field cron
// expression (seconds first); an empty schedule uses the default.
func NewPromotionRefreshJob(refresher PromotionRefresher, schedule string, logger *slog.Logger) *PromotionRefreshJob {
	if schedule == "" {
		schedule = DefaultPromotionRefreshSchedule
	}
	return &PromotionRefreshJob{
		refresher: refresher,
		schedule:  schedule,
		timeout:   30 * time.Second,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "promotion_refresh_job"),
	}
}

// Run performs a single refresh. Failures are logged; the cache keeps serving
// its previous entries.
func (j *PromotionRefreshJob) Run(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	if err := j.refresher.Refresh(ctx); err != nil {
		j.logger.ErrorContext(ctx, "Promotion refresh failed", "error", err)
	}
}

// Start warms the cache once and then schedules the refresh.
func (j *PromotionRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.Run(context.Background())
	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Promotion refresh job started", "schedule", j.schedule)
	return nil
}

// Stop stops scheduling and waits for a running refresh to finish.
func (j *PromotionRefreshJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Promotion refresh job stopped")
}
