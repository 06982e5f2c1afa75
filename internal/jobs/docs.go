// Package jobs provides scheduled background tasks for the order service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field expressions with
// seconds) and are started and stopped through JobManager:
//
//	jobManager := jobs.NewJobManager(promotionCache, cfg.PromotionRefreshSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// PromotionRefreshJob reloads the promotion catalog cache. It refreshes once on
// start so the first quotes are served warm, then follows its schedule
// (every minute by default). A failed refresh keeps the previous cache.
package jobs
