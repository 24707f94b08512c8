// Package jobs provides scheduled background tasks.
//
// Jobs are cron-based (github.com/robfig/cron/v3, expressions with a leading
// seconds field) and managed through JobManager:
//
//	replay := jobs.NewNotificationReplayJob(dispatcher, jobs.ReplayConfig{}, logger)
//	jobManager := jobs.NewJobManager(logger, replay)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// NotificationReplayJob re-delivers notifications to the resource and request
// services whose delivery after commit failed. It is not enabled by default:
// without it a failed notification is logged and recorded, never retried.
package jobs
