// Package jobs provides scheduled background tasks for the shipments service.
//
// Jobs are cron-based, using github.com/robfig/cron/v3 with a seconds field.
//
// # Available Jobs
//
// StatusSyncJob walks every order that is linked to a shipment and not yet in a
// final status, and runs the sync-status command for each. It is disabled
// unless SYNC_SCHEDULE is set.
//
// # Usage
//
//	syncJob := jobs.NewStatusSyncJob(&syncHandler, orderRepo, "0 */15 * * * *", logger)
//	jobManager := jobs.NewJobManager(syncJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failing order is logged and the sweep moves on; the next sweep retries it.
// Overlapping runs are skipped while a sweep is still in progress.
package jobs
