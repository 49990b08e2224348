// Package jobs provides scheduled background tasks for the fulfillment
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order processing.
//
// # Available Jobs
//
// 1. OrderProcessingJob - Runs every hour to drain the awaiting-shipment
// queue through the decision pipeline under a fresh run id
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(processPendingOrdersHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The processing job uses the cron expression "0 0 * * * *" which fires at
// the top of every hour. Order volume makes more frequent runs wasteful;
// collaborator rate limits make them risky.
//
// # Error Handling
//
// A failed run is logged and the next tick retries the whole queue; orders
// left unprocessed simply remain in the awaiting-shipment status.
package jobs
