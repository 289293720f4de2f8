// Package jobs provides scheduled background tasks for the restaurant backend.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order management service.
//
// # Available Jobs
//
// 1. LowStockReportJob - Periodically logs menu items whose stock has fallen
// below the configured threshold so staff can restock them.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(lowStockHandler, threshold, schedule, logger)
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
// The report job uses a six-field cron expression with seconds, taken from
// configuration, so deployments can tune how often the report runs.
//
// # Error Handling
//
// The report job is read-only. Failures are logged and the next scheduled
// run retries from scratch.
package jobs
