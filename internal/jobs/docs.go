// Package jobs provides scheduled background tasks for the parcel service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for warehouse processing.
//
// # Available Jobs
//
// 1. ZoneSortingJob - Runs every thirty seconds to sweep weighed and verified
// parcels into their dispatch zones when operators skip the manual sort step
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(sortableHandler, sortBatchHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The sorting sweep treats per-parcel failures as expected: a parcel sorted
// by an operator between the candidate query and the batch command simply
// loses the race. Only infrastructure errors are logged at error level.
package jobs
