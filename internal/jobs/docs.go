// Package jobs provides scheduled background tasks for the composition engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance operations.
//
// # Available Jobs
//
// 1. SnapshotPruningJob - Deletes order-specific BOM snapshots that no order line references anymore
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(pruneSnapshotsHandler, "0 3 * * *", logger)
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
// The pruning job uses a standard five-field cron expression taken from
// configuration. Snapshots only become orphaned through explicit line removal
// or reconfiguration, so a nightly run is usually enough.
//
// # Error Handling
//
// - Pruning errors are logged and retried on the next scheduled run
// - Failed job starts abort application startup
package jobs
