// Package jobs provides scheduled background tasks for the inventory system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the inventory service.
//
// # Available Jobs
//
// 1. LowStockAlertJob - Scans the catalog for items at or below their reorder level and logs a warning per item
// 2. AuditExportJob - Dumps every core table, including the transaction log, to a timestamped CSV backup file
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(lowStockHandler, "@hourly", exporter, "./backups", "@daily", logger)
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
// Schedules are standard cron expressions passed in from configuration. The
// defaults are "@hourly" for the low stock scan and "@daily" for the backup
// export.
//
// # Error Handling
//
// - The low stock job logs scan failures and keeps its schedule
// - The export job removes partial files on failure and renames only complete backups
// - Failed job starts will stop any already running jobs
package jobs
