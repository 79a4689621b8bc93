package jobs

import (
	"fmt"
	"log/slog"

	"inventory/internal/adapters/out/csvexport"
	"inventory/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	lowStockAlertJob *LowStockAlertJob
	auditExportJob   *AuditExportJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	lowStockHandler queries.GetLowStockItemsQueryHandler,
	lowStockSchedule string,
	exporter *csvexport.Exporter,
	backupDir string,
	exportSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		lowStockAlertJob: NewLowStockAlertJob(lowStockHandler, lowStockSchedule, logger),
		auditExportJob:   NewAuditExportJob(exporter, backupDir, exportSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.lowStockAlertJob.Start(); err != nil {
		return fmt.Errorf("failed to start low stock alert job: %w", err)
	}

	if err := jm.auditExportJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.lowStockAlertJob.Stop()
		return fmt.Errorf("failed to start audit export job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.lowStockAlertJob.Stop()
	jm.auditExportJob.Stop()
}
