package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"inventory/internal/adapters/out/csvexport"

	"github.com/robfig/cron/v3"
)

// AuditExportJob periodically dumps every core table to a timestamped CSV
// backup file. Exports are read-only over the live tables; a failed export
// leaves no partial file behind.
type AuditExportJob struct {
	exporter  *csvexport.Exporter
	backupDir string
	cron      *cron.Cron
	schedule  string
	logger    *slog.Logger
}

// NewAuditExportJob creates a job that writes backups into backupDir on the
// given cron schedule (e.g. "@daily").
func NewAuditExportJob(
	exporter *csvexport.Exporter,
	backupDir string,
	schedule string,
	logger *slog.Logger,
) *AuditExportJob {
	return &AuditExportJob{
		exporter:  exporter,
		backupDir: backupDir,
		cron:      cron.New(),
		schedule:  schedule,
		logger:    logger.With("component", "audit_export_job"),
	}
}

// Start begins the scheduled backup exports.
func (j *AuditExportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		path, err := j.Run(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Backup export failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Backup export written", "path", path)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Audit export job started", "schedule", j.schedule)
	return nil
}

// Stop stops the audit export job.
func (j *AuditExportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Audit export job stopped")
}

// Run performs one export immediately and returns the backup file path.
// The file is written to a temporary name first and renamed once complete.
func (j *AuditExportJob) Run(ctx context.Context) (string, error) {
	if err := os.MkdirAll(j.backupDir, 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	name := fmt.Sprintf("backup_%s.csv", time.Now().UTC().Format("20060102T150405"))
	path := filepath.Join(j.backupDir, name)
	tmpPath := path + ".tmp"

	file, err := os.Create(tmpPath)
	if err != nil {
		return "", fmt.Errorf("create backup file: %w", err)
	}

	if err = j.exporter.Export(ctx, file); err != nil {
		file.Close()
		os.Remove(tmpPath)
		return "", err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpPath)
		return "", err
	}

	if err = os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return "", err
	}

	return path, nil
}
