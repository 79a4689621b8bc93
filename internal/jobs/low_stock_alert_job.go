package jobs

import (
	"context"
	"log/slog"

	"inventory/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// LowStockAlertJob periodically scans the catalog for items at or below their
// reorder level and raises a warning per depleted item.
type LowStockAlertJob struct {
	handler  queries.GetLowStockItemsQueryHandler
	cron     *cron.Cron
	schedule string
	logger   *slog.Logger
}

// NewLowStockAlertJob creates a job that runs the low stock report on the
// given cron schedule (e.g. "@hourly").
func NewLowStockAlertJob(
	handler queries.GetLowStockItemsQueryHandler,
	schedule string,
	logger *slog.Logger,
) *LowStockAlertJob {
	return &LowStockAlertJob{
		handler:  handler,
		cron:     cron.New(),
		schedule: schedule,
		logger:   logger.With("component", "low_stock_alert_job"),
	}
}

// Start begins the scheduled low stock scans.
func (j *LowStockAlertJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		items, err := j.handler.Handle(ctx, queries.NewGetLowStockItemsQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Low stock scan failed", "error", err)
			return
		}

		for _, item := range items {
			j.logger.WarnContext(ctx, "Item at or below reorder level",
				"item_id", item.ID.String(),
				"name", item.Name,
				"quantity_central", item.QuantityCentral,
				"reorder_level", item.ReorderLevel,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock alert job started", "schedule", j.schedule)
	return nil
}

// Stop stops the low stock alert job.
func (j *LowStockAlertJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Low stock alert job stopped")
}
