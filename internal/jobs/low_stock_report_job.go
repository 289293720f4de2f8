package jobs

import (
	"context"
	"log/slog"

	"restaurant/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// LowStockReportJob periodically reports menu items whose stock has fallen
// below the configured threshold, so the kitchen can restock before items
// start rejecting orders.
type LowStockReportJob struct {
	handler   queries.GetLowStockMenuItemsQueryHandler
	threshold int
	schedule  string
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewLowStockReportJob creates a new low stock report job. The schedule is a
// six-field cron expression with seconds.
func NewLowStockReportJob(
	handler queries.GetLowStockMenuItemsQueryHandler,
	threshold int,
	schedule string,
	logger *slog.Logger,
) *LowStockReportJob {
	return &LowStockReportJob{
		handler:   handler,
		threshold: threshold,
		schedule:  schedule,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "low_stock_report_job"),
	}
}

// Start begins the low stock report job on its configured schedule.
func (j *LowStockReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		query, err := queries.NewGetLowStockMenuItemsQuery(j.threshold)
		if err != nil {
			j.logger.ErrorContext(ctx, "Low stock report job misconfigured", "error", err)
			return
		}

		items, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Low stock report job failed", "error", err)
			return
		}

		for _, item := range items {
			j.logger.WarnContext(ctx, "Menu item is running low on stock",
				"menuItem", item.Name,
				"stockQuantity", item.StockQuantity,
				"threshold", j.threshold,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock report job started", "schedule", j.schedule)
	return nil
}

// Stop stops the low stock report job.
func (j *LowStockReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Low stock report job stopped")
}
