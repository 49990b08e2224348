package jobs

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"fulfillment/internal/core/application/usecases/commands"
)

// hourlySchedule fires at the top of every hour. Orders accumulate in the
// awaiting-shipment queue between runs.
const hourlySchedule = "0 0 * * * *"

// OrderProcessingJob manages the scheduled processing run. Each tick drains
// the pending-order queue under a fresh run id.
type OrderProcessingJob struct {
	handler commands.ProcessPendingOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderProcessingJob creates a new job for processing pending orders.
// Uses ProcessPendingOrdersCommandHandler to run the pipeline every hour.
func NewOrderProcessingJob(handler commands.ProcessPendingOrdersCommandHandler, logger *slog.Logger) *OrderProcessingJob {
	return &OrderProcessingJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_processing_job"),
	}
}

// Start begins the order processing job to run every hour.
func (j *OrderProcessingJob) Start() error {
	_, err := j.cron.AddFunc(hourlySchedule, func() {
		ctx := context.Background()
		runID := uuid.New()

		cmd, cmdErr := commands.NewProcessPendingOrdersCommand(runID)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Order processing job failed to build command", "error", cmdErr)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Order processing job failed", "runId", runID, "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order processing job started (running every hour)")
	return nil
}

// Stop stops the order processing job.
func (j *OrderProcessingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order processing job stopped")
}
