package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PendingOrderExpiryJob manages the scheduled cancellation of network orders
// nobody claimed within the configured time-to-live. Runs every 30 seconds.
type PendingOrderExpiryJob struct {
	handler commands.ExpirePendingOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPendingOrderExpiryJob creates a new job for expiring stale pending orders.
// Uses ExpirePendingOrdersCommandHandler to process the sweep every 30 seconds.
func NewPendingOrderExpiryJob(handler commands.ExpirePendingOrdersCommandHandler, logger *slog.Logger) *PendingOrderExpiryJob {
	return &PendingOrderExpiryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "pending_order_expiry_job"),
	}
}

// Start begins the expiry job to run every 30 seconds.
func (j *PendingOrderExpiryJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewExpirePendingOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Pending order expiry job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending order expiry job started (running every 30 seconds)")
	return nil
}

// Stop stops the expiry job.
func (j *PendingOrderExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending order expiry job stopped")
}
