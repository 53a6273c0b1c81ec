package jobs

import (
	"context"
	"log/slog"

	"workshop/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StatusReportJob periodically logs how many work orders sit in each status.
// It is log-only observability: no notification is sent anywhere.
type StatusReportJob struct {
	handler queries.GetStatusSummaryQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStatusReportJob creates a job that reports the status summary every minute.
func NewStatusReportJob(handler queries.GetStatusSummaryQueryHandler, logger *slog.Logger) *StatusReportJob {
	return &StatusReportJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "status_report_job"),
	}
}

// Start begins the status report job to run every minute.
func (j *StatusReportJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetStatusSummaryQuery()

		summary, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Status report job failed", "error", err)
			return
		}

		for _, row := range summary {
			j.logger.InfoContext(ctx, "Work order status count",
				"status", string(row.Status),
				"count", row.Count,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Status report job started (running every minute)")
	return nil
}

// Stop stops the status report job.
func (j *StatusReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Status report job stopped")
}
