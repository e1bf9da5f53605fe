package jobs

import (
	"context"
	"log/slog"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/container"

	"github.com/robfig/cron/v3"
)

// transitReportSchedule runs the report every day at 06:00.
const transitReportSchedule = "0 6 * * *"

// TransitReportJob periodically logs a per-stage summary of containers that
// have not reached the terminal VERIFIE stage. Read-only operational
// reporting for the logistics team.
type TransitReportJob struct {
	handler queries.GetContainersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewTransitReportJob creates the daily transit report job.
func NewTransitReportJob(handler queries.GetContainersQueryHandler, logger *slog.Logger) *TransitReportJob {
	return &TransitReportJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "transit_report_job"),
	}
}

// Start schedules the daily report.
func (j *TransitReportJob) Start() error {
	_, err := j.cron.AddFunc(transitReportSchedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Transit report job started (running daily)")
	return nil
}

// Stop stops the transit report job.
func (j *TransitReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Transit report job stopped")
}

func (j *TransitReportJob) run() {
	ctx := context.Background()

	containers, err := j.handler.Handle(ctx, queries.NewGetContainersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Transit report job failed", "error", err)
		return
	}

	perStage := make(map[string]int)
	open := 0
	for _, c := range containers {
		if c.Status == container.StatusVerifie {
			continue
		}
		perStage[c.Status.String()]++
		open++
	}

	j.logger.InfoContext(ctx, "Transit report",
		"open_containers", open,
		"per_stage", perStage,
	)
}
