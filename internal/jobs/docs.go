// Package jobs provides scheduled background tasks for the logistics
// dashboard, implemented with github.com/robfig/cron/v3.
//
// The only job today is TransitReportJob: a daily, read-only summary of
// containers that have not reached the VERIFIE stage, written to the
// application log for the operations team. Jobs never mutate workflow
// state; every status change goes through a command handler.
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(getContainersHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
