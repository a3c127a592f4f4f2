// Package jobs provides scheduled background tasks for the shipping system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the delivery coordination service.
//
// # Available Jobs
//
// 1. NotificationDispatchJob - Polls the notification_jobs table for due mail
// jobs, sends them through the configured mailer and reschedules failures
// with a growing backoff.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(dispatchJob)
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
// The dispatch job polls every five seconds. Mail latency dominates the cycle,
// so a tighter schedule would only produce overlapping runs.
//
// # Error Handling
//
// A failed send marks the job for retry; the job is abandoned once the
// attempt limit is reached. Jobs with unroutable names or corrupt payloads
// go through the same retry path and end up abandoned.
package jobs
