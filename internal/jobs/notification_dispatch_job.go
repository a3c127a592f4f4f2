package jobs

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"shipping/internal/adapters/out/postgres/jobrepo"
	"shipping/internal/core/ports"
	"shipping/internal/notifications"

	"github.com/robfig/cron/v3"
)

// dispatchBatchSize caps how many due jobs one polling cycle processes.
const dispatchBatchSize = 20

// NotificationDispatchJob drains the notification job queue. Runs every five
// seconds, claims due jobs and sends the corresponding courier emails.
type NotificationDispatchJob struct {
	queue  *jobrepo.GormJobRepository
	mailer ports.Mailer
	cron   *cron.Cron
	logger *slog.Logger
}

// NewNotificationDispatchJob creates a job that sends queued courier mail.
func NewNotificationDispatchJob(
	queue *jobrepo.GormJobRepository,
	mailer ports.Mailer,
	logger *slog.Logger,
) *NotificationDispatchJob {
	return &NotificationDispatchJob{
		queue:  queue,
		mailer: mailer,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "notification_dispatch_job"),
	}
}

// Start begins polling the queue every five seconds.
func (j *NotificationDispatchJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()
		if err := j.dispatchDue(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Notification dispatch cycle failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification dispatch job started (polling every five seconds)")
	return nil
}

// Stop stops the notification dispatch job.
func (j *NotificationDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification dispatch job stopped")
}

// dispatchDue claims one batch of due jobs and processes them in order.
// Individual job failures are recorded for retry and do not abort the batch.
func (j *NotificationDispatchJob) dispatchDue(ctx context.Context) error {
	due, err := j.queue.Due(ctx, time.Now(), dispatchBatchSize)
	if err != nil {
		return err
	}

	for _, job := range due {
		if sendErr := j.send(ctx, job); sendErr != nil {
			j.logger.WarnContext(ctx, "Notification job failed",
				"job_id", job.ID,
				"job_name", job.Name,
				"attempts", job.Attempts+1,
				"error", sendErr)

			if markErr := j.queue.MarkFailed(ctx, job, sendErr, time.Now()); markErr != nil {
				return markErr
			}
			continue
		}

		if markErr := j.queue.MarkSucceeded(ctx, job.ID); markErr != nil {
			return markErr
		}
	}

	return nil
}

// send routes one stored job back to its notification kind and mails it.
func (j *NotificationDispatchJob) send(ctx context.Context, job jobrepo.JobDTO) error {
	kind, err := notifications.KindFromJobName(job.Name)
	if err != nil {
		return err
	}

	var n notifications.Notification
	if err = json.Unmarshal(job.Payload, &n); err != nil {
		return err
	}
	n.Kind = kind

	subject, body := n.Compose()
	return j.mailer.Send(ctx, n.Recipient(), subject, body)
}
