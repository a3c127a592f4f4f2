package jobrepo

import (
	"context"
	"time"

	"shipping/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormJobRepository implements the job queue on top of the notification_jobs
// table. Enqueue satisfies ports.JobQueue; the remaining methods serve the
// background dispatcher.
type GormJobRepository struct {
	db *gorm.DB
}

// NewGormJobRepository creates a new GORM job repository.
func NewGormJobRepository(db *gorm.DB) *GormJobRepository {
	return &GormJobRepository{db: db}
}

// Enqueue stores a job under the given name, due immediately.
func (r *GormJobRepository) Enqueue(ctx context.Context, jobName string, payload []byte) error {
	if jobName == "" {
		return errs.NewValueIsRequiredError("jobName")
	}
	if len(payload) == 0 {
		return errs.NewValueIsRequiredError("payload")
	}

	dto := JobDTO{
		ID:        uuid.New(),
		Name:      jobName,
		Payload:   payload,
		Status:    JobPending,
		Attempts:  0,
		NextRunAt: time.Now(),
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// Due returns up to limit pending jobs whose next run time has passed,
// oldest first.
func (r *GormJobRepository) Due(ctx context.Context, now time.Time, limit int) ([]JobDTO, error) {
	var dtos []JobDTO
	err := r.db.WithContext(ctx).
		Where("status = ?", JobPending).
		Where("next_run_at <= ?", now).
		Order("next_run_at").
		Limit(limit).
		Find(&dtos).
		Error
	if err != nil {
		return nil, err
	}

	return dtos, nil
}

// MarkSucceeded records a successful dispatch.
func (r *GormJobRepository) MarkSucceeded(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&JobDTO{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     JobSucceeded,
			"last_error": "",
		}).
		Error
}

// MarkFailed records a failed dispatch attempt. The job is rescheduled with a
// backoff that grows linearly with the attempt count, until MaxAttempts is
// reached and the job is abandoned.
func (r *GormJobRepository) MarkFailed(ctx context.Context, job JobDTO, cause error, now time.Time) error {
	attempts := job.Attempts + 1

	status := JobPending
	if attempts >= MaxAttempts {
		status = JobFailed
	}

	return r.db.WithContext(ctx).
		Model(&JobDTO{}).
		Where("id = ?", job.ID).
		Updates(map[string]any{
			"status":      status,
			"attempts":    attempts,
			"next_run_at": now.Add(time.Duration(attempts) * RetryBackoff),
			"last_error":  cause.Error(),
		}).
		Error
}
