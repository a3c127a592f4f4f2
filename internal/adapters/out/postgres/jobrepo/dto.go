// Package jobrepo provides a database-backed queue for notification jobs.
// The queued notification strategy writes jobs here inside the business
// transaction; the background dispatcher claims due jobs and sends the mail,
// so a mail outage never fails the operation that produced the job.
package jobrepo

import (
	"time"

	"github.com/google/uuid"
)

// Job processing states.
const (
	// JobPending marks a job awaiting its next dispatch attempt.
	JobPending = iota + 1
	// JobSucceeded marks a job whose mail was sent.
	JobSucceeded
	// JobFailed marks a job abandoned after MaxAttempts failures.
	JobFailed
)

// MaxAttempts is the number of dispatch attempts before a job is abandoned.
const MaxAttempts = 5

// RetryBackoff is the delay added per prior failure before the next attempt.
const RetryBackoff = time.Minute

// JobDTO represents one queued notification job.
type JobDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(64);not null;index"`
	Payload   []byte    `gorm:"not null"`
	Status    int       `gorm:"type:int;not null;index"`
	Attempts  int       `gorm:"type:int;not null"`
	NextRunAt time.Time `gorm:"not null;index"`
	LastError string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for notification job entities.
func (JobDTO) TableName() string {
	return "notification_jobs"
}
