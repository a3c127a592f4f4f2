package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for scheduling and quota rejections.
var (
	ErrScheduleIsInvalid = errors.New("schedule is invalid")
	ErrQuotaExceeded     = errors.New("daily quota exceeded")
)

// ScheduleIsInvalidError indicates that a requested timestamp violates the
// scheduling rules: it is either in the past or outside the office-hours window.
// Reason carries the human-readable explanation, including the configured window
// when the office-hours check is the one that failed.
type ScheduleIsInvalidError struct {
	ParamName string
	Reason    string
	Cause     error
}

// NewScheduleIsInvalidError creates a ScheduleIsInvalidError without an underlying cause.
func NewScheduleIsInvalidError(paramName, reason string) *ScheduleIsInvalidError {
	return &ScheduleIsInvalidError{
		ParamName: paramName,
		Reason:    reason,
	}
}

// NewScheduleIsInvalidErrorWithCause creates a ScheduleIsInvalidError wrapping an underlying cause.
func NewScheduleIsInvalidErrorWithCause(paramName, reason string, cause error) *ScheduleIsInvalidError {
	return &ScheduleIsInvalidError{
		ParamName: paramName,
		Reason:    reason,
		Cause:     cause,
	}
}

func (e *ScheduleIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s: %s (cause: %s)", ErrScheduleIsInvalid, e.ParamName, e.Reason, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s: %s", ErrScheduleIsInvalid, e.ParamName, e.Reason))
}

func (e *ScheduleIsInvalidError) Unwrap() error {
	return ErrScheduleIsInvalid
}

// QuotaExceededError indicates that a courier already carries the maximum number
// of non-cancelled deliveries permitted for a single calendar day.
type QuotaExceededError struct {
	CourierName string
	Limit       int
	Cause       error
}

// NewQuotaExceededError creates a QuotaExceededError without an underlying cause.
func NewQuotaExceededError(courierName string, limit int) *QuotaExceededError {
	return &QuotaExceededError{
		CourierName: courierName,
		Limit:       limit,
	}
}

// NewQuotaExceededErrorWithCause creates a QuotaExceededError wrapping an underlying cause.
func NewQuotaExceededErrorWithCause(courierName string, limit int, cause error) *QuotaExceededError {
	return &QuotaExceededError{
		CourierName: courierName,
		Limit:       limit,
		Cause:       cause,
	}
}

func (e *QuotaExceededError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s has reached the limit of %d deliveries per day (cause: %s)",
			ErrQuotaExceeded, e.CourierName, e.Limit, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s has reached the limit of %d deliveries per day",
		ErrQuotaExceeded, e.CourierName, e.Limit))
}

func (e *QuotaExceededError) Unwrap() error {
	return ErrQuotaExceeded
}
