package services

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/courier"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// DefaultMaxDeliveriesPerDay is the per-courier daily pickup limit used when
// no explicit configuration is supplied.
const DefaultMaxDeliveriesPerDay = 5

// DeliveryCounter counts a courier's deliveries that consume quota on a given
// calendar day. A delivery consumes quota when it has been started on that day
// and has not been canceled; completed deliveries still count, since the
// courier already spent the pickup on them.
type DeliveryCounter interface {
	CountActiveForCourierOn(ctx context.Context, courierID kernel.UUID, day time.Time) (int64, error)
}

// QuotaChecker is a domain service enforcing the per-courier daily delivery
// limit: a courier may start at most maxPerDay deliveries within one calendar
// day, counted in the service's local timezone.
//
// Business rules:
//   - The day is the calendar day of the delivery's start date
//   - Canceled deliveries release their quota slot
//   - Completed deliveries keep their slot for the day they started
//
// Example usage:
//
//	checker := services.NewQuotaChecker(5)
//
//	err := checker.EnsureCapacity(ctx, counter, courier, startDate)
//	if errors.Is(err, errs.ErrQuotaExceeded) {
//	    // Courier already has 5 deliveries this day
//	    return
//	}
type QuotaChecker struct {
	maxPerDay int
}

// NewQuotaChecker creates a QuotaChecker with the given daily limit. A
// non-positive limit falls back to DefaultMaxDeliveriesPerDay.
func NewQuotaChecker(maxPerDay int) QuotaChecker {
	if maxPerDay <= 0 {
		maxPerDay = DefaultMaxDeliveriesPerDay
	}
	return QuotaChecker{maxPerDay: maxPerDay}
}

// MaxPerDay returns the configured daily limit.
func (q QuotaChecker) MaxPerDay() int {
	return q.maxPerDay
}

// HasCapacity reports whether the courier can take one more delivery on the
// calendar day of the given start date.
func (q QuotaChecker) HasCapacity(ctx context.Context, counter DeliveryCounter,
	courierID kernel.UUID, startDate time.Time) (bool, error) {
	count, err := counter.CountActiveForCourierOn(ctx, courierID, startDate)
	if err != nil {
		return false, err
	}
	return count < int64(q.maxPerDay), nil
}

// EnsureCapacity returns a QuotaExceededError naming the courier when the
// courier has no remaining quota on the calendar day of the given start date.
func (q QuotaChecker) EnsureCapacity(ctx context.Context, counter DeliveryCounter,
	c *courier.Courier, startDate time.Time) error {
	if err := c.Validate(); err != nil {
		return err
	}

	ok, err := q.HasCapacity(ctx, counter, c.ID(), startDate)
	if err != nil {
		return err
	}
	if !ok {
		return errs.NewQuotaExceededError(c.Name(), q.maxPerDay)
	}
	return nil
}
