package kernel

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"shipping/internal/pkg/errs"

	"github.com/jinzhu/now"
)

// DefaultStartTolerance is the maximum drift permitted between a courier's
// reported start time and the server clock when a delivery is started.
// Admission uses the looser hour-truncated policy instead; see InPastTruncatedToHour.
const DefaultStartTolerance = 60 * time.Second

// ErrOfficeHoursAreNotConstructed indicates that an OfficeHours value was not
// created through NewOfficeHours.
var ErrOfficeHoursAreNotConstructed = errs.NewValueIsRequiredError(
	"OfficeHours must be created via NewOfficeHours",
)

// OfficeHours is a value object for the configured daily window during which
// scheduled delivery times must fall. The window is process-wide configuration,
// parsed once at startup; a malformed HH:MM string is a construction error that
// callers treat as fatal.
//
// The opening and closing boundaries are always overlaid onto the date of the
// timestamp being checked, never onto the server's current date. A delivery
// scheduled for tomorrow is therefore checked against tomorrow's window.
//
// Example:
//
//	hours, err := kernel.NewOfficeHours("08:00", "18:00")
//	if err != nil {
//	    log.Fatalf("invalid office hours: %v", err)
//	}
//	if !hours.Contains(requested) {
//	    return errs.NewScheduleIsInvalidError("start_date",
//	        "deliveries are allowed from "+hours.Describe())
//	}
type OfficeHours struct {
	openHour    int
	openMinute  int
	closeHour   int
	closeMinute int

	guard ConstructorGuard
}

// NewOfficeHours parses the opening and closing times, both given as "HH:MM".
// Returns an error if either value is malformed or if the window would close
// before it opens.
func NewOfficeHours(opensAt, closesAt string) (OfficeHours, error) {
	openHour, openMinute, err := parseClockTime(opensAt)
	if err != nil {
		return OfficeHours{}, errs.NewValueIsInvalidErrorWithCause("office hours opening", err)
	}

	closeHour, closeMinute, err := parseClockTime(closesAt)
	if err != nil {
		return OfficeHours{}, errs.NewValueIsInvalidErrorWithCause("office hours closing", err)
	}

	if closeHour*60+closeMinute <= openHour*60+openMinute {
		return OfficeHours{}, errs.NewValueIsInvalidError("office hours window closes before it opens")
	}

	return OfficeHours{
		openHour:    openHour,
		openMinute:  openMinute,
		closeHour:   closeHour,
		closeMinute: closeMinute,
		guard:       NewConstructorGuard(),
	}, nil
}

// parseClockTime splits an "HH:MM" string into its hour and minute components.
func parseClockTime(s string) (int, int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%q is not in HH:MM format", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("hour %q is not numeric: %w", parts[0], err)
	}
	if hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("hour %d is out of range", hour)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("minute %q is not numeric: %w", parts[1], err)
	}
	if minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("minute %d is out of range", minute)
	}

	return hour, minute, nil
}

// Validate ensures the OfficeHours value was created through NewOfficeHours.
func (oh OfficeHours) Validate() error {
	return oh.guard.Validate(ErrOfficeHoursAreNotConstructed)
}

// Opening returns the window's opening boundary overlaid on the date of ts.
func (oh OfficeHours) Opening(ts time.Time) time.Time {
	return overlayClockTime(ts, oh.openHour, oh.openMinute)
}

// Closing returns the window's closing boundary overlaid on the date of ts.
func (oh OfficeHours) Closing(ts time.Time) time.Time {
	return overlayClockTime(ts, oh.closeHour, oh.closeMinute)
}

// Contains reports whether ts falls within the office-hours window of its own
// calendar day. Both boundaries are inclusive.
func (oh OfficeHours) Contains(ts time.Time) bool {
	return !ts.Before(oh.Opening(ts)) && !ts.After(oh.Closing(ts))
}

// Describe returns the window as "HH:MM to HH:MM" for use in rejection messages.
func (oh OfficeHours) Describe() string {
	return fmt.Sprintf("%02d:%02d to %02d:%02d", oh.openHour, oh.openMinute, oh.closeHour, oh.closeMinute)
}

// overlayClockTime constructs a timestamp on date's calendar day with the given
// hour and minute, seconds zeroed.
func overlayClockTime(date time.Time, hour, minute int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())
}

// InPastTruncatedToHour is the admission-time past-date policy: it reports
// whether requested, truncated to the start of its hour, precedes the current
// time. A request for 10:45 therefore remains admissible until 10:00 has
// passed. Do not substitute this for the start-time policy below; the two
// tolerances are intentionally different.
func InPastTruncatedToHour(requested, current time.Time) bool {
	hourStart := overlayClockTime(requested, requested.Hour(), 0)
	return hourStart.Before(current)
}

// InPastBeyondTolerance is the courier start-time past-date policy: it reports
// whether requested precedes the current time by more than tolerance.
// DefaultStartTolerance is the configured value for delivery starts.
func InPastBeyondTolerance(requested, current time.Time, tolerance time.Duration) bool {
	return current.Sub(requested) > tolerance
}

// DayInterval returns the inclusive [00:00:00, 23:59:59.999999999] bounds of
// t's calendar day. Quota counting and the daily range predicates key off this
// interval.
func DayInterval(t time.Time) (time.Time, time.Time) {
	n := now.With(t)
	return n.BeginningOfDay(), n.EndOfDay()
}
