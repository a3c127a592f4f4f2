package delivery

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
//
// State transitions:
//
//	Created ──> InTransit ──> Completed
//	   │            │
//	   └────────────┴──> Canceled
//
// Completed and Canceled are terminal: no transition leaves either state,
// and the two are mutually exclusive outcomes.
//
// Status is stored explicitly rather than derived from the nullable
// timestamps, because the scheduled admission flow records a requested
// start date on a delivery that is still Created: the courier has not
// begun transit, the date is a schedule. Only the Start transition moves
// a delivery to InTransit.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Created is the initial status: the delivery has been admitted but the
	// assigned courier has not started transit. A Created delivery may carry
	// a scheduled start date.
	Created

	// InTransit indicates the courier has started the delivery.
	InTransit

	// Completed indicates the delivery has been handed over: end date and
	// recipient signature are set. Terminal.
	Completed

	// Canceled indicates the delivery was soft-cancelled, either by an admin
	// action or by resolving a problem report. Terminal.
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Created:   "Created",
		InTransit: "InTransit",
		Completed: "Completed",
		Canceled:  "Canceled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "Created",
		InTransit: "InTransit",
		Completed: "Completed",
		Canceled:  "Canceled",
	}
}

// Validate checks if the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer; safe to call on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
