package notifications

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// Background job names for queued notifications. Workers route persisted
// jobs back to a notification kind by these names.
const (
	NewDeliveryMailJob          = "NewDeliveryMail"
	DeliveryCancellationMailJob = "DeliveryCancellationMail"
)

// Kind identifies the lifecycle event a notification describes.
type Kind int

const (
	// KindUnknown is the zero value and not a valid notification kind.
	KindUnknown Kind = iota
	// KindNewAssignment notifies a courier about a newly assigned delivery.
	KindNewAssignment
	// KindCancellation notifies a courier that a delivery was canceled
	// because of a reported problem.
	KindCancellation
)

// Validate checks that the kind is one of the defined notification kinds.
func (k Kind) Validate() error {
	switch k {
	case KindNewAssignment, KindCancellation:
		return nil
	case KindUnknown:
	}
	return errs.NewValueIsInvalidError("kind")
}

// JobName returns the background job name used when the notification is
// queued instead of sent directly.
func (k Kind) JobName() string {
	switch k {
	case KindNewAssignment:
		return NewDeliveryMailJob
	case KindCancellation:
		return DeliveryCancellationMailJob
	case KindUnknown:
	}
	return ""
}

// KindFromJobName resolves a persisted job name back to its notification
// kind. Workers use it to route stored jobs.
func KindFromJobName(name string) (Kind, error) {
	switch name {
	case NewDeliveryMailJob:
		return KindNewAssignment, nil
	case DeliveryCancellationMailJob:
		return KindCancellation, nil
	}
	return KindUnknown, errs.NewValueIsInvalidErrorWithCause("jobName",
		fmt.Errorf("unknown notification job %q", name))
}

// Notification carries everything needed to compose a courier email. The
// struct is JSON-serialized as the payload of queued jobs, so field changes
// must stay backward compatible with jobs already stored.
type Notification struct {
	Kind Kind `json:"-"`

	CourierName  string `json:"courier_name"`
	CourierEmail string `json:"courier_email"`
	DeliveryID   string `json:"delivery_id"`
	Product      string `json:"product"`
	Reason       string `json:"reason,omitempty"`
}

// Recipient returns the RFC 5322 style address line for the courier.
func (n Notification) Recipient() string {
	return fmt.Sprintf("%s <%s>", n.CourierName, n.CourierEmail)
}

// Compose builds the subject and body for the notification's kind.
func (n Notification) Compose() (subject, body string) {
	switch n.Kind {
	case KindNewAssignment:
		subject = fmt.Sprintf("Hello %s, you have a new delivery!", n.CourierName)
		body = fmt.Sprintf("You have a new delivery to carry out: %q (delivery #%s).",
			n.Product, n.DeliveryID)
	case KindCancellation:
		subject = "Delivery canceled!"
		body = fmt.Sprintf("Hello %s, delivery #%s (%q) was canceled due to: %s",
			n.CourierName, n.DeliveryID, n.Product, n.Reason)
	case KindUnknown:
	}
	return subject, body
}
