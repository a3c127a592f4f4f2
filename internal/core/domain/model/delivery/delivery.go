package delivery

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// Domain errors for delivery lifecycle transitions.
var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
	// created through NewDelivery or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")
	// ErrProductIsRequired is returned when creating a delivery without a product description.
	ErrProductIsRequired = errs.NewValueIsRequiredError("product")
	// ErrDeliveryAlreadyStarted is returned when starting a delivery whose start date is already set.
	ErrDeliveryAlreadyStarted = errors.New("delivery has already been started")
	// ErrDeliveryAlreadyCompleted is returned when transitioning a delivery whose end date is already set.
	ErrDeliveryAlreadyCompleted = errors.New("delivery has already been completed")
	// ErrDeliveryAlreadyCanceled is returned for any transition attempted after cancellation.
	ErrDeliveryAlreadyCanceled = errors.New("delivery has already been canceled")
	// ErrDeliveryNotStarted is returned when completing a delivery that was never started.
	ErrDeliveryNotStarted = errors.New("delivery has not been started")
	// ErrEndBeforeStart is returned when the end date does not fall strictly after the start date.
	ErrEndBeforeStart = errors.New("end date must be strictly after start date")
)

// Delivery is the aggregate root for a single delivery record. It owns the
// lifecycle state machine: admission creates it, the assigned courier starts
// and completes it, and an admin action or problem resolution cancels it.
//
// Invariants:
//   - The end date, if set, falls strictly after the start date.
//   - Cancellation and completion are mutually exclusive terminal outcomes.
//   - Completion requires a signature reference.
//   - Deliveries are never deleted, only soft-cancelled.
//
// A Created delivery may already carry a start date: the scheduled admission
// flow records the requested date up front, while the shipment flow leaves it
// nil until the courier's Start transition sets it. See Status.
type Delivery struct {
	id          kernel.UUID
	product     string
	recipientID kernel.UUID
	courierID   kernel.UUID
	startDate   *time.Time
	endDate     *time.Time
	signatureID *kernel.UUID
	canceledAt  *time.Time
	status      Status

	guard guard.ConstructorGuard
}

// NewDelivery creates a delivery in Created state. startDate is optional: the
// scheduled admission flow supplies it up front, the shipment flow leaves it
// nil until the courier starts transit.
func NewDelivery(
	id kernel.UUID,
	recipientID kernel.UUID,
	courierID kernel.UUID,
	product string,
	startDate *time.Time,
) (*Delivery, error) {
	d := &Delivery{
		status: Created,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setRecipientID(recipientID),
		d.setCourierID(courierID),
		d.setProduct(product),
	); err != nil {
		return nil, err
	}

	if startDate != nil {
		start := *startDate
		d.startDate = &start
	}

	return d, nil
}

// RestoreDelivery reconstructs a delivery from persistence, including its
// terminal states. The ordering and exclusivity invariants are re-checked so
// corrupted rows surface as errors instead of invalid aggregates.
func RestoreDelivery(
	id kernel.UUID,
	recipientID kernel.UUID,
	courierID kernel.UUID,
	product string,
	status Status,
	startDate *time.Time,
	endDate *time.Time,
	signatureID *kernel.UUID,
	canceledAt *time.Time,
) (*Delivery, error) {
	d, err := NewDelivery(id, recipientID, courierID, product, startDate)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	d.status = status

	if endDate != nil {
		if startDate == nil {
			return nil, ErrDeliveryNotStarted
		}
		if !endDate.After(*startDate) {
			return nil, ErrEndBeforeStart
		}
		end := *endDate
		d.endDate = &end
	}

	if signatureID != nil {
		sig := *signatureID
		d.signatureID = &sig
	}

	if canceledAt != nil {
		if endDate != nil {
			return nil, ErrDeliveryAlreadyCompleted
		}
		at := *canceledAt
		d.canceledAt = &at
	}

	return d, nil
}

// Validate ensures the Delivery instance was properly constructed.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// IsEqual compares two deliveries by their unique identifiers.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// Product returns the product description.
func (d *Delivery) Product() string {
	return d.product
}

// RecipientID returns the recipient reference.
func (d *Delivery) RecipientID() kernel.UUID {
	return d.recipientID
}

// CourierID returns the assigned courier reference.
func (d *Delivery) CourierID() kernel.UUID {
	return d.courierID
}

// StartDate returns the transit start timestamp, nil while the delivery is Created.
func (d *Delivery) StartDate() *time.Time {
	return d.startDate
}

// EndDate returns the completion timestamp, nil until the delivery is Completed.
func (d *Delivery) EndDate() *time.Time {
	return d.endDate
}

// SignatureID returns the recipient signature reference, nil until completion.
func (d *Delivery) SignatureID() *kernel.UUID {
	return d.signatureID
}

// CanceledAt returns the cancellation timestamp, nil unless the delivery is Canceled.
func (d *Delivery) CanceledAt() *time.Time {
	return d.canceledAt
}

// Status returns the current lifecycle state.
func (d *Delivery) Status() Status {
	return d.status
}

// IsCanceled reports whether the delivery has been soft-cancelled.
func (d *Delivery) IsCanceled() bool {
	return d.canceledAt != nil
}

// IsCompleted reports whether the delivery has been handed over.
func (d *Delivery) IsCompleted() bool {
	return d.endDate != nil
}

// IsStarted reports whether the courier has begun transit.
func (d *Delivery) IsStarted() bool {
	return d.startDate != nil
}

// IsAssignedTo reports whether the delivery belongs to the given courier.
func (d *Delivery) IsAssignedTo(courierID kernel.UUID) bool {
	return d.courierID.IsEqual(courierID)
}

// Start transitions the delivery to InTransit by recording the start date.
// Fails on cancelled deliveries and on repeated starts.
func (d *Delivery) Start(at time.Time) error {
	if d.canceledAt != nil {
		return ErrDeliveryAlreadyCanceled
	}
	if d.startDate != nil {
		return ErrDeliveryAlreadyStarted
	}

	start := at
	d.startDate = &start
	d.status = InTransit
	return nil
}

// Complete transitions the delivery to Completed, recording the end date and
// the recipient signature. The end date must fall strictly after the start date.
func (d *Delivery) Complete(at time.Time, signatureID kernel.UUID) error {
	if d.canceledAt != nil {
		return ErrDeliveryAlreadyCanceled
	}
	if d.endDate != nil {
		return ErrDeliveryAlreadyCompleted
	}
	if d.startDate == nil {
		return ErrDeliveryNotStarted
	}
	if !at.After(*d.startDate) {
		return ErrEndBeforeStart
	}
	if err := signatureID.Validate(); err != nil {
		return err
	}

	end := at
	d.endDate = &end
	d.signatureID = &signatureID
	d.status = Completed
	return nil
}

// Cancel transitions the delivery to the terminal Canceled state.
// Completed deliveries cannot be cancelled; the two outcomes are exclusive.
func (d *Delivery) Cancel(at time.Time) error {
	if d.canceledAt != nil {
		return ErrDeliveryAlreadyCanceled
	}
	if d.endDate != nil {
		return ErrDeliveryAlreadyCompleted
	}

	canceled := at
	d.canceledAt = &canceled
	d.status = Canceled
	return nil
}

// Reschedule replaces the start date of a still-open delivery. Used by the
// admin edit flow, which re-runs the schedule checks before calling this.
func (d *Delivery) Reschedule(start time.Time) error {
	if err := d.ensureOpen(); err != nil {
		return err
	}

	s := start
	d.startDate = &s
	return nil
}

// SetEndDate records the end date on a still-open delivery without requiring a
// signature. Admin edits intentionally have this weaker contract than Complete.
func (d *Delivery) SetEndDate(end time.Time) error {
	if d.canceledAt != nil {
		return ErrDeliveryAlreadyCanceled
	}
	if d.startDate == nil {
		return ErrDeliveryNotStarted
	}
	if !end.After(*d.startDate) {
		return ErrEndBeforeStart
	}

	e := end
	d.endDate = &e
	d.status = Completed
	return nil
}

// ChangeProduct replaces the product description on a still-open delivery.
func (d *Delivery) ChangeProduct(product string) error {
	if err := d.ensureOpen(); err != nil {
		return err
	}
	if product == "" {
		return ErrProductIsRequired
	}

	d.product = product
	return nil
}

// ChangeRecipient reassigns the delivery to another recipient.
func (d *Delivery) ChangeRecipient(recipientID kernel.UUID) error {
	if err := d.ensureOpen(); err != nil {
		return err
	}
	return d.setRecipientID(recipientID)
}

// ChangeCourier reassigns the delivery to another courier. Callers re-run the
// quota check for the new courier before invoking this.
func (d *Delivery) ChangeCourier(courierID kernel.UUID) error {
	if err := d.ensureOpen(); err != nil {
		return err
	}
	return d.setCourierID(courierID)
}

// AttachSignature sets the signature reference on a still-open delivery.
func (d *Delivery) AttachSignature(signatureID kernel.UUID) error {
	if err := d.ensureOpen(); err != nil {
		return err
	}
	if err := signatureID.Validate(); err != nil {
		return err
	}

	sig := signatureID
	d.signatureID = &sig
	return nil
}

// ensureOpen rejects edits on deliveries in a terminal state.
func (d *Delivery) ensureOpen() error {
	if d.canceledAt != nil {
		return ErrDeliveryAlreadyCanceled
	}
	if d.endDate != nil {
		return ErrDeliveryAlreadyCompleted
	}
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setRecipientID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.recipientID = id
	return nil
}

func (d *Delivery) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.courierID = id
	return nil
}

func (d *Delivery) setProduct(product string) error {
	if product == "" {
		return ErrProductIsRequired
	}
	d.product = product
	return nil
}
