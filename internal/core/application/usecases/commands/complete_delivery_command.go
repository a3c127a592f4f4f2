package commands

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand represents a courier's request to finish a delivery
// with the recipient's signature as proof of handover.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID  kernel.UUID
	courierID   kernel.UUID
	endDate     time.Time
	signatureID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command to complete a delivery.
// Validates that all IDs are valid and the end date is set.
func NewCompleteDeliveryCommand(
	deliveryID kernel.UUID,
	courierID kernel.UUID,
	endDate time.Time,
	signatureID kernel.UUID,
) (CompleteDeliveryCommand, error) {
	completeCommand := CompleteDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		completeCommand.setDeliveryID(deliveryID),
		completeCommand.setCourierID(courierID),
		completeCommand.setEndDate(endDate),
		completeCommand.setSignatureID(signatureID),
	); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return completeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery to complete.
func (c CompleteDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// CourierID returns the courier performing the completion.
func (c CompleteDeliveryCommand) CourierID() kernel.UUID {
	return c.courierID
}

// EndDate returns the handover time.
func (c CompleteDeliveryCommand) EndDate() time.Time {
	return c.endDate
}

// SignatureID returns the reference to the recipient's signature file.
func (c CompleteDeliveryCommand) SignatureID() kernel.UUID {
	return c.signatureID
}

func (c *CompleteDeliveryCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.deliveryID = id
	return nil
}

func (c *CompleteDeliveryCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.courierID = id
	return nil
}

func (c *CompleteDeliveryCommand) setEndDate(endDate time.Time) error {
	if endDate.IsZero() {
		return errs.NewValueIsRequiredError("endDate")
	}

	c.endDate = endDate
	return nil
}

func (c *CompleteDeliveryCommand) setSignatureID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.signatureID = id
	return nil
}
