package commands

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrStartDeliveryCommandIsNotConstructed = errors.New(
	"StartDeliveryCommand must be created via NewStartDeliveryCommand constructor",
)

// StartDeliveryCommand represents a courier's request to start transit for an
// assigned delivery at a given pickup time.
type StartDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	courierID  kernel.UUID
	startDate  time.Time

	guard guard.ConstructorGuard
}

// NewStartDeliveryCommand creates a command to start a delivery. Validates
// that both IDs are valid and the start date is set.
func NewStartDeliveryCommand(
	deliveryID kernel.UUID,
	courierID kernel.UUID,
	startDate time.Time,
) (StartDeliveryCommand, error) {
	startCommand := StartDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		startCommand.setDeliveryID(deliveryID),
		startCommand.setCourierID(courierID),
		startCommand.setStartDate(startDate),
	); err != nil {
		return StartDeliveryCommand{}, err
	}

	return startCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c StartDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrStartDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery to start.
func (c StartDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// CourierID returns the courier performing the start.
func (c StartDeliveryCommand) CourierID() kernel.UUID {
	return c.courierID
}

// StartDate returns the requested pickup time.
func (c StartDeliveryCommand) StartDate() time.Time {
	return c.startDate
}

func (c *StartDeliveryCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.deliveryID = id
	return nil
}

func (c *StartDeliveryCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.courierID = id
	return nil
}

func (c *StartDeliveryCommand) setStartDate(startDate time.Time) error {
	if startDate.IsZero() {
		return errs.NewValueIsRequiredError("startDate")
	}

	c.startDate = startDate
	return nil
}
