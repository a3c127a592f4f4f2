package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrRegisterShipmentCommandIsNotConstructed = errors.New(
	"RegisterShipmentCommand must be created via NewRegisterShipmentCommand constructor",
)

// RegisterShipmentCommand represents a request to register an unscheduled
// shipment. The delivery starts without a pickup date; the courier picks a
// start date later through the start transition, where office hours and the
// daily quota are enforced.
type RegisterShipmentCommand struct { //nolint:recvcheck //using for validation
	deliveryID  kernel.UUID
	recipientID kernel.UUID
	courierID   kernel.UUID
	product     string

	guard guard.ConstructorGuard
}

// NewRegisterShipmentCommand creates a command to register an unscheduled
// shipment. Validates that all IDs are valid and the product is not empty.
func NewRegisterShipmentCommand(
	deliveryID kernel.UUID,
	recipientID kernel.UUID,
	courierID kernel.UUID,
	product string,
) (RegisterShipmentCommand, error) {
	shipmentCommand := RegisterShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		shipmentCommand.setDeliveryID(deliveryID),
		shipmentCommand.setRecipientID(recipientID),
		shipmentCommand.setCourierID(courierID),
		shipmentCommand.setProduct(product),
	); err != nil {
		return RegisterShipmentCommand{}, err
	}

	return shipmentCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterShipmentCommand) Validate() error {
	return c.guard.Validate(ErrRegisterShipmentCommandIsNotConstructed)
}

// DeliveryID returns the unique identifier for the new delivery.
func (c RegisterShipmentCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// RecipientID returns the destination recipient's identifier.
func (c RegisterShipmentCommand) RecipientID() kernel.UUID {
	return c.recipientID
}

// CourierID returns the assigned courier's identifier.
func (c RegisterShipmentCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Product returns the description of the goods to deliver.
func (c RegisterShipmentCommand) Product() string {
	return c.product
}

func (c *RegisterShipmentCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.deliveryID = id
	return nil
}

func (c *RegisterShipmentCommand) setRecipientID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.recipientID = id
	return nil
}

func (c *RegisterShipmentCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.courierID = id
	return nil
}

func (c *RegisterShipmentCommand) setProduct(product string) error {
	if product == "" {
		return errs.NewValueIsRequiredError("product")
	}

	c.product = product
	return nil
}
