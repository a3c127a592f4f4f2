package commands

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrAdmitDeliveryCommandIsNotConstructed = errors.New(
	"AdmitDeliveryCommand must be created via NewAdmitDeliveryCommand constructor",
)

// AdmitDeliveryCommand represents a request to admit a new delivery with an
// optional pickup schedule. Admission validates the schedule against office
// hours and the courier's daily quota before the record is created.
//
// Example:
//
//	deliveryID := kernel.NewUUID()
//	start := time.Date(2024, 3, 13, 9, 0, 0, 0, time.Local)
//	cmd, err := NewAdmitDeliveryCommand(deliveryID, recipientID, courierID, "Office chair", &start)
//	if err != nil {
//	    return fmt.Errorf("invalid admission data: %w", err)
//	}
//
//	response, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to admit delivery: %w", err)
//	}
//	fmt.Printf("Delivery %s admitted in %s state", deliveryID, response.Status)
type AdmitDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID  kernel.UUID
	recipientID kernel.UUID
	courierID   kernel.UUID
	product     string
	startDate   *time.Time

	guard guard.ConstructorGuard
}

// NewAdmitDeliveryCommand creates a command to admit a delivery. startDate is
// optional: nil admits an unscheduled delivery that the courier starts later.
// Validates that all IDs are valid and the product description is not empty.
func NewAdmitDeliveryCommand(
	deliveryID kernel.UUID,
	recipientID kernel.UUID,
	courierID kernel.UUID,
	product string,
	startDate *time.Time,
) (AdmitDeliveryCommand, error) {
	admitCommand := AdmitDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		admitCommand.setDeliveryID(deliveryID),
		admitCommand.setRecipientID(recipientID),
		admitCommand.setCourierID(courierID),
		admitCommand.setProduct(product),
	); err != nil {
		return AdmitDeliveryCommand{}, err
	}

	if startDate != nil {
		start := *startDate
		admitCommand.startDate = &start
	}

	return admitCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdmitDeliveryCommandIsNotConstructed if validation fails.
func (c AdmitDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAdmitDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the unique identifier for the new delivery.
func (c AdmitDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// RecipientID returns the destination recipient's identifier.
func (c AdmitDeliveryCommand) RecipientID() kernel.UUID {
	return c.recipientID
}

// CourierID returns the assigned courier's identifier.
func (c AdmitDeliveryCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Product returns the description of the goods to deliver.
func (c AdmitDeliveryCommand) Product() string {
	return c.product
}

// StartDate returns the requested pickup time, or nil for an unscheduled
// admission.
func (c AdmitDeliveryCommand) StartDate() *time.Time {
	return c.startDate
}

func (c *AdmitDeliveryCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.deliveryID = id
	return nil
}

func (c *AdmitDeliveryCommand) setRecipientID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.recipientID = id
	return nil
}

func (c *AdmitDeliveryCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.courierID = id
	return nil
}

func (c *AdmitDeliveryCommand) setProduct(product string) error {
	if product == "" {
		return errs.NewValueIsRequiredError("product")
	}

	c.product = product
	return nil
}
