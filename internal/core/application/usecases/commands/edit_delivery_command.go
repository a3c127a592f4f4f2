package commands

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrEditDeliveryCommandIsNotConstructed = errors.New(
	"EditDeliveryCommand must be created via NewEditDeliveryCommand constructor",
)

// EditDeliveryChanges carries the optional fields of an admin edit. A nil
// field means "leave unchanged"; at least one field must be set.
type EditDeliveryChanges struct {
	Product     *string
	RecipientID *kernel.UUID
	CourierID   *kernel.UUID
	StartDate   *time.Time
	EndDate     *time.Time
	SignatureID *kernel.UUID
}

func (c EditDeliveryChanges) isEmpty() bool {
	return c.Product == nil &&
		c.RecipientID == nil &&
		c.CourierID == nil &&
		c.StartDate == nil &&
		c.EndDate == nil &&
		c.SignatureID == nil
}

// EditDeliveryCommand represents an administrative edit of a delivery.
// Unlike courier transitions, every field is optional and an end date can be
// recorded without a signature.
//
// Example:
//
//	start := time.Date(2024, 3, 13, 9, 0, 0, 0, time.Local)
//	cmd, err := NewEditDeliveryCommand(deliveryID, EditDeliveryChanges{
//	    StartDate: &start,
//	    CourierID: &newCourierID,
//	})
type EditDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	changes    EditDeliveryChanges

	guard guard.ConstructorGuard
}

// NewEditDeliveryCommand creates an admin edit command. Validates the
// delivery ID, that at least one change is requested and that the provided
// fields are themselves valid.
func NewEditDeliveryCommand(deliveryID kernel.UUID, changes EditDeliveryChanges) (EditDeliveryCommand, error) {
	editCommand := EditDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := editCommand.setDeliveryID(deliveryID); err != nil {
		return EditDeliveryCommand{}, err
	}

	if err := editCommand.setChanges(changes); err != nil {
		return EditDeliveryCommand{}, err
	}

	return editCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c EditDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrEditDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery to edit.
func (c EditDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Changes returns the requested field changes.
func (c EditDeliveryCommand) Changes() EditDeliveryChanges {
	return c.changes
}

func (c *EditDeliveryCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.deliveryID = id
	return nil
}

func (c *EditDeliveryCommand) setChanges(changes EditDeliveryChanges) error {
	if changes.isEmpty() {
		return errs.NewValueIsRequiredError("changes")
	}

	if changes.Product != nil && *changes.Product == "" {
		return errs.NewValueIsRequiredError("product")
	}
	if changes.RecipientID != nil {
		if err := changes.RecipientID.Validate(); err != nil {
			return err
		}
	}
	if changes.CourierID != nil {
		if err := changes.CourierID.Validate(); err != nil {
			return err
		}
	}
	if changes.SignatureID != nil {
		if err := changes.SignatureID.Validate(); err != nil {
			return err
		}
	}

	c.changes = changes
	return nil
}
