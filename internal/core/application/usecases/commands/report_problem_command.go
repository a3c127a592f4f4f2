package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrReportProblemCommandIsNotConstructed = errors.New(
	"ReportProblemCommand must be created via NewReportProblemCommand constructor",
)

// ReportProblemCommand represents a courier's problem report against a
// delivery. Reports are accepted in any delivery state, including completed;
// the configured minimum description length is enforced by the handler.
type ReportProblemCommand struct { //nolint:recvcheck //using for validation
	problemID   kernel.UUID
	deliveryID  kernel.UUID
	description string

	guard guard.ConstructorGuard
}

// NewReportProblemCommand creates a command to report a delivery problem.
// Validates that both IDs are valid and the description is not empty; the
// minimum length check belongs to the handler, which knows the configured
// minimum.
func NewReportProblemCommand(problemID, deliveryID kernel.UUID, description string) (ReportProblemCommand, error) {
	reportCommand := ReportProblemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		reportCommand.setProblemID(problemID),
		reportCommand.setDeliveryID(deliveryID),
		reportCommand.setDescription(description),
	); err != nil {
		return ReportProblemCommand{}, err
	}

	return reportCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportProblemCommand) Validate() error {
	return c.guard.Validate(ErrReportProblemCommandIsNotConstructed)
}

// ProblemID returns the unique identifier for the new problem report.
func (c ReportProblemCommand) ProblemID() kernel.UUID {
	return c.problemID
}

// DeliveryID returns the delivery the problem concerns.
func (c ReportProblemCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Description returns the reporter's free-text description.
func (c ReportProblemCommand) Description() string {
	return c.description
}

func (c *ReportProblemCommand) setProblemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.problemID = id
	return nil
}

func (c *ReportProblemCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.deliveryID = id
	return nil
}

func (c *ReportProblemCommand) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}

	c.description = description
	return nil
}
