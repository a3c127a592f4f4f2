package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrResolveProblemCommandIsNotConstructed = errors.New(
	"ResolveProblemCommand must be created via NewResolveProblemCommand constructor",
)

// ResolveProblemCommand represents an operator resolving a problem report by
// cancelling the delivery it concerns. The problem record is removed and the
// courier receives exactly one cancellation notification.
type ResolveProblemCommand struct { //nolint:recvcheck //using for validation
	problemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewResolveProblemCommand creates a command to resolve a problem through
// cancellation.
func NewResolveProblemCommand(problemID kernel.UUID) (ResolveProblemCommand, error) {
	resolveCommand := ResolveProblemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := resolveCommand.setProblemID(problemID); err != nil {
		return ResolveProblemCommand{}, err
	}

	return resolveCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveProblemCommand) Validate() error {
	return c.guard.Validate(ErrResolveProblemCommandIsNotConstructed)
}

// ProblemID returns the problem report to resolve.
func (c ResolveProblemCommand) ProblemID() kernel.UUID {
	return c.problemID
}

func (c *ResolveProblemCommand) setProblemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.problemID = id
	return nil
}
