// Package problem provides the DeliveryProblem entity: a free-text complaint
// tied to a delivery, which an operator may resolve by cancelling the delivery.
//
// Problems are append-only: they are created when reported and removed when an
// operator resolves them through cancellation, never mutated in between. Many
// problems may reference one delivery, and a problem can be reported against a
// delivery in any state, including an already-completed one.
package problem

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// DefaultMinDescriptionLength is the minimum problem description length used
// when no explicit configuration is supplied.
const DefaultMinDescriptionLength = 10

// ErrProblemIsNotConstructed is returned when a Problem instance was not
// created through the NewProblem constructor.
var ErrProblemIsNotConstructed = errors.New("Problem must be created via NewProblem constructor")

// Problem is a delivery problem report.
type Problem struct {
	id          kernel.UUID
	deliveryID  kernel.UUID
	description string

	guard guard.ConstructorGuard
}

// NewProblem creates a problem report for the given delivery. The description
// must be at least minDescriptionLength characters long; a non-positive
// minimum falls back to DefaultMinDescriptionLength.
func NewProblem(id, deliveryID kernel.UUID, description string, minDescriptionLength int) (*Problem, error) {
	if minDescriptionLength <= 0 {
		minDescriptionLength = DefaultMinDescriptionLength
	}

	p := &Problem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setDeliveryID(deliveryID),
		p.setDescription(description, minDescriptionLength),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProblem reconstructs a problem from persistence without re-applying
// the configured description minimum, which may have changed since the report
// was stored.
func RestoreProblem(id, deliveryID kernel.UUID, description string) (*Problem, error) {
	p := &Problem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setDeliveryID(deliveryID),
	); err != nil {
		return nil, err
	}

	if description == "" {
		return nil, errs.NewValueIsRequiredError("description")
	}
	p.description = description

	return p, nil
}

// Validate ensures the Problem instance was properly constructed.
func (p *Problem) Validate() error {
	if p == nil {
		return ErrProblemIsNotConstructed
	}
	return p.guard.Validate(ErrProblemIsNotConstructed)
}

// ID returns the problem's unique identifier.
func (p *Problem) ID() kernel.UUID {
	return p.id
}

// DeliveryID returns the delivery this problem concerns.
func (p *Problem) DeliveryID() kernel.UUID {
	return p.deliveryID
}

// Description returns the reporter's free-text description.
func (p *Problem) Description() string {
	return p.description
}

func (p *Problem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Problem) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.deliveryID = id
	return nil
}

func (p *Problem) setDescription(description string, minLength int) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	if utf8.RuneCountInString(description) < minLength {
		return errs.NewValueIsInvalidErrorWithCause("description",
			fmt.Errorf("must be at least %d characters long", minLength))
	}

	p.description = description
	return nil
}
