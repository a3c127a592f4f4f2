// Package courier provides the Courier (deliveryman) reference entity.
//
// The shipping core existence-checks couriers and reads their contact details
// for quota errors and notifications, but does not own courier management:
// registration, avatars and credentials live outside this system.
package courier

import (
	"errors"
	"strings"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// Domain errors for courier construction.
var (
	// ErrNameIsRequired is returned when creating a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrEmailIsRequired is returned when creating a courier without an email address.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrEmailIsInvalid is returned when the email address has no mailbox/domain shape.
	ErrEmailIsInvalid = errs.NewValueIsInvalidError("email")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// Courier represents the agent assigned to physically transport deliveries.
// Name and email feed quota rejection messages and courier notifications.
type Courier struct {
	id    kernel.UUID
	name  string
	email string

	guard guard.ConstructorGuard
}

// NewCourier creates a courier reference with the given identity and contact details.
func NewCourier(id kernel.UUID, name, email string) (*Courier, error) {
	c := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setEmail(email),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Courier instance was properly constructed.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the courier's display name.
func (c *Courier) Name() string {
	return c.name
}

// Email returns the courier's notification address.
func (c *Courier) Email() string {
	return c.email
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Courier) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return ErrEmailIsInvalid
	}

	c.email = email
	return nil
}
