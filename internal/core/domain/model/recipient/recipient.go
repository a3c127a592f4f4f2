// Package recipient provides the Recipient reference entity.
//
// Recipients are existence-checked and summarized for display on admission
// responses; full recipient management (address book maintenance) is outside
// this system.
package recipient

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// Domain errors for recipient construction.
var (
	// ErrNameIsRequired is returned when creating a recipient without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrRecipientIsNotConstructed is returned when using an improperly initialized Recipient.
	ErrRecipientIsNotConstructed = errors.New("Recipient must be created via NewRecipient constructor")
)

// Recipient represents the destination party of a delivery.
type Recipient struct {
	id      kernel.UUID
	name    string
	address string

	guard guard.ConstructorGuard
}

// NewRecipient creates a recipient reference. The address is a free-form
// summary line; it may be empty for recipients registered before addresses
// were captured.
func NewRecipient(id kernel.UUID, name, address string) (*Recipient, error) {
	r := &Recipient{
		guard: guard.NewConstructorGuard(),
	}

	if err := r.setID(id); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}

	r.name = name
	r.address = address
	return r, nil
}

// Validate ensures the Recipient instance was properly constructed.
func (r *Recipient) Validate() error {
	if r == nil {
		return ErrRecipientIsNotConstructed
	}
	return r.guard.Validate(ErrRecipientIsNotConstructed)
}

// ID returns the recipient's unique identifier.
func (r *Recipient) ID() kernel.UUID {
	return r.id
}

// Name returns the recipient's display name.
func (r *Recipient) Name() string {
	return r.name
}

// Address returns the recipient's address summary line.
func (r *Recipient) Address() string {
	return r.address
}

func (r *Recipient) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}
