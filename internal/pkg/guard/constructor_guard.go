// Package guard provides a defensive programming pattern that ensures value objects
// and entities are only created through their designated constructor functions.
// Embedding a ConstructorGuard in a struct makes zero-value instances detectable,
// so domain objects can refuse to operate when they bypass validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by Validate
// when a nil validation error is supplied. This ensures validation always
// fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The guard maintains
// an internal flag that is only set when the object is created through its
// constructor; a zero-value struct fails validation.
//
// Example:
//
//	type ReportProblemCommand struct {
//	    deliveryID  kernel.UUID
//	    description string
//	    guard       guard.ConstructorGuard
//	}
//
//	func NewReportProblemCommand(...) (ReportProblemCommand, error) {
//	    // validate inputs...
//	    return ReportProblemCommand{..., guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c ReportProblemCommand) Validate() error {
//	    return c.guard.Validate(ErrReportProblemCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks its holder as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the holder was built through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
