// Package delivery provides the Delivery aggregate root and its lifecycle
// state machine for the shipping system.
//
// The package includes:
//   - Delivery: The aggregate root tracking a delivery from admission through
//     transit to completion or cancellation
//   - Status: The lifecycle state machine (Created, InTransit, Completed, Canceled)
//
// Key business rules:
//   - A delivery's end date must fall strictly after its start date
//   - Completion requires a recipient signature reference
//   - Cancellation is a terminal soft-delete; completed and cancelled are
//     mutually exclusive outcomes and no transition leaves either state
//   - Admin edits carry a weaker contract than courier transitions: fields are
//     optional and a signature is not required to set an end date
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package delivery
