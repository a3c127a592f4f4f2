// Package notifications composes and dispatches courier-facing emails for
// delivery lifecycle events.
//
// The package includes:
//   - Notification: The payload describing who to notify and about what
//   - Kind: The notification kinds (new assignment, cancellation) and their
//     background job names
//   - DirectDispatcher: Sends the email synchronously through a Mailer
//   - QueuedDispatcher: Persists the email as a background job for a worker
//
// Dispatch is fire-and-forget: a mail or queue failure is logged and never
// propagated, so notification trouble cannot fail the business operation
// that produced it.
package notifications
