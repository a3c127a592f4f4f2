package ports

import "context"

// Mailer sends a single email message to a courier. Implementations talk to
// an SMTP relay; the notification layer composes subjects and bodies.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
