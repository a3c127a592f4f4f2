// Package mail provides the SMTP implementation of the Mailer port using gomail.
package mail

import (
	"context"

	"shipping/internal/pkg/errs"

	"gopkg.in/gomail.v2"
)

// GomailSender sends plain-text emails over SMTP.
type GomailSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewGomailSender creates a mailer for the given SMTP endpoint. The from
// address is used as the sender of every message.
func NewGomailSender(host string, port int, username, password, from string) (*GomailSender, error) {
	if host == "" {
		return nil, errs.NewValueIsRequiredError("host")
	}
	if from == "" {
		return nil, errs.NewValueIsRequiredError("from")
	}

	return &GomailSender{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}, nil
}

// Send delivers one plain-text message. Dialing happens per message; the
// notification volume does not justify a pooled connection.
func (s *GomailSender) Send(_ context.Context, to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	return s.dialer.DialAndSend(m)
}
