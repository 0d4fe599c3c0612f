// Package mailer abstracts outbound email delivery.
package mailer

import "context"

// Sender delivers a single email. Implementations report delivery as a
// message id or an error; the caller records the outcome, it never retries.
type Sender interface {
	Send(ctx context.Context, to, subject, htmlBody string) (messageID string, err error)
}

// Disabled is a Sender used when outbound mail is turned off.
type Disabled struct{}

// Send reports every delivery as rejected.
func (Disabled) Send(_ context.Context, _, _, _ string) (string, error) {
	return "", ErrMailDisabled
}
