package mailer

import (
	"context"

	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog/log"
)

// ErrMailDisabled is returned when outbound mail is not configured.
var ErrMailDisabled = errors.New("outbound mail is disabled")

// ResendSender sends emails through the Resend API.
type ResendSender struct {
	client *resend.Client
	from   string
}

// NewResendSender creates a sender with the given API key and from address.
func NewResendSender(apiKey, from string) *ResendSender {
	return &ResendSender{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

// Send delivers one email and returns the Resend message id.
func (s *ResendSender) Send(ctx context.Context, to, subject, htmlBody string) (string, error) {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
		Html:    htmlBody,
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		log.Error().Err(err).Str("to", to).Str("subject", subject).Msg("resend delivery failed")
		return "", errors.Wrap(err, "resend send failed")
	}

	return sent.Id, nil
}
