package mailer

import (
	"context"

	"bakery/internal/domain"
	apperrors "bakery/internal/errors"
)

// DisabledTransport stands in when SMTP_HOST is unset. Every send fails
// with a ConfigurationError.
type DisabledTransport struct{}

func (DisabledTransport) Send(ctx context.Context, msg domain.Message) error {
	return apperrors.NewConfigurationError("SMTP_HOST", "email delivery is not configured")
}
