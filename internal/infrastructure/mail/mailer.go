// Package mail holds outbound email adapters. Delivery providers are wired
// per environment; the log mailer is the development default.
package mail

import (
	"context"

	"github.com/rs/zerolog"
)

// LogMailer writes outbound mail to the log instead of delivering it. Used
// in development and test environments where no provider is configured.
type LogMailer struct {
	logger zerolog.Logger
}

func NewLogMailer(logger zerolog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

// SendPasswordReset logs the reset token. The token is only ever logged
// here, never by the auth service.
func (m *LogMailer) SendPasswordReset(ctx context.Context, to, name, resetToken string) error {
	m.logger.Info().
		Str("to", to).
		Str("name", name).
		Str("reset_token", resetToken).
		Msg("password reset email (log delivery)")
	return nil
}
