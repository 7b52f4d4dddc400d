package mailer

import (
	"context"

	"github.com/mjardin/docshare/internal/logger"
)

// logMailer writes messages to the log instead of delivering them. Used in
// local development and tests, where no SMTP server is configured.
type logMailer struct {
	baseURL string
	logger  *logger.Logger
}

// NewLogMailer constructs a [Mailer] that only logs.
func NewLogMailer(baseURL string, logger *logger.Logger) Mailer {
	return &logMailer{baseURL: baseURL, logger: logger}
}

// Send implements [Mailer].
func (m *logMailer) Send(ctx context.Context, recipient string, kind Kind, token string) error {
	subject, body := buildMessage(m.baseURL, kind, token)

	m.logger.Info().
		Str("recipient", recipient).
		Stringer("kind", kind).
		Str("subject", subject).
		Str("body", body).
		Msg("mail delivery skipped: log mailer")

	return nil
}
