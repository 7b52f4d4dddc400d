package mailer

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"
	"github.com/mjardin/docshare/internal/config"
	"github.com/mjardin/docshare/internal/logger"
)

// smtpMailer is the production [Mailer] implementation backed by an SMTP
// server through wneessen/go-mail.
type smtpMailer struct {
	client  *gomail.Client
	from    string
	baseURL string
	logger  *logger.Logger
}

// NewSMTPMailer constructs a [Mailer] delivering through the configured SMTP
// server.
func NewSMTPMailer(cfg config.Mail, logger *logger.Logger) (Mailer, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating smtp client: %w", err)
	}

	logger.Info().Str("host", cfg.Host).Int("port", cfg.Port).Msg("smtp mailer created")

	return &smtpMailer{
		client:  client,
		from:    cfg.From,
		baseURL: cfg.BaseURL,
		logger:  logger,
	}, nil
}

// Send implements [Mailer].
func (m *smtpMailer) Send(ctx context.Context, recipient string, kind Kind, token string) error {
	subject, body := buildMessage(m.baseURL, kind, token)

	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("setting mail sender: %w", err)
	}
	if err := msg.To(recipient); err != nil {
		return fmt.Errorf("setting mail recipient: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("sending %s mail: %w", kind, err)
	}

	return nil
}
