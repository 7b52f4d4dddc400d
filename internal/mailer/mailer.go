// Package mailer delivers the verification and password-reset messages.
// The service layer treats delivery as fire-and-forget: a send failure is
// logged but never surfaced to the HTTP caller, both to keep the core
// responsive and to avoid turning mail errors into an account oracle.
package mailer

import (
	"context"
	"fmt"
	"strings"
)

//go:generate mockgen -source=mailer.go -destination=../mock/mailer_mock.go -package=mock

// Kind selects the message template.
type Kind int

const (
	// Verification is the "confirm your address" message sent on signup
	// and resend.
	Verification Kind = iota

	// PasswordReset is the "set a new password" message sent on
	// forgot-password.
	PasswordReset
)

// String renders the kind for log fields.
func (k Kind) String() string {
	if k == PasswordReset {
		return "password_reset"
	}
	return "verification"
}

// Mailer sends a single transactional message carrying an opaque token.
type Mailer interface {
	Send(ctx context.Context, recipient string, kind Kind, token string) error
}

// buildMessage renders the subject and plain-text body for the given kind.
// Bodies carry one actionable link each; anything fancier belongs to a
// template layer this application deliberately does not have.
func buildMessage(baseURL string, kind Kind, token string) (subject, body string) {
	base := strings.TrimRight(baseURL, "/")

	switch kind {
	case PasswordReset:
		link := fmt.Sprintf("%s/reset-password/%s", base, token)
		return "Reset your password",
			fmt.Sprintf("You have requested to reset your password. Open the link below to set a new one:\n\n%s\n\nThis link expires in 1 hour. If you did not request a reset, ignore this message.\n", link)
	default:
		link := fmt.Sprintf("%s/api/auth/verify/%s", base, token)
		return "Verify your email",
			fmt.Sprintf("Please open the link below to verify your email address:\n\n%s\n\nIf you did not sign up, ignore this message.\n", link)
	}
}
