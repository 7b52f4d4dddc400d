package mailer

import (
	"context"
	"strings"
	"testing"

	"github.com/mjardin/docshare/internal/logger"
)

func TestBuildMessage_Verification(t *testing.T) {
	subject, body := buildMessage("http://localhost:8080/", Verification, "tok-123")

	if subject != "Verify your email" {
		t.Errorf("unexpected subject: %q", subject)
	}
	if !strings.Contains(body, "http://localhost:8080/api/auth/verify/tok-123") {
		t.Errorf("body misses verification link: %q", body)
	}
}

func TestBuildMessage_PasswordReset(t *testing.T) {
	subject, body := buildMessage("https://files.example.com", PasswordReset, "tok-456")

	if subject != "Reset your password" {
		t.Errorf("unexpected subject: %q", subject)
	}
	if !strings.Contains(body, "https://files.example.com/reset-password/tok-456") {
		t.Errorf("body misses reset link: %q", body)
	}
}

func TestKindString(t *testing.T) {
	if Verification.String() != "verification" {
		t.Errorf("unexpected: %s", Verification)
	}
	if PasswordReset.String() != "password_reset" {
		t.Errorf("unexpected: %s", PasswordReset)
	}
}

func TestLogMailer_NeverFails(t *testing.T) {
	m := NewLogMailer("http://localhost", logger.Nop())

	if err := m.Send(context.Background(), "a@x.com", Verification, "tok"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.Send(context.Background(), "a@x.com", PasswordReset, "tok"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
