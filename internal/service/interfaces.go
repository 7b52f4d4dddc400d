package service

import (
	"context"
	"io"

	"github.com/mjardin/docshare/models"
)

// AuthService owns the account state machine: signup through verification to
// login, the password-reset flow, and session token issuance/validation.
type AuthService interface {
	// Signup creates an inactive account with a pending verification token
	// and triggers the verification mail. Returns
	// [store.ErrEmailAlreadyExists] (wrapped) when the email is taken.
	Signup(ctx context.Context, email, password string, isOps bool) (models.User, error)

	// VerifyEmail consumes a verification token and activates the account.
	VerifyEmail(ctx context.Context, token string) error

	// Login authenticates credentials and issues a session token.
	Login(ctx context.Context, email, password string) (models.Session, error)

	// ForgotPassword mints and mails a reset token. Enumeration-safe: the
	// result for an unknown email is indistinguishable from success.
	ForgotPassword(ctx context.Context, email string) error

	// ResetPassword consumes a reset token and stores the new password.
	ResetPassword(ctx context.Context, token, newPassword string) error

	// ResendVerification regenerates and remails the verification token.
	// Enumeration-safe for unknown emails; already-active accounts get
	// [ErrAlreadyVerified].
	ResendVerification(ctx context.Context, email string) error

	// ParseSession validates a bearer token string and returns the parsed
	// session, or [ErrSessionIsExpiredOrInvalid].
	ParseSession(ctx context.Context, tokenString string) (models.Session, error)
}

// FileService owns document intake and delivery: upload validation, blob
// persistence, record registration, link minting, listing, and download.
type FileService interface {
	// Upload validates, stores, and registers a document, returning the
	// completed record with its minted capability link.
	Upload(ctx context.Context, uploaderID int64, filename, contentType string, r io.Reader) (models.FileRecord, error)

	// ListAll returns every record with full fields (ops view).
	ListAll(ctx context.Context) ([]models.FileRecord, error)

	// ListClient returns the reduced client projection of every record.
	ListClient(ctx context.Context) ([]models.ClientFileView, error)

	// Download resolves a capability link to the stored bytes. The caller
	// owns closing the reader.
	Download(ctx context.Context, link string) (models.FileRecord, io.ReadCloser, error)
}
