package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"io"
	"time"

	"github.com/mjardin/docshare/models"
)

// UserRepository is the persistence contract for account records. The store
// is the single writer: all uniqueness guarantees (email, token values) are
// enforced at write time by database constraints, never by read-then-write.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields populated. Returns [ErrEmailAlreadyExists] when the email is
	// taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the account registered under email, or
	// [ErrNoUserWasFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByVerificationToken returns the account holding the given
	// pending verification token, or [ErrNoUserWasFound].
	FindUserByVerificationToken(ctx context.Context, token string) (models.User, error)

	// FindUserByResetToken returns the account holding the given pending
	// reset token, or [ErrNoUserWasFound].
	FindUserByResetToken(ctx context.Context, token string) (models.User, error)

	// ActivateUser marks the account active and clears the verification
	// token fields in the same statement (single-use token consumption).
	ActivateUser(ctx context.Context, userID int64) error

	// SetVerificationToken replaces the pending verification token and its
	// expiry (resend flow).
	SetVerificationToken(ctx context.Context, userID int64, token string, expires time.Time) error

	// SetResetToken replaces the pending reset token and its expiry
	// (forgot-password flow).
	SetResetToken(ctx context.Context, userID int64, token string, expires time.Time) error

	// UpdatePassword stores the new password hash and clears the reset
	// token fields in the same statement (single-use token consumption).
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
}

// FileRepository is the persistence contract for file metadata. Records are
// append-only: after the phase-two link patch a record is never mutated, and
// no delete or revoke primitive exists.
type FileRepository interface {
	// CreateFile inserts the metadata row with a null download_url and
	// returns it with FileID and UploadDate assigned.
	CreateFile(ctx context.Context, file models.FileRecord) (models.FileRecord, error)

	// SetDownloadURL patches the record with its capability link. Returns
	// [ErrDownloadURLTaken] on a unique-constraint collision.
	SetDownloadURL(ctx context.Context, fileID int64, downloadURL string) error

	// FindFileByID returns the record, or [ErrFileNotFound].
	FindFileByID(ctx context.Context, fileID int64) (models.FileRecord, error)

	// ListFiles returns all records, newest first.
	ListFiles(ctx context.Context) ([]models.FileRecord, error)
}

// BlobStorage persists the uploaded bytes outside the relational database.
// Writes are all-or-nothing from the caller's perspective: a failed write
// leaves no partial blob behind, so no file record is ever created for bytes
// that were not fully stored.
type BlobStorage interface {
	// Write stores everything read from r under a storage location derived
	// from name and returns the server-assigned path together with the
	// number of bytes actually written.
	Write(ctx context.Context, name string, r io.Reader) (string, int64, error)

	// Open returns a reader over the stored blob, or [ErrBlobNotFound].
	Open(ctx context.Context, path string) (io.ReadCloser, error)

	// Exists reports whether the blob is present.
	Exists(ctx context.Context, path string) bool
}
