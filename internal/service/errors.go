package service

import "errors"

// Sentinel errors returned by the service layer. Handlers match these with
// [errors.Is] and own the mapping to HTTP status codes.
var (
	// ErrInvalidDataProvided is returned when a request is missing required
	// fields (empty email, empty password, empty token).
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned on login when the email is unknown
	// or the password does not match. The two cases are deliberately
	// indistinguishable: a constant-shape failure prevents account
	// enumeration through the login endpoint.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	// ErrNotVerified is returned on login for accounts that never followed
	// their verification link.
	ErrNotVerified = errors.New("email not verified")

	// ErrInvalidVerificationToken is returned when a verification token
	// matches no account.
	ErrInvalidVerificationToken = errors.New("invalid verification token")

	// ErrExpiredVerificationToken is returned when a verification token
	// matches an account but its stored expiry has passed. The caller
	// should request a new verification email.
	ErrExpiredVerificationToken = errors.New("verification token has expired")

	// ErrInvalidOrExpiredResetToken is returned when a password-reset token
	// matches no account or its stored expiry has passed. The two cases
	// share one error so the reset endpoint leaks nothing about token
	// state.
	ErrInvalidOrExpiredResetToken = errors.New("invalid or expired reset token")

	// ErrAlreadyVerified is returned by resend-verification for accounts
	// that are already active.
	ErrAlreadyVerified = errors.New("email is already verified")

	// ErrSessionIsExpiredOrInvalid is returned for any bearer token that
	// fails signature, issuer, or expiry validation. Low-level JWT errors
	// are normalised to this value so callers never inspect them.
	ErrSessionIsExpiredOrInvalid = errors.New("session token is expired or invalid")

	// ErrUnsupportedFileType is returned when an upload fails the document
	// allow-list. Both the filename extension and the declared media type
	// must pass; an extension check alone would be spoofable.
	ErrUnsupportedFileType = errors.New("file type not allowed; allowed types are: .docx, .pptx, .xlsx")

	// ErrInvalidOrExpiredLink is returned when a download capability link
	// fails decryption or has expired.
	ErrInvalidOrExpiredLink = errors.New("invalid or expired download link")

	// ErrFileNotFound is returned when a verified link points at a record
	// that does not exist or whose blob is missing from storage. The two
	// cases share one error so storage-layer detail never leaks.
	ErrFileNotFound = errors.New("file not found")
)
