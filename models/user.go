package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes, the password hash, the role flag, and the
// state of the verification and password-reset flows.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Email is the unique address the user registered with.
	// It doubles as the login identifier.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Never serialized and never compared outside the service layer.
	PasswordHash string `json:"-"`

	// IsOps marks operator accounts. Operators upload files and see full
	// records; everyone else is a client restricted to listing and
	// downloading through capability links.
	IsOps bool `json:"is_ops"`

	// IsActive becomes true only after the user follows the emailed
	// verification link. Inactive users cannot log in.
	IsActive bool `json:"is_active"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// VerificationToken is the pending email-verification secret, nil once
	// consumed. Single-use: cleared in the same statement that activates
	// the account.
	VerificationToken *string `json:"-"`

	// VerificationTokenExpires bounds the verification token lifetime
	// (24 hours from issuance). Nil whenever VerificationToken is nil.
	VerificationTokenExpires *time.Time `json:"-"`

	// ResetToken is the pending password-reset secret, nil once consumed.
	ResetToken *string `json:"-"`

	// ResetTokenExpires bounds the reset token lifetime (1 hour from
	// issuance). Nil whenever ResetToken is nil.
	ResetTokenExpires *time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// VerificationTokenValid reports whether the stored verification token is
// still usable at the given instant.
func (u User) VerificationTokenValid(now time.Time) bool {
	return u.VerificationToken != nil &&
		u.VerificationTokenExpires != nil &&
		now.Before(*u.VerificationTokenExpires)
}

// ResetTokenValid reports whether the stored reset token is still usable at
// the given instant.
func (u User) ResetTokenValid(now time.Time) bool {
	return u.ResetToken != nil &&
		u.ResetTokenExpires != nil &&
		now.Before(*u.ResetTokenExpires)
}
