package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/mjardin/docshare/internal/logger"
	"github.com/mjardin/docshare/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, token lookups, and the credential state
// transitions against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt, IsActive).
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account. The email uniqueness check is
// atomic: a concurrent duplicate signup surfaces here as a unique_violation.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.Email, user.PasswordHash, user.IsOps, user.VerificationToken, user.VerificationTokenExpires)

	var created models.User
	if err := row.Scan(
		&created.UserID, &created.Email, &created.PasswordHash, &created.IsOps, &created.IsActive,
		&created.CreatedAt, &created.VerificationToken, &created.VerificationTokenExpires,
		&created.ResetToken, &created.ResetTokenExpires,
	); err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		case "":
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
			return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		default:
			log.Err(err).
				Str("func", "*userRepository.CreateUser").
				Stringer("classification", r.db.errorClassificator.Classify(err)).
				Msg("error: unexpected DB error")
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindUserByEmail retrieves the account registered under email.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByEmail", findUserByEmail, email)
}

// FindUserByVerificationToken retrieves the account holding the given
// pending verification token. Validity of the token (expiry, single-use) is
// the service layer's concern; the repository only matches the stored value.
func (r *userRepository) FindUserByVerificationToken(ctx context.Context, token string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByVerificationToken", findUserByVerificationToken, token)
}

// FindUserByResetToken retrieves the account holding the given pending
// password-reset token.
func (r *userRepository) FindUserByResetToken(ctx context.Context, token string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByResetToken", findUserByResetToken, token)
}

func (r *userRepository) findOne(ctx context.Context, funcName, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	row := r.db.QueryRowContext(ctx, query, arg)
	if err := row.Scan(
		&found.UserID, &found.Email, &found.PasswordHash, &found.IsOps, &found.IsActive,
		&found.CreatedAt, &found.VerificationToken, &found.VerificationTokenExpires,
		&found.ResetToken, &found.ResetTokenExpires,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).
			Str("func", funcName).
			Stringer("classification", r.db.errorClassificator.Classify(err)).
			Msg("error: unexpected DB error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// ActivateUser marks the account active and nulls the verification token
// fields in one statement, making the token single-use.
func (r *userRepository) ActivateUser(ctx context.Context, userID int64) error {
	return r.exec(ctx, "*userRepository.ActivateUser", activateUser, userID)
}

// SetVerificationToken replaces the pending verification token and expiry.
func (r *userRepository) SetVerificationToken(ctx context.Context, userID int64, token string, expires time.Time) error {
	return r.exec(ctx, "*userRepository.SetVerificationToken", setVerificationToken, userID, token, expires)
}

// SetResetToken replaces the pending password-reset token and expiry.
func (r *userRepository) SetResetToken(ctx context.Context, userID int64, token string, expires time.Time) error {
	return r.exec(ctx, "*userRepository.SetResetToken", setResetToken, userID, token, expires)
}

// UpdatePassword stores the new hash and nulls the reset token fields in one
// statement, making the token single-use.
func (r *userRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	return r.exec(ctx, "*userRepository.UpdatePassword", updatePassword, userID, passwordHash)
}

func (r *userRepository) exec(ctx context.Context, funcName, query string, args ...any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Stringer("classification", r.db.errorClassificator.Classify(err)).
			Msg("error: executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error: reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}
