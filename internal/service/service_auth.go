package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mjardin/docshare/internal/config"
	"github.com/mjardin/docshare/internal/crypto"
	"github.com/mjardin/docshare/internal/logger"
	"github.com/mjardin/docshare/internal/mailer"
	"github.com/mjardin/docshare/internal/store"
	"github.com/mjardin/docshare/internal/utils"
	"github.com/mjardin/docshare/models"
	"golang.org/x/crypto/bcrypt"
)

// mailSendTimeout bounds the detached goroutine that delivers a single
// transactional message after the originating request has completed.
const mailSendTimeout = 15 * time.Second

// authService is the concrete implementation of AuthService.
// It handles the account lifecycle (signup, verification, login, password
// reset) using a UserRepository for persistence, bcrypt for password
// hashing, and HMAC-SHA256 JWTs for session tokens.
type authService struct {
	// userRepository is the data-access layer used to create and look up
	// accounts.
	userRepository store.UserRepository

	// mailer delivers verification and reset messages. Sends are
	// fire-and-forget: failures are logged, never surfaced.
	mailer mailer.Mailer

	// tokenSignKey is the HMAC secret used to sign and verify session
	// JWTs.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued session
	// token. Tokens whose issuer does not match are rejected at parse
	// time.
	tokenIssuer string

	// tokenDuration controls the absolute session lifetime (30 minutes by
	// default; there is no refresh).
	tokenDuration time.Duration

	// verificationTTL and resetTTL bound the opaque token lifetimes.
	verificationTTL time.Duration
	resetTTL        time.Duration

	// logger is the structured logger used for diagnostic output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and mailer, populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, m mailer.Mailer, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:  userRepository,
		mailer:          m,
		tokenSignKey:    cfg.TokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		tokenDuration:   cfg.TokenDuration,
		verificationTTL: cfg.VerificationTTL,
		resetTTL:        cfg.ResetTTL,
		logger:          logger,
	}
}

// Signup creates a new account in the Unverified state.
//
// The password is bcrypt-hashed, a fresh verification token is minted with
// the configured TTL, and the insert is delegated to the repository whose
// unique constraint resolves concurrent duplicate signups atomically. The
// verification mail is dispatched fire-and-forget.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - A wrapped [store.ErrEmailAlreadyExists] if the email is taken.
func (a *authService) Signup(ctx context.Context, email, password string, isOps bool) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid signup data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hashing password: %w", err)
	}

	token, err := crypto.GenerateSecureToken()
	if err != nil {
		return models.User{}, fmt.Errorf("generating verification token: %w", err)
	}
	expires := time.Now().Add(a.verificationTTL)

	user := models.User{
		Email:                    email,
		PasswordHash:             string(hash),
		IsOps:                    isOps,
		VerificationToken:        &token,
		VerificationTokenExpires: &expires,
	}

	created, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	a.sendMailAsync(created.Email, mailer.Verification, token)

	return created, nil
}

// VerifyEmail consumes a verification token.
//
// Returns:
//   - ErrInvalidVerificationToken when the token matches no account.
//   - ErrExpiredVerificationToken when the token matched but its stored
//     expiry has passed.
func (a *authService) VerifyEmail(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	if token == "" {
		return ErrInvalidVerificationToken
	}

	user, err := a.userRepository.FindUserByVerificationToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrInvalidVerificationToken
		}
		log.Err(err).Msg("verification token lookup failed")
		return fmt.Errorf("verification token lookup failed: %w", err)
	}

	if !user.VerificationTokenValid(time.Now()) {
		return ErrExpiredVerificationToken
	}

	if err := a.userRepository.ActivateUser(ctx, user.UserID); err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("user activation failed")
		return fmt.Errorf("user activation failed: %w", err)
	}

	log.Info().Int64("id", user.UserID).Msg("user verified email successfully")

	return nil
}

// Login authenticates an existing user and issues a session token.
//
// An unknown email and a wrong password produce the same
// ErrInvalidCredentials so that the response shape never reveals whether an
// account exists. Unverified accounts are rejected with ErrNotVerified after
// the credential check.
func (a *authService) Login(ctx context.Context, email, password string) (models.Session, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid login data provided")
		return models.Session{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.Session{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.Session{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Debug().Int64("id", user.UserID).Msg("wrong password")
		return models.Session{}, ErrInvalidCredentials
	}

	if !user.IsActive {
		return models.Session{}, ErrNotVerified
	}

	session, err := utils.GenerateSessionToken(a.tokenIssuer, user.Email, user.UserID, user.IsOps, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Session{}, fmt.Errorf("session token creation failed: %w", err)
	}

	log.Debug().Int64("id", user.UserID).Bool("is_ops", user.IsOps).Msg("user successfully logged in")

	return session, nil
}

// ForgotPassword mints a reset token for the account and mails it.
//
// Enumeration-safe: an unknown email returns nil exactly like the success
// path, and the handler responds with one fixed generic message either way.
// Only genuine store failures propagate, surfaced by the handler as a
// generic server error.
func (a *authService) ForgotPassword(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	if email == "" {
		return ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			// Silent success: the response must not reveal whether an
			// account exists.
			return nil
		}
		log.Err(err).Msg("user search by email failed")
		return fmt.Errorf("user search by email failed: %w", err)
	}

	token, err := crypto.GenerateSecureToken()
	if err != nil {
		return fmt.Errorf("generating reset token: %w", err)
	}

	if err := a.userRepository.SetResetToken(ctx, user.UserID, token, time.Now().Add(a.resetTTL)); err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("storing reset token failed")
		return fmt.Errorf("storing reset token failed: %w", err)
	}

	a.sendMailAsync(user.Email, mailer.PasswordReset, token)

	return nil
}

// ResetPassword consumes a reset token and stores the new password hash.
//
// The stored expiry column is enforced: a token past its expiry fails with
// the same ErrInvalidOrExpiredResetToken as a token that matches nothing.
// The token is cleared in the same statement that updates the password.
func (a *authService) ResetPassword(ctx context.Context, token, newPassword string) error {
	log := logger.FromContext(ctx)

	if token == "" || newPassword == "" {
		return ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrInvalidOrExpiredResetToken
		}
		log.Err(err).Msg("reset token lookup failed")
		return fmt.Errorf("reset token lookup failed: %w", err)
	}

	if !user.ResetTokenValid(time.Now()) {
		return ErrInvalidOrExpiredResetToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	if err := a.userRepository.UpdatePassword(ctx, user.UserID, string(hash)); err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}

	log.Info().Int64("id", user.UserID).Msg("password reset successfully")

	return nil
}

// ResendVerification regenerates the verification token for an unverified
// account and mails it again.
//
// Enumeration-safe for unknown emails (silent success). Already-active
// accounts get ErrAlreadyVerified: that distinction is deliberate and
// mirrors the verified/unverified split a caller can already observe through
// login.
func (a *authService) ResendVerification(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	if email == "" {
		return ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return nil
		}
		log.Err(err).Msg("user search by email failed")
		return fmt.Errorf("user search by email failed: %w", err)
	}

	if user.IsActive {
		return ErrAlreadyVerified
	}

	token, err := crypto.GenerateSecureToken()
	if err != nil {
		return fmt.Errorf("generating verification token: %w", err)
	}

	if err := a.userRepository.SetVerificationToken(ctx, user.UserID, token, time.Now().Add(a.verificationTTL)); err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("storing verification token failed")
		return fmt.Errorf("storing verification token failed: %w", err)
	}

	a.sendMailAsync(user.Email, mailer.Verification, token)

	return nil
}

// ParseSession validates and parses a raw session token string.
//
// Any validation failure (expired, wrong issuer, malformed, bad signature)
// is normalised to ErrSessionIsExpiredOrInvalid so that callers do not need
// to inspect low-level JWT errors.
func (a *authService) ParseSession(ctx context.Context, tokenString string) (models.Session, error) {
	session, err := utils.ValidateAndParseSessionToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Session{}, ErrSessionIsExpiredOrInvalid
	}

	return session, nil
}

// sendMailAsync dispatches one transactional message on a detached goroutine
// with its own timeout context. The originating request never waits on SMTP,
// and a delivery failure is a log line, not a response.
func (a *authService) sendMailAsync(recipient string, kind mailer.Kind, token string) {
	log := a.logger.GetChildLogger()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), mailSendTimeout)
		defer cancel()

		if err := a.mailer.Send(ctx, recipient, kind, token); err != nil {
			log.Err(err).Str("recipient", recipient).Stringer("kind", kind).Msg("mail delivery failed")
		}
	}()
}
