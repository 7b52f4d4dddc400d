package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mjardin/docshare/models"
)

// GenerateSessionToken creates a signed HMAC-SHA256 session JWT.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the account email
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus duration (absolute expiry,
//     no refresh — expired sessions require a fresh login)
//   - ops: the role flag, so route gating needs no store lookup
//   - uid: the account id, so upload attribution needs no store lookup
//
// All parameters are required. Returns an error if any of them are empty or
// zero.
func GenerateSessionToken(issuer, email string, userID int64, isOps bool, duration time.Duration, signKey string) (models.Session, error) {
	if issuer == "" || email == "" || userID == 0 || duration == 0 || signKey == "" {
		return models.Session{}, errors.New("invalid params for generating session token")
	}

	now := time.Now()
	session := &models.Session{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Ops:    isOps,
		UserID: userID,
		Email:  email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, session)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Session{}, fmt.Errorf("error occurred during signing session token: %w", err)
	}

	session.Token = token
	session.SignedString = signed

	return *session, nil
}

// ValidateAndParseSessionToken validates the given session JWT string and
// extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided issuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence (the account email)
//
// Returns the parsed session with Email and Ops populated, or an error if
// validation fails or claims are missing.
func ValidateAndParseSessionToken(tokenString, signKey, issuer string) (models.Session, error) {
	session := &models.Session{}
	token, err := jwt.ParseWithClaims(tokenString, session, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithIssuer(issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Session{}, fmt.Errorf("error occurred validating and parsing session token: %w", err)
	}

	email, err := token.Claims.GetSubject()
	if err != nil {
		return models.Session{}, fmt.Errorf("error occurred during getting subject from session token: %w", err)
	}
	if email == "" {
		return models.Session{}, errors.New("empty subject error")
	}

	session.Token = token
	session.Email = email
	session.SignedString = tokenString

	return *session, nil
}

// ParseBearerToken extracts the token part from a raw "Authorization" header
// value of the form "Bearer <token>".
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
