// Package utils provides general-purpose helper utilities used across
// different parts of the application: type-safe context keys, JWT session
// generation and validation, HTTP response writing, and bearer-header
// parsing.
package utils

import (
	"context"

	"github.com/mjardin/docshare/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key under which the authentication middleware stores
// the parsed session so downstream handlers can retrieve the caller's
// identity and role without re-parsing the bearer token.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.SessionCtxKey, session)
var SessionCtxKey = contextKey("session")

// GetSessionFromContext retrieves the authenticated session from the context.
//
// Returns the session and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing or has an unexpected type
func GetSessionFromContext(ctx context.Context) (*models.Session, bool) {
	session, ok := ctx.Value(SessionCtxKey).(*models.Session)
	if !ok || session == nil {
		return nil, false
	}

	return session, true
}
