package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Session wraps the signed bearer JWT issued at login.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry,
// issuer). The subject claim carries the account email; the custom "ops"
// claim carries the role flag so that route gating never needs a store
// lookup.
//
// Sessions are stateless: validity is signature plus expiry, there is no
// server-side revocation list, and logout is client-side discard.
type Session struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string
	// form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides the standard JWT claim set (sub, exp,
	// iat, iss) as defined by RFC 7519.
	jwt.RegisteredClaims

	// Ops is the role claim. True grants the upload/full-listing routes,
	// false grants the client listing/download routes.
	Ops bool `json:"ops"`

	// UserID is the account id claim. Carrying it in the token lets the
	// upload handler attribute records without a store lookup per request.
	UserID int64 `json:"uid"`

	// SignedString is the compact JWS representation of the session
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// Email is the account address extracted from the "sub" claim,
	// cached server-side after parsing.
	Email string `json:"-"`
}

// String returns the compact JWS serialization of the session token.
// It implements the [fmt.Stringer] interface.
func (s *Session) String() string {
	return s.SignedString
}
