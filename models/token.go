package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of an access token. Besides the registered claims
// (sub mirrors UserID, iss, iat, exp) it carries the identity fields the
// frontend reads without a round trip to /me.
type Claims struct {
	jwt.RegisteredClaims

	UserID   string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Principal returns the identity encoded in the claims.
func (c *Claims) Principal() Principal {
	return Principal{ID: c.UserID, Username: c.Username, Email: c.Email}
}

// Token wraps a signed or parsed JWT together with its decoded claims.
type Token struct {
	// Token is the underlying JWT, excluded from JSON since only the compact
	// form leaves the server.
	*jwt.Token `json:"-"`

	Claims Claims `json:"-"`

	// SignedString is the compact header.payload.signature form.
	SignedString string `json:"-"`
}

// String returns the compact serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
