// Package utils holds small helpers shared across the server and client:
// typed context keys, JWT issuing and parsing, password hashing, JSON
// response writing, the resty client wrapper and UUID generation.
package utils

import (
	"context"

	"github.com/MKhiriev/resume-keeper/models"
)

// contextKey is a private type for context keys so values stored by this
// package cannot collide with string keys set elsewhere.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// PrincipalCtxKey is the key under which the auth middleware stores the
// verified models.Principal of a request.
var PrincipalCtxKey = contextKey("principal")

// WithPrincipal returns a copy of ctx carrying principal.
func WithPrincipal(ctx context.Context, principal models.Principal) context.Context {
	return context.WithValue(ctx, PrincipalCtxKey, principal)
}

// GetPrincipalFromContext returns the principal stored in ctx. ok is false
// when the value is missing, has another type or carries no id.
func GetPrincipalFromContext(ctx context.Context) (models.Principal, bool) {
	principal, ok := ctx.Value(PrincipalCtxKey).(models.Principal)
	if !ok || principal.ID == "" {
		return models.Principal{}, false
	}
	return principal, true
}
