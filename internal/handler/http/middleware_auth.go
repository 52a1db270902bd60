package http

import (
	"net/http"

	"github.com/MKhiriev/resume-keeper/internal/app"
	"github.com/MKhiriev/resume-keeper/internal/logger"
	"github.com/MKhiriev/resume-keeper/internal/utils"
)

// authCookieName is the httpOnly cookie set on signin.
const authCookieName = "jwtToken"

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// The token is read from the jwtToken cookie, or from an
// "Authorization: Bearer" header when no cookie is sent. It is validated via
// [service.AuthService.ParseToken] and, on success, the principal from its
// claims is stored in the request context with [utils.WithPrincipal].
//
// Requests without a token, with a malformed header or with an invalid or
// expired token are rejected with 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := tokenFromRequest(r)
		if err != nil {
			writeError(w, r, err, "")
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err, app.MsgTokenParseFailed)
			return
		}

		ctx = utils.WithPrincipal(ctx, token.Claims.Principal())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// optionalAuth resolves the principal like auth but lets anonymous requests
// and requests with a bad token through unchanged.
func (h *Handler) optionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := tokenFromRequest(r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Msg("ignoring invalid token on public route")
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithPrincipal(ctx, token.Claims.Principal())))
	})
}

// tokenFromRequest extracts the raw token, preferring the cookie.
func tokenFromRequest(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(authCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrNoToken
	}

	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", ErrInvalidAuthorizationHeader
	}
	return tokenString, nil
}
