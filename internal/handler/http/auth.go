package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/resume-keeper/internal/app"
	"github.com/MKhiriev/resume-keeper/internal/logger"
	"github.com/MKhiriev/resume-keeper/internal/utils"
	"github.com/MKhiriev/resume-keeper/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.SignupRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(w, r, err, "")
		return
	}

	user, token, err := h.services.AuthService.Signup(ctx, req)
	if err != nil {
		writeError(w, r, err, app.MsgRegistrationFailed)
		return
	}

	logger.FromRequest(r).Info().Str("user_id", user.ID).Msg("user registered")

	_, _ = utils.WriteJSON(w, models.AuthResponse{
		Response: models.Response{Success: true, Message: app.MsgUserRegistered},
		User:     user,
		JWTToken: token.String(),
	}, http.StatusCreated)
}

func (h *Handler) signin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.SigninRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(w, r, err, "")
		return
	}

	user, token, err := h.services.AuthService.Signin(ctx, req)
	if err != nil {
		writeError(w, r, err, app.MsgServerError)
		return
	}

	http.SetCookie(w, h.authCookie(token))

	_, _ = utils.WriteJSON(w, models.AuthResponse{
		Response: models.Response{Success: true, Message: app.MsgUserLoggedIn},
		User:     user,
		JWTToken: token.String(),
	}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.AuthService.CurrentUser(r.Context())
	if err != nil {
		writeError(w, r, err, app.MsgServerError)
		return
	}

	_, _ = utils.WriteJSON(w, models.UserResponse{
		Response: models.Response{Success: true, Message: app.MsgUserFetched},
		User:     user,
	}, http.StatusOK)
}

func (h *Handler) authCookie(token models.Token) *http.Cookie {
	cookie := &http.Cookie{
		Name:     authCookieName,
		Value:    token.String(),
		Path:     "/",
		HttpOnly: true,
		Secure:   h.settings.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	}

	if h.settings.TokenDuration > 0 {
		cookie.MaxAge = int(h.settings.TokenDuration / time.Second)
	}
	if token.Claims.ExpiresAt != nil {
		cookie.Expires = token.Claims.ExpiresAt.Time
	}

	return cookie
}
