package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/resume-keeper/internal/service"
	"github.com/MKhiriev/resume-keeper/internal/utils"
	"github.com/MKhiriev/resume-keeper/internal/validators"
	"github.com/MKhiriev/resume-keeper/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUser = models.User{
	ID:        "0194e6a0-7c1e-7000-8000-000000000001",
	Username:  "alice",
	Email:     "alice@example.com",
	CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
}

func testToken(expiresAt time.Time) models.Token {
	return models.Token{
		Claims: models.Claims{
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(expiresAt)},
			UserID:           testUser.ID,
			Username:         testUser.Username,
			Email:            testUser.Email,
		},
		SignedString: "header.payload.signature",
	}
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// ─── signup ───────────────────────────────────────────────────────────────────

func TestSignup(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		signupErr   error
		wantStatus  int
		wantMessage string
		wantSuccess bool
	}{
		{
			name:        "created",
			body:        `{"username":"alice","email":"alice@example.com","password":"secret"}`,
			wantStatus:  http.StatusCreated,
			wantMessage: "User registered Successfully",
			wantSuccess: true,
		},
		{
			name:        "missing fields",
			body:        `{"username":"alice"}`,
			signupErr:   validators.ErrAllFieldsRequired,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "All fields are required",
		},
		{
			name:        "duplicate email",
			body:        `{"username":"alice","email":"alice@example.com","password":"secret"}`,
			signupErr:   service.ErrEmailAlreadyExists,
			wantStatus:  http.StatusConflict,
			wantMessage: "User with email or username already exists",
		},
		{
			name:        "invalid json",
			body:        `{"username":`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid JSON was passed",
		},
		{
			name:        "database failure",
			body:        `{"username":"alice","email":"alice@example.com","password":"secret"}`,
			signupErr:   errors.New("connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Something went wrong while registering the user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				SignupFunc: func(ctx context.Context, req models.SignupRequest) (models.User, models.Token, error) {
					if tt.signupErr != nil {
						return models.User{}, models.Token{}, tt.signupErr
					}
					assert.Equal(t, "alice@example.com", req.Email)
					return testUser, testToken(time.Now().Add(time.Hour)), nil
				},
			}
			h := newTestHandler(auth, &mockResumeService{})

			rr := serve(h, jsonRequest(http.MethodPost, "/api/auth/signup", tt.body))

			require.Equal(t, tt.wantStatus, rr.Code)
			body := decodeBody[models.AuthResponse](t, rr)
			assert.Equal(t, tt.wantSuccess, body.Success)
			assert.Equal(t, tt.wantMessage, body.Message)
			if tt.wantSuccess {
				assert.Equal(t, testUser.ID, body.User.ID)
				assert.Equal(t, "header.payload.signature", body.JWTToken)
			}
		})
	}
}

func TestSignup_ServerErrorExposesCause(t *testing.T) {
	auth := &mockAuthService{
		SignupFunc: func(ctx context.Context, req models.SignupRequest) (models.User, models.Token, error) {
			return models.User{}, models.Token{}, errors.New("connection refused")
		},
	}
	h := newTestHandler(auth, &mockResumeService{})

	rr := serve(h, jsonRequest(http.MethodPost, "/api/auth/signup", `{"username":"a","email":"a@b.c","password":"p"}`))

	body := decodeBody[models.ErrorResponse](t, rr)
	assert.Equal(t, "connection refused", body.Error)
}

func TestSignup_BodyTooLarge(t *testing.T) {
	h := newTestHandler(&mockAuthService{}, &mockResumeService{})

	payload := `{"username":"` + strings.Repeat("a", 2<<10) + `"}`
	rr := serve(h, jsonRequest(http.MethodPost, "/api/auth/signup", payload))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
}

// ─── signin ───────────────────────────────────────────────────────────────────

func TestSignin_SetsCookie(t *testing.T) {
	expiresAt := time.Now().Add(time.Hour).Truncate(time.Second)
	auth := &mockAuthService{
		SigninFunc: func(ctx context.Context, req models.SigninRequest) (models.User, models.Token, error) {
			return testUser, testToken(expiresAt), nil
		},
	}
	h := newTestHandler(auth, &mockResumeService{})

	rr := serve(h, jsonRequest(http.MethodPost, "/api/auth/signin", `{"email":"alice@example.com","password":"secret"}`))

	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody[models.AuthResponse](t, rr)
	assert.True(t, body.Success)
	assert.Equal(t, "User logged In Successfully", body.Message)
	assert.Equal(t, testUser.Email, body.User.Email)

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, "jwtToken", c.Name)
	assert.Equal(t, "header.payload.signature", c.Value)
	assert.True(t, c.HttpOnly)
	assert.False(t, c.Secure)
	assert.Equal(t, "/", c.Path)
	assert.Equal(t, 3600, c.MaxAge)
	assert.True(t, expiresAt.Equal(c.Expires), "expires %v, want %v", c.Expires, expiresAt)
}

func TestSignin_Errors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{name: "unknown email", err: service.ErrUserNotFound, wantStatus: http.StatusNotFound, wantMessage: "User does not exist"},
		{name: "wrong password", err: service.ErrWrongPassword, wantStatus: http.StatusUnauthorized, wantMessage: "Invalid user credentials"},
		{name: "missing email", err: validators.ErrEmailRequired, wantStatus: http.StatusBadRequest, wantMessage: "email is required"},
		{name: "internal", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantMessage: "Server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				SigninFunc: func(ctx context.Context, req models.SigninRequest) (models.User, models.Token, error) {
					return models.User{}, models.Token{}, tt.err
				},
			}
			h := newTestHandler(auth, &mockResumeService{})

			rr := serve(h, jsonRequest(http.MethodPost, "/api/auth/signin", `{"email":"x@example.com","password":"p"}`))

			require.Equal(t, tt.wantStatus, rr.Code)
			body := decodeBody[models.ErrorResponse](t, rr)
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantMessage, body.Message)
			assert.Empty(t, rr.Result().Cookies())
		})
	}
}

func TestSignin_SecureCookieInProduction(t *testing.T) {
	auth := &mockAuthService{
		SigninFunc: func(ctx context.Context, req models.SigninRequest) (models.User, models.Token, error) {
			return testUser, testToken(time.Now().Add(time.Hour)), nil
		},
	}
	h := newTestHandler(auth, &mockResumeService{})
	h.settings.SecureCookie = true

	rr := serve(h, jsonRequest(http.MethodPost, "/api/auth/signin", `{"email":"alice@example.com","password":"secret"}`))

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].Secure)
}

// ─── me ───────────────────────────────────────────────────────────────────────

func TestMe(t *testing.T) {
	auth := &mockAuthService{
		ParseTokenFunc: func(ctx context.Context, tokenString string) (models.Token, error) {
			require.Equal(t, "valid-token", tokenString)
			return testToken(time.Now().Add(time.Hour)), nil
		},
		CurrentUserFunc: func(ctx context.Context) (models.User, error) {
			principal, ok := utils.GetPrincipalFromContext(ctx)
			require.True(t, ok)
			assert.Equal(t, testUser.ID, principal.ID)
			return testUser, nil
		},
	}
	h := newTestHandler(auth, &mockResumeService{})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: "jwtToken", Value: "valid-token"})
	rr := serve(h, req)

	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody[models.UserResponse](t, rr)
	assert.True(t, body.Success)
	assert.Equal(t, "User fetched successfully", body.Message)
	assert.Equal(t, testUser.Username, body.User.Username)
}

func TestMe_Unauthorized(t *testing.T) {
	tests := []struct {
		name  string
		setup func(r *http.Request)
	}{
		{name: "no token", setup: func(r *http.Request) {}},
		{name: "malformed header", setup: func(r *http.Request) { r.Header.Set("Authorization", "Basic abc") }},
		{name: "invalid token", setup: func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				CurrentUserFunc: func(ctx context.Context) (models.User, error) {
					t.Fatal("CurrentUser must not be called")
					return models.User{}, nil
				},
			}
			h := newTestHandler(auth, &mockResumeService{})

			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			tt.setup(req)
			rr := serve(h, req)

			require.Equal(t, http.StatusUnauthorized, rr.Code)
			body := decodeBody[models.ErrorResponse](t, rr)
			assert.False(t, body.Success)
		})
	}
}

func TestMe_UserGone(t *testing.T) {
	auth := &mockAuthService{
		ParseTokenFunc: func(ctx context.Context, tokenString string) (models.Token, error) {
			return testToken(time.Now().Add(time.Hour)), nil
		},
		CurrentUserFunc: func(ctx context.Context) (models.User, error) {
			return models.User{}, service.ErrNotAuthenticated
		},
	}
	h := newTestHandler(auth, &mockResumeService{})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rr := serve(h, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Unauthorized request", decodeBody[models.ErrorResponse](t, rr).Message)
}
