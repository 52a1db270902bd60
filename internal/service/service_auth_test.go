package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/resume-keeper/internal/config"
	"github.com/MKhiriev/resume-keeper/internal/logger"
	"github.com/MKhiriev/resume-keeper/internal/mock"
	"github.com/MKhiriev/resume-keeper/internal/objectstore"
	"github.com/MKhiriev/resume-keeper/internal/store"
	"github.com/MKhiriev/resume-keeper/internal/utils"
	"github.com/MKhiriev/resume-keeper/internal/validators"
	"github.com/MKhiriev/resume-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "resume-keeper-test"
)

// newTestAuthSvc — helper building an authService over a mocked repository
// and the real request validator.
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (AuthService, *mock.MockUserRepository) {
	t.Helper()
	repo := mock.NewMockUserRepository(ctrl)
	cfg := config.App{
		TokenSignKey:  testSignKey,
		TokenIssuer:   testIssuer,
		TokenDuration: time.Hour,
	}
	validator := validators.NewRequestValidator(objectstore.NewPolicy(0, false))
	return NewAuthService(repo, validator, cfg, logger.Nop()), repo
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := utils.HashPassword(password)
	require.NoError(t, err)
	return h
}

// ── Signup ───────────────────────────────────────────────────────────────────

func TestAuthService_Signup_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "alice", u.Username)
			assert.Equal(t, "alice@example.com", u.Email, "email must be lower-cased")
			assert.NotEqual(t, "secret", u.PasswordHash)
			assert.True(t, utils.CheckPassword(u.PasswordHash, "secret"))
			u.ID = "0190b9a0-0000-7000-8000-000000000001"
			u.CreatedAt = time.Now().UTC()
			return u, nil
		},
	)

	user, token, err := svc.Signup(ctx, models.SignupRequest{
		Username: " alice ",
		Email:    "Alice@Example.com",
		Password: "secret",
	})
	require.NoError(t, err)

	assert.Equal(t, "0190b9a0-0000-7000-8000-000000000001", user.ID)
	require.NotEmpty(t, token.String())

	parsed, err := svc.ParseToken(ctx, token.String())
	require.NoError(t, err)
	assert.Equal(t, user.ID, parsed.Claims.UserID)
	assert.Equal(t, "alice", parsed.Claims.Username)
	assert.Equal(t, "alice@example.com", parsed.Claims.Email)
}

func TestAuthService_Signup_BlankFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)

	_, _, err := svc.Signup(context.Background(), models.SignupRequest{Email: "a@x.com", Password: "pw"})

	assert.ErrorIs(t, err, validators.ErrAllFieldsRequired)
}

func TestAuthService_Signup_MalformedEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)

	_, _, err := svc.Signup(context.Background(), models.SignupRequest{Username: "a", Email: "nope", Password: "pw"})

	assert.ErrorIs(t, err, validators.ErrInvalidEmail)
}

func TestAuthService_Signup_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserAlreadyExists)

	_, token, err := svc.Signup(context.Background(), models.SignupRequest{Username: "a", Email: "a@x.com", Password: "pw"})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	assert.Empty(t, token.String())
}

func TestAuthService_Signup_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)
	dbErr := errors.New("connection reset")

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, dbErr)

	_, _, err := svc.Signup(context.Background(), models.SignupRequest{Username: "a", Email: "a@x.com", Password: "pw"})

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrEmailAlreadyExists)
}

// ── Signin ───────────────────────────────────────────────────────────────────

func TestAuthService_Signin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	stored := models.User{
		ID:           "0190b9a0-0000-7000-8000-000000000002",
		Username:     "bob",
		Email:        "bob@example.com",
		PasswordHash: hashed(t, "hunter2"),
	}
	repo.EXPECT().FindUserByEmail(ctx, "bob@example.com").Return(stored, nil)

	user, token, err := svc.Signin(ctx, models.SigninRequest{Email: "BOB@example.com", Password: "hunter2"})
	require.NoError(t, err)

	assert.Equal(t, stored.ID, user.ID)
	assert.NotEmpty(t, token.String())
	assert.Equal(t, stored.ID, token.Claims.Subject)
}

func TestAuthService_Signin_MissingEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)

	_, _, err := svc.Signin(context.Background(), models.SigninRequest{Password: "pw"})

	assert.ErrorIs(t, err, validators.ErrEmailRequired)
}

func TestAuthService_Signin_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindUserByEmail(gomock.Any(), "ghost@example.com").Return(models.User{}, store.ErrUserNotFound)

	_, _, err := svc.Signin(context.Background(), models.SigninRequest{Email: "ghost@example.com", Password: "pw"})

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthService_Signin_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindUserByEmail(gomock.Any(), "bob@example.com").Return(models.User{
		ID:           "0190b9a0-0000-7000-8000-000000000002",
		Email:        "bob@example.com",
		PasswordHash: hashed(t, "hunter2"),
	}, nil)

	_, token, err := svc.Signin(context.Background(), models.SigninRequest{Email: "bob@example.com", Password: "wrong"})

	assert.ErrorIs(t, err, ErrWrongPassword)
	assert.Empty(t, token.String(), "no token must be issued on a wrong password")
}

// ── CurrentUser ──────────────────────────────────────────────────────────────

func TestAuthService_CurrentUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)

	principal := models.Principal{ID: "0190b9a0-0000-7000-8000-000000000003", Username: "c", Email: "c@x.com"}
	ctx := utils.WithPrincipal(context.Background(), principal)

	repo.EXPECT().FindUserByID(ctx, principal.ID).Return(models.User{ID: principal.ID, Username: "c"}, nil)

	user, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, principal.ID, user.ID)
}

func TestAuthService_CurrentUser_NoPrincipal(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.CurrentUser(context.Background())

	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestAuthService_CurrentUser_DeletedAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := utils.WithPrincipal(context.Background(), models.Principal{ID: "0190b9a0-0000-7000-8000-000000000004"})

	repo.EXPECT().FindUserByID(ctx, gomock.Any()).Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.CurrentUser(ctx)

	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

// ── ParseToken ───────────────────────────────────────────────────────────────

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)

	foreign, err := utils.GenerateJWTToken(testIssuer, models.Principal{ID: "x"}, time.Hour, "other-key")
	require.NoError(t, err)

	for name, tok := range map[string]string{
		"garbage":      "not.a.jwt",
		"empty":        "",
		"wrong secret": foreign.String(),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseToken(context.Background(), tok)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}
