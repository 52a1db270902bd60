package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/resume-keeper/internal/config"
	"github.com/MKhiriev/resume-keeper/internal/logger"
	"github.com/MKhiriev/resume-keeper/internal/store"
	"github.com/MKhiriev/resume-keeper/internal/utils"
	"github.com/MKhiriev/resume-keeper/internal/validators"
	"github.com/MKhiriev/resume-keeper/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles account creation, credential verification and the JWT
// lifecycle, using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator checks signup and signin requests before any lookup.
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validator,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Signup creates a new account and issues an access token for it.
//
// Returns the persisted user or:
//   - a validators error if a field is blank, the email is malformed or
//     the password is longer than bcrypt accepts.
//   - ErrEmailAlreadyExists if the email or username is taken.
func (a *authService) Signup(ctx context.Context, req models.SignupRequest) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("func", "*authService.Signup").Msg("invalid signup request")
		return models.User{}, models.Token{}, err
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return models.User{}, models.Token{}, validators.ErrPasswordTooLong
		}
		return models.User{}, models.Token{}, err
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     strings.TrimSpace(req.Username),
		Email:        normalizeEmail(req.Email),
		PasswordHash: passwordHash,
	})
	if err != nil {
		if errors.Is(err, store.ErrUserAlreadyExists) {
			log.Debug().Str("func", "*authService.Signup").Str("email", normalizeEmail(req.Email)).Msg("user already exists")
			return models.User{}, models.Token{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*authService.Signup").Msg("user creation ended with error")
		return models.User{}, models.Token{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := a.createToken(user)
	if err != nil {
		log.Err(err).Str("func", "*authService.Signup").Str("user_id", user.ID).Msg("error issuing token")
		return models.User{}, models.Token{}, err
	}

	return user, token, nil
}

// Signin authenticates an existing account by email and password.
//
// Returns the user and a fresh token or:
//   - a validators error if the email or password is missing.
//   - ErrUserNotFound if no account has that email.
//   - ErrWrongPassword if the password does not match. No token is issued.
func (a *authService) Signin(ctx context.Context, req models.SigninRequest) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, models.Token{}, err
	}

	user, err := a.userRepository.FindUserByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, models.Token{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*authService.Signin").Msg("user search by email failed")
		return models.User{}, models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		log.Info().Str("func", "*authService.Signin").Str("user_id", user.ID).Msg("wrong password")
		return models.User{}, models.Token{}, ErrWrongPassword
	}

	token, err := a.createToken(user)
	if err != nil {
		log.Err(err).Str("func", "*authService.Signin").Str("user_id", user.ID).Msg("error issuing token")
		return models.User{}, models.Token{}, err
	}

	return user, token, nil
}

// CurrentUser loads the account of the principal attached to ctx by the
// auth middleware. A missing principal or a deleted account yields
// ErrNotAuthenticated.
func (a *authService) CurrentUser(ctx context.Context) (models.User, error) {
	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		return models.User{}, ErrNotAuthenticated
	}

	user, err := a.userRepository.FindUserByID(ctx, principal.ID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrNotAuthenticated
		}
		logger.FromContext(ctx).Err(err).Str("func", "*authService.CurrentUser").Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// ParseToken validates tokenString and returns its decoded claims. Any
// failure (bad signature, wrong issuer, expiry) yields ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.ParseToken").Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *authService) createToken(user models.User) (models.Token, error) {
	return utils.GenerateJWTToken(a.tokenIssuer, models.Principal{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}, a.tokenDuration, a.tokenSignKey)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
