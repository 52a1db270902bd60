package service

import "errors"

// Errors returned to the HTTP layer. Their text is shown to API clients.
var (
	ErrEmailAlreadyExists = errors.New("User with email or username already exists")
	ErrUserNotFound       = errors.New("User does not exist")
	ErrWrongPassword      = errors.New("Invalid user credentials")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrNotAuthenticated        = errors.New("Unauthorized request")

	ErrResumeNotFound = errors.New("Resume not found")
)
