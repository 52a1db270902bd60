package store

import "errors"

// Sentinel errors returned by the repositories. Match them with [errors.Is].
var (
	// ErrUserAlreadyExists is returned when the email or username of a new
	// account is already taken.
	ErrUserAlreadyExists = errors.New("user with email or username already exists")

	// ErrUserNotFound is returned when a lookup matches no account.
	ErrUserNotFound = errors.New("user not found")

	// ErrResumeNotFound is returned when a catalog record does not exist,
	// including when the id is not a valid UUID.
	ErrResumeNotFound = errors.New("resume not found")
)

// Low-level database errors, wrapped together with the driver error.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a statement fails at the database.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when a result row cannot be scanned.
	ErrScanningRow = errors.New("failed to scan row")
)
