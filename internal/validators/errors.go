package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrAllFieldsRequired = errors.New("All fields are required")
	ErrInvalidEmail      = errors.New("invalid email address")
	ErrPasswordTooLong   = errors.New("password must be at most 72 bytes long")
	ErrEmailRequired     = errors.New("email is required")
	ErrPasswordRequired  = errors.New("password is required")
	ErrNoFileUploaded    = errors.New("No file uploaded")
	ErrEmptyResumeID     = errors.New("resume id is required")
)
