package config

import "errors"

// Validation errors returned when a required configuration group is
// incomplete. They are wrapped with the name of the offending setting.
var (
	// ErrInvalidAppConfigs indicates missing token settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates a missing address or a non-positive
	// body limit.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates an empty database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidObjectStorageConfigs indicates an unknown provider or missing
	// bucket or credentials.
	ErrInvalidObjectStorageConfigs = errors.New("invalid object storage configuration")
	// ErrInvalidAdapterConfigs indicates a client without server address or
	// request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
