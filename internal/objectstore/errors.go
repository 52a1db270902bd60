package objectstore

import "errors"

var (
	// ErrUnsupportedType is returned for content types outside the allow-list.
	ErrUnsupportedType = errors.New("invalid file type")

	// ErrPayloadTooLarge is returned when a file exceeds the upload limit.
	ErrPayloadTooLarge = errors.New("file is too large")

	// ErrEmptyFile is returned for zero-length uploads.
	ErrEmptyFile = errors.New("file is empty")

	// ErrStorage wraps every provider failure.
	ErrStorage = errors.New("object storage error")

	// ErrUnknownProvider is returned by NewObjectStorage for an unsupported provider name.
	ErrUnknownProvider = errors.New("unknown object storage provider")
)
