package store

import (
	"context"

	"github.com/MKhiriev/resume-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists registered accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with ID and CreatedAt assigned.
	// A taken email or username yields ErrUserAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns ErrUserNotFound when no account matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByID returns ErrUserNotFound when no account matches.
	FindUserByID(ctx context.Context, id string) (models.User, error)
}

// ResumeRepository is the resume catalog.
type ResumeRepository interface {
	// Insert stores resume, assigning ID and UploadedAt when they are empty.
	Insert(ctx context.Context, resume models.Resume) (models.Resume, error)
	// ListAll returns every record, newest first.
	ListAll(ctx context.Context) ([]models.Resume, error)
	// FindByID returns ErrResumeNotFound for unknown or malformed ids.
	FindByID(ctx context.Context, id string) (models.Resume, error)
	// DeleteByID returns ErrResumeNotFound when nothing was deleted.
	DeleteByID(ctx context.Context, id string) error
}
