package service

import (
	"context"

	"github.com/MKhiriev/resume-keeper/models"
)

// ResumeService runs the upload, list and delete workflows over the object
// storage and the resume catalog.
type ResumeService interface {
	// Upload stores file remotely and records it in the catalog.
	Upload(ctx context.Context, file models.UploadFile) (models.Resume, error)
	// List returns every catalog record, newest first.
	List(ctx context.Context) ([]models.Resume, error)
	// Delete removes the catalog record and, best effort, its stored object.
	Delete(ctx context.Context, id string) error
}

type AuthService interface {
	Signup(ctx context.Context, req models.SignupRequest) (models.User, models.Token, error)
	Signin(ctx context.Context, req models.SigninRequest) (models.User, models.Token, error)
	CurrentUser(ctx context.Context) (models.User, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type HealthService interface {
	Status(ctx context.Context) models.HealthResponse
}

// ResumeServiceWrapper defines middleware composition for ResumeService.
// Implementations wrap an existing ResumeService to add behavior such as
// logging or validating.
type ResumeServiceWrapper interface {
	Wrap(ResumeService) ResumeService // returns a decorated ResumeService applying additional behavior
}
