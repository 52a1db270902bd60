package service

import (
	"github.com/MKhiriev/resume-keeper/internal/config"
	"github.com/MKhiriev/resume-keeper/internal/logger"
	"github.com/MKhiriev/resume-keeper/internal/objectstore"
	"github.com/MKhiriev/resume-keeper/internal/store"
	"github.com/MKhiriev/resume-keeper/internal/validators"
)

type Services struct {
	AuthService   AuthService
	ResumeService ResumeService
	HealthService HealthService
}

// NewServices wires the services over the repositories and the injected
// object storage client. Resume requests pass the validation wrapper first.
func NewServices(storages *store.Storages, objectStorage objectstore.ObjectStorage, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	policy := objectstore.NewPolicy(cfg.Server.UploadLimit, cfg.Storage.Objects.AllowImages)
	validator := validators.NewRequestValidator(policy)

	resumeService := NewResumeValidationService(validator).
		Wrap(NewResumeService(storages.ResumeRepository, objectStorage, logger))

	return &Services{
		AuthService:   NewAuthService(storages.UserRepository, validator, cfg.App, logger),
		ResumeService: resumeService,
		HealthService: NewHealthService(cfg.App, logger),
	}
}
