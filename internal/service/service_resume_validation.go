package service

import (
	"context"

	"github.com/MKhiriev/resume-keeper/internal/validators"
	"github.com/MKhiriev/resume-keeper/models"
)

// ResumeValidationService checks uploads and ids before handing them to the
// wrapped ResumeService. Validation errors are returned unchanged.
type ResumeValidationService struct {
	inner     ResumeService
	validator validators.Validator
}

func NewResumeValidationService(validator validators.Validator) ResumeServiceWrapper {
	return &ResumeValidationService{
		validator: validator,
	}
}

func (v *ResumeValidationService) Upload(ctx context.Context, file models.UploadFile) (models.Resume, error) {
	if err := v.validator.Validate(ctx, file); err != nil {
		return models.Resume{}, err
	}

	return v.inner.Upload(ctx, file)
}

func (v *ResumeValidationService) List(ctx context.Context) ([]models.Resume, error) {
	return v.inner.List(ctx)
}

func (v *ResumeValidationService) Delete(ctx context.Context, id string) error {
	if err := v.validator.Validate(ctx, id, validators.FieldResumeID); err != nil {
		return err
	}

	return v.inner.Delete(ctx, id)
}

func (v *ResumeValidationService) Wrap(wrapper ResumeService) ResumeService {
	v.inner = wrapper
	return v
}
