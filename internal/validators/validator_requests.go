package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/resume-keeper/internal/objectstore"
	"github.com/MKhiriev/resume-keeper/models"
	"github.com/go-playground/validator/v10"
)

// Field name constants used to scope validation of scalar values.
const (
	// FieldResumeID targets the catalog id taken from the request path.
	FieldResumeID = "resume_id"
)

// RequestValidator implements Validator for the identity requests and
// resume uploads. Struct rules come from the validate tags on the models;
// uploads are checked against the object storage policy.
type RequestValidator struct {
	validate *validator.Validate
	policy   objectstore.Policy
}

// NewRequestValidator constructs a RequestValidator enforcing policy on uploads.
func NewRequestValidator(policy objectstore.Policy) Validator {
	return &RequestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		policy:   policy,
	}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted for:
//   - models.SignupRequest
//   - models.SigninRequest
//   - models.UploadFile
//
// A string is validated according to fields, e.g. FieldResumeID.
// Any other type yields ErrUnsupportedType.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupRequest:
		return v.validateSignup(value)
	case *models.SignupRequest:
		if value == nil {
			return ErrAllFieldsRequired
		}
		return v.validateSignup(*value)
	case models.SigninRequest:
		return v.validateSignin(value)
	case *models.SigninRequest:
		if value == nil {
			return ErrEmailRequired
		}
		return v.validateSignin(*value)
	case models.UploadFile:
		return v.validateUpload(value)
	case *models.UploadFile:
		if value == nil {
			return ErrNoFileUploaded
		}
		return v.validateUpload(*value)
	case string:
		return v.validateString(value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *RequestValidator) validateSignup(req models.SignupRequest) error {
	fieldErrors, err := v.structErrors(req)
	if err != nil || len(fieldErrors) == 0 {
		return err
	}

	for _, fe := range fieldErrors {
		if fe.Tag() == "required" {
			return ErrAllFieldsRequired
		}
	}

	switch fe := fieldErrors[0]; fe.Field() {
	case "Email":
		return ErrInvalidEmail
	case "Password":
		return ErrPasswordTooLong
	default:
		return fmt.Errorf("%s: %s", strings.ToLower(fe.Field()), fe.Tag())
	}
}

func (v *RequestValidator) validateSignin(req models.SigninRequest) error {
	fieldErrors, err := v.structErrors(req)
	if err != nil || len(fieldErrors) == 0 {
		return err
	}

	if fieldErrors[0].Field() == "Email" {
		return ErrEmailRequired
	}
	return ErrPasswordRequired
}

func (v *RequestValidator) validateUpload(file models.UploadFile) error {
	if file.Filename == "" && len(file.Data) == 0 {
		return ErrNoFileUploaded
	}
	return v.policy.Check(file)
}

func (v *RequestValidator) validateString(value string, fields ...string) error {
	for _, field := range fields {
		switch field {
		case FieldResumeID:
			if strings.TrimSpace(value) == "" {
				return ErrEmptyResumeID
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

// structErrors runs the tag rules on s and returns the failed fields in
// declaration order.
func (v *RequestValidator) structErrors(s any) (validator.ValidationErrors, error) {
	err := v.validate.Struct(s)
	if err == nil {
		return nil, nil
	}

	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		return fieldErrors, nil
	}
	return nil, err
}
