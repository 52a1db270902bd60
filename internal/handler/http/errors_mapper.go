package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/resume-keeper/internal/logger"
	"github.com/MKhiriev/resume-keeper/internal/objectstore"
	"github.com/MKhiriev/resume-keeper/internal/service"
	"github.com/MKhiriev/resume-keeper/internal/utils"
	"github.com/MKhiriev/resume-keeper/internal/validators"
	"github.com/MKhiriev/resume-keeper/models"
)

var errorStatusMap = map[error]int{
	validators.ErrAllFieldsRequired: http.StatusBadRequest,
	validators.ErrInvalidEmail:      http.StatusBadRequest,
	validators.ErrPasswordTooLong:   http.StatusBadRequest,
	validators.ErrEmailRequired:     http.StatusBadRequest,
	validators.ErrPasswordRequired:  http.StatusBadRequest,
	validators.ErrNoFileUploaded:    http.StatusBadRequest,
	validators.ErrEmptyResumeID:     http.StatusBadRequest,

	objectstore.ErrUnsupportedType: http.StatusBadRequest,
	objectstore.ErrEmptyFile:       http.StatusBadRequest,
	objectstore.ErrPayloadTooLarge: http.StatusRequestEntityTooLarge,
	objectstore.ErrStorage:         http.StatusInternalServerError,

	ErrInvalidJSON:                http.StatusBadRequest,
	utils.ErrEmptyBody:            http.StatusBadRequest,
	ErrTooManyFiles:               http.StatusBadRequest,
	ErrInvalidMultipartForm:       http.StatusBadRequest,
	ErrRequestTooLarge:            http.StatusRequestEntityTooLarge,
	ErrNoToken:                    http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrRouteNotFound:              http.StatusNotFound,

	service.ErrEmailAlreadyExists:      http.StatusConflict,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrNotAuthenticated:        http.StatusUnauthorized,
	service.ErrUserNotFound:            http.StatusNotFound,
	service.ErrResumeNotFound:          http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the error envelope. Client errors carry err's text
// as the message; server errors carry serverMessage and expose err's text in
// the error field.
func writeError(w http.ResponseWriter, r *http.Request, err error, serverMessage string) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	resp := models.ErrorResponse{Response: models.Response{Success: false, Message: err.Error()}}
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("path", r.URL.Path).Msg(serverMessage)
		resp.Message = serverMessage
		resp.Error = err.Error()
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	_, _ = utils.WriteJSON(w, resp, status)
}
