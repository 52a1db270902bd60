package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/resume-keeper/internal/utils"
)

// limitJSONBody caps the request body at the configured JSON limit.
func (h *Handler) limitJSONBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.settings.JSONBodyLimit > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, h.settings.JSONBodyLimit)
		}
		next.ServeHTTP(w, r)
	})
}

// decodeJSONBody decodes the request body into v and translates decoding
// failures into transport errors.
func decodeJSONBody(r *http.Request, v any) error {
	err := utils.DecodeJSON(r.Body, v)
	if err == nil {
		return nil
	}

	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytesErr):
		return ErrRequestTooLarge
	case errors.Is(err, utils.ErrEmptyBody):
		return err
	default:
		return ErrInvalidJSON
	}
}
