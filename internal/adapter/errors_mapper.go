package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/resume-keeper/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := errorText(resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusRequestEntityTooLarge:
		return fmt.Errorf("%w: %s", ErrPayloadTooLarge, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// errorText prefers the message of the JSON error envelope, followed by its
// error detail, and falls back to the raw body or the status text.
func errorText(resp *resty.Response) string {
	raw := strings.TrimSpace(string(resp.Body()))

	var envelope models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &envelope); err == nil && envelope.Message != "" {
		if envelope.Error != "" {
			return envelope.Message + " (" + envelope.Error + ")"
		}
		return envelope.Message
	}

	if raw == "" {
		return http.StatusText(resp.StatusCode())
	}
	return raw
}
