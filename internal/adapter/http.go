package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/resume-keeper/internal/config"
	"github.com/MKhiriev/resume-keeper/internal/logger"
	"github.com/MKhiriev/resume-keeper/internal/utils"
	"github.com/MKhiriev/resume-keeper/models"
	"github.com/go-resty/resty/v2"
)

const (
	// authCookieName is the cookie the server sets on signin.
	authCookieName  = "jwtToken"
	resumeFormField = "resume"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from cfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. The token is whitespace-trimmed.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Signup implements [ServerAdapter] via POST /api/auth/signup.
func (h *httpServerAdapter) Signup(ctx context.Context, req models.SignupRequest) (models.User, error) {
	var result models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/api/auth/signup")
	if err != nil {
		return models.User{}, fmt.Errorf("signup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	h.SetToken(result.JWTToken)
	return result.User, nil
}

// Signin implements [ServerAdapter] via POST /api/auth/signin. The token is
// taken from the response body, or from the jwtToken cookie when the body
// carries none.
func (h *httpServerAdapter) Signin(ctx context.Context, req models.SigninRequest) (models.User, error) {
	var result models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/api/auth/signin")
	if err != nil {
		return models.User{}, fmt.Errorf("signin request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token := result.JWTToken
	if token == "" {
		for _, c := range resp.Cookies() {
			if c.Name == authCookieName {
				token = c.Value
			}
		}
	}
	if token == "" {
		return models.User{}, errors.New("signin response carries no token")
	}

	h.SetToken(token)
	return result.User, nil
}

// Me implements [ServerAdapter] via GET /api/auth/me.
func (h *httpServerAdapter) Me(ctx context.Context) (models.User, error) {
	var result models.UserResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&result).
		Get("/api/auth/me")
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return result.User, nil
}

// Health implements [ServerAdapter] via GET /api/health.
func (h *httpServerAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	var result models.HealthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/api/health")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthResponse{}, err
	}

	return result, nil
}

// UploadResume implements [ServerAdapter] via POST /api/resumes/upload.
func (h *httpServerAdapter) UploadResume(ctx context.Context, file models.UploadFile) (models.ResumeSummary, error) {
	var result models.ResumeUploadResponse

	resp, err := h.authedRequest(ctx).
		SetMultipartField(resumeFormField, file.Filename, file.ContentType, bytes.NewReader(file.Data)).
		SetResult(&result).
		Post("/api/resumes/upload")
	if err != nil {
		return models.ResumeSummary{}, fmt.Errorf("upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ResumeSummary{}, err
	}

	h.logger.Debug().Str("resume_id", result.Resume.ID).Msg("resume uploaded")
	return result.Resume, nil
}

// ListResumes implements [ServerAdapter] via GET /api/resumes.
func (h *httpServerAdapter) ListResumes(ctx context.Context) ([]models.Resume, error) {
	var result models.ResumeListResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&result).
		Get("/api/resumes")
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Resumes, nil
}

// DeleteResume implements [ServerAdapter] via DELETE /api/resumes/{id}.
func (h *httpServerAdapter) DeleteResume(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		Delete("/api/resumes/{id}")
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
