// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the resume-keeper REST API.
//
// The primary abstraction is [ServerAdapter], which decouples the CLI client
// from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error responses are mapped from HTTP status codes by mapHTTPError so that
// callers can use [errors.Is] for transport-agnostic error handling (e.g.
// [ErrConflict] for 409, [ErrUnauthorized] for 401). The server's message is
// kept as the error text.
package adapter

import (
	"context"

	"github.com/MKhiriev/resume-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the resume-keeper server.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Signup registers a new account. The returned token is stored via
	// SetToken.
	Signup(ctx context.Context, req models.SignupRequest) (models.User, error)

	// Signin authenticates with email and password and stores the returned
	// token via SetToken.
	Signin(ctx context.Context, req models.SigninRequest) (models.User, error)

	// Me returns the account the stored token belongs to.
	Me(ctx context.Context) (models.User, error)

	// Health reports the server status.
	Health(ctx context.Context) (models.HealthResponse, error)

	// UploadResume sends file as multipart form data in the resume field.
	UploadResume(ctx context.Context, file models.UploadFile) (models.ResumeSummary, error)

	// ListResumes returns the catalog, newest first.
	ListResumes(ctx context.Context) ([]models.Resume, error)

	// DeleteResume removes the resume with the given id.
	DeleteResume(ctx context.Context, id string) error
}
