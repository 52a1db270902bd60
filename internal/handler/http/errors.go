// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrNoToken is returned by the auth middleware when neither the
	// jwtToken cookie nor an "Authorization" header is present.
	ErrNoToken = errors.New("Unauthorized request: no token provided")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidJSON is returned when a JSON body cannot be decoded.
	ErrInvalidJSON = errors.New("Invalid JSON was passed")

	// ErrRequestTooLarge is returned when a JSON body exceeds its limit.
	ErrRequestTooLarge = errors.New("request body is too large")

	// ErrTooManyFiles is returned when the upload form carries more than one
	// file in the resume field.
	ErrTooManyFiles = errors.New("only one file can be uploaded at a time")

	// ErrInvalidMultipartForm is returned for a malformed multipart body.
	ErrInvalidMultipartForm = errors.New("invalid multipart form")

	// ErrRouteNotFound is reported for unknown routes and unsupported methods.
	ErrRouteNotFound = errors.New("Route not found")
)
