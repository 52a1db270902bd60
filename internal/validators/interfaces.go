// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads at the service boundary.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for scalar values.
//
// Usage patterns:
//  1. Build a Validator with NewRequestValidator.
//  2. Inject it into the service validation wrappers.
//  3. Call Validate with context, value, and optional field names.
//
// Validation failures are returned as the sentinel errors of this package
// (or of objectstore for upload policy violations) so the HTTP layer can
// turn them into 400 responses.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
