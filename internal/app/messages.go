// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// resume-keeper server handlers and services.
//
// All Msg* constants are human-readable strings written into the message
// field of API responses. Keeping them in one place ensures consistent
// wording throughout the API.
package app

const (
	// MsgUserRegistered is returned by a successful signup.
	MsgUserRegistered = "User registered Successfully"

	// MsgUserLoggedIn is returned by a successful signin.
	MsgUserLoggedIn = "User logged In Successfully"

	// MsgUserFetched is returned by /api/auth/me.
	MsgUserFetched = "User fetched successfully"

	// MsgRegistrationFailed is returned when signup fails for a reason the
	// client cannot resolve.
	MsgRegistrationFailed = "Something went wrong while registering the user"

	// MsgTokenParseFailed is returned when a token could not be checked
	// because of a server-side failure.
	MsgTokenParseFailed = "error occurred during parsing token"

	MsgResumeUploaded = "Resume uploaded successfully"
	MsgResumesFetched = "Resumes fetched successfully"
	MsgResumeDeleted  = "Resume deleted successfully"
	MsgBackendRunning = "resume-keeper backend is running"
	MsgStatusOK       = "OK"

	// MsgServerError is the message of every other 5xx response. The cause
	// is reported separately in the error field.
	MsgServerError = "Server error"
)
