// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// access layer, the CLI and the fake API handlers.
//
// All Msg* constants are human-readable message strings that end up in
// notifications, HTTP error bodies or log entries. Keeping them in one place
// ensures consistent wording between the client and the fake API.
package app

const (
	// MsgUnknownError is shown when a failed call carries neither a
	// server-provided message nor a transport message.
	MsgUnknownError = "Unknown error"

	// MsgRequestFailedWithStatus is the transport-level message of an HTTP
	// failure without a structured error body. Formatted with the status code.
	MsgRequestFailedWithStatus = "Request failed with status code %d"

	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "Invalid data provided"

	// MsgInvalidEmailPassword is returned when the supplied email/password
	// combination does not match the seeded account.
	MsgInvalidEmailPassword = "Invalid email or password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is either
	// expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "Token is expired or invalid"

	// MsgAuthorizationRequired is returned when a protected endpoint is called
	// without an Authorization header.
	MsgAuthorizationRequired = "Authorization required"

	// MsgNotFound is returned when the addressed resource does not exist.
	MsgNotFound = "Resource not found"

	// MsgAlreadyExists is returned when a create would duplicate a unique key.
	MsgAlreadyExists = "Resource already exists"

	// MsgUnsupportedMediaType is returned when the request Content-Type is
	// neither JSON nor multipart form data.
	MsgUnsupportedMediaType = "Unsupported media type"
)

// Error codes carried in the "code" field of the error body.
const (
	CodeBadRequest     = "BAD_REQUEST"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeNotFound       = "NOT_FOUND"
	CodeConflict       = "CONFLICT"
	CodeUnsupported    = "UNSUPPORTED_MEDIA_TYPE"
	CodeInternalServer = "INTERNAL_SERVER_ERROR"
)
