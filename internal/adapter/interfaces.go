// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the single choke point for outgoing calls to the admin
// REST API.
//
// The primary abstraction is [APIClient]. Every call made through it:
//   - carries "Authorization: Bearer <token>" when the injected credentials
//     provider holds a token;
//   - is sent as application/json unless its body is a
//     [models.MultipartForm], in which case the transport sets the multipart
//     Content-Type with its boundary;
//   - on failure yields an [*APIError] whose message is derived by
//     [ErrorMessage], after the injected notifier has been called exactly
//     once with that message.
//
// Successful responses are passed through unchanged. Envelope normalization
// is opt-in via [Response.Content] and [Response.DecodeContent].
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/api_client_mock.go -package=mock

// APIClient is the generic HTTP surface of the access layer. Paths are
// relative to the configured base URL.
type APIClient interface {
	// Get issues GET path.
	Get(ctx context.Context, path string, opts ...RequestOption) (*Response, error)

	// Post issues POST path with body. body is JSON-encoded unless it is a
	// *models.MultipartForm.
	Post(ctx context.Context, path string, body any, opts ...RequestOption) (*Response, error)

	// Put issues PUT path with body, encoded like Post.
	Put(ctx context.Context, path string, body any, opts ...RequestOption) (*Response, error)

	// Delete issues DELETE path.
	Delete(ctx context.Context, path string, opts ...RequestOption) (*Response, error)
}
