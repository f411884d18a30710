// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks admin entities before they are sent to the API
// or accepted by the fake API.
//
// A [Validator] validates a value, optionally restricted to a set of named
// fields. The services validate outgoing requests with it and the fake API
// validates incoming ones, so both sides reject the same input.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
