// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-biz-admin/internal/adapter"
)

const (
	msgAPIUnreachable = "Network is down or the API is unreachable"
	msgAPITimeout     = "The API did not answer in time"
)

// loginErrorMessage picks the text shown under the login form. A call that
// never got a response is reported as a connectivity problem; the server's
// own message is shown otherwise.
func loginErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *adapter.APIError
	if !errors.As(err, &apiErr) {
		return err.Error()
	}
	if apiErr.StatusCode != 0 {
		return apiErr.Message
	}

	var timeout interface{ Timeout() bool }
	if errors.As(apiErr.Err, &timeout) && timeout.Timeout() {
		return msgAPITimeout
	}
	return msgAPIUnreachable
}
