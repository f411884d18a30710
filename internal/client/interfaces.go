// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-biz-admin/models"
)

// Client defines the lifecycle contract of runnable client applications.
type Client interface {
	// Run executes the command given by args and returns once it is done.
	Run(ctx context.Context, args []string) error
}

// Prompter is the interactive side of the CLI, used only when stdin is a
// terminal.
type Prompter interface {
	// LoginForm asks for credentials and signs in. email pre-fills the form.
	LoginForm(ctx context.Context, email string) (models.User, error)

	// Confirm asks a yes/no question.
	Confirm(question string) (bool, error)
}
