// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the admin command-line application.
//
// Every command is a route of a [guard.Router]; commands that talk to the
// API are guarded so that an anonymous user is sent through login first.
// Failed API calls have already been shown by the notifier, so commands
// only return the error for the exit status.
package client
