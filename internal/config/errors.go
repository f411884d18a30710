package config

import "errors"

// Validation errors returned by [ClientConfig.validate] and
// [FakeAPIConfig.validate] when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid access layer settings
	// (for example, missing API URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidCredentialsConfigs indicates an unknown credentials backend
	// or a missing path for a persistent one.
	ErrInvalidCredentialsConfigs = errors.New("invalid credentials configuration")
	// ErrInvalidNotifierConfigs indicates an unknown sink or a webhook sink
	// without URL.
	ErrInvalidNotifierConfigs = errors.New("invalid notifier configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unparsable log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidFakeAPIConfigs indicates missing fake API server settings.
	ErrInvalidFakeAPIConfigs = errors.New("invalid fake api configuration")
)
