// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for go-biz-admin.
// It aggregates all sub-configurations and is populated by merging defaults,
// an optional JSON/YAML file, environment variables (including a .env file)
// and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as logging.
	App App `envPrefix:"APP_"`

	// Adapter holds the settings of the HTTP access layer talking to the
	// admin REST API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Credentials selects and configures the persistent token storage.
	Credentials Credentials `envPrefix:"CREDENTIALS_"`

	// Notifier configures where failed-call messages are shown.
	Notifier Notifier `envPrefix:"NOTIFIER_"`

	// FakeAPI holds settings of the in-memory development API server.
	FakeAPI FakeAPI `envPrefix:"FAKEAPI_"`

	// ConfigFilePath is the optional path to a JSON or YAML configuration
	// file, chosen by extension. Populated via the CONFIG environment
	// variable or the -c / -config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is the file the CLI appends its logs to.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Adapter holds settings for the outbound HTTP access layer.
type Adapter struct {
	// APIURL is the base URL of the admin REST API
	// (e.g. "https://admin.example.com"). The scheme defaults to http://.
	// Env: ADAPTER_API_URL
	APIURL string `env:"API_URL"`

	// RequestTimeout bounds a single outbound request (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MultipartDataField is the form field carrying the JSON part of
	// multipart requests.
	// Env: ADAPTER_MULTIPART_DATA_FIELD
	MultipartDataField string `env:"MULTIPART_DATA_FIELD"`
}

// Credentials selects the backend that persists the bearer token.
type Credentials struct {
	// Type is one of "memory", "file", "bbolt", "sqlite".
	// Env: CREDENTIALS_TYPE
	Type string `env:"TYPE"`

	// Path is the file used by the file, bbolt and sqlite backends.
	// Env: CREDENTIALS_PATH
	Path string `env:"PATH"`

	// Passphrase, when set, seals the token stored by the file backend.
	// Env: CREDENTIALS_PASSPHRASE
	Passphrase string `env:"PASSPHRASE"`
}

// Notifier configures the user notification sinks.
type Notifier struct {
	// Sinks lists enabled sinks: "log", "toast", "webhook".
	// Env: NOTIFIER_SINKS (comma separated)
	Sinks []string `env:"SINKS"`

	// WebhookURL receives a POST per failed call when the webhook sink is on.
	// Env: NOTIFIER_WEBHOOK_URL
	WebhookURL string `env:"WEBHOOK_URL"`

	// WebhookTimeout bounds a single webhook delivery.
	// Env: NOTIFIER_WEBHOOK_TIMEOUT
	WebhookTimeout time.Duration `env:"WEBHOOK_TIMEOUT"`

	// QueueSize is the capacity of the asynchronous dispatch queue.
	// Env: NOTIFIER_QUEUE_SIZE
	QueueSize int `env:"QUEUE_SIZE"`
}

// FakeAPI holds settings of the development API server.
type FakeAPI struct {
	// Address is the listen address in "host:port" form.
	// Env: FAKEAPI_ADDRESS
	Address string `env:"ADDRESS"`

	// Email and Password are the seeded administrator credentials.
	// Env: FAKEAPI_EMAIL, FAKEAPI_PASSWORD
	Email    string `env:"EMAIL"`
	Password string `env:"PASSWORD"`

	// TokenSignKey signs the JWTs issued on login.
	// Env: FAKEAPI_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenDuration is the lifetime written into issued tokens.
	// Env: FAKEAPI_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources. Precedence, lowest to highest:
//  1. built-in defaults
//  2. JSON/YAML file (path resolved from env or flags)
//  3. environment variables, after loading the .env file
//  4. command-line flags parsed from args
//
// It returns the merged config and the positional arguments left after flag
// parsing.
func GetStructuredConfig(args []string) (*StructuredConfig, []string, error) {
	b := newConfigBuilder().
		withDotEnv(dotEnvPath()).
		withEnv().
		withFlags(args).
		withFile()

	cfg, err := b.build()
	if err != nil {
		return nil, nil, err
	}
	return cfg, b.args, nil
}
