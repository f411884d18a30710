package config

import "fmt"

// Credentials backends.
const (
	CredentialsMemory = "memory"
	CredentialsFile   = "file"
	CredentialsBolt   = "bbolt"
	CredentialsSQLite = "sqlite"
)

// Notification sinks.
const (
	SinkLog     = "log"
	SinkToast   = "toast"
	SinkWebhook = "webhook"
)

// ClientConfig is the configuration view used by the admin CLI.
type ClientConfig struct {
	App         App
	Adapter     Adapter
	Credentials Credentials
	Notifier    Notifier
}

// FakeAPIConfig is the configuration view used by the development API server.
type FakeAPIConfig struct {
	App     App
	FakeAPI FakeAPI
}

// GetClientConfig loads the merged configuration, validates the parts the
// CLI depends on and returns them with the positional arguments left after
// flag parsing.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	cfg, rest, err := GetStructuredConfig(args)
	if err != nil {
		return nil, nil, err
	}

	clientCfg := cfg.Client()
	if err = clientCfg.validate(); err != nil {
		return nil, nil, fmt.Errorf("error validating client config: %w", err)
	}

	return clientCfg, rest, nil
}

// GetFakeAPIConfig loads and validates the fake API server configuration.
func GetFakeAPIConfig(args []string) (*FakeAPIConfig, error) {
	cfg, _, err := GetStructuredConfig(args)
	if err != nil {
		return nil, err
	}

	fakeCfg := cfg.FakeAPIServer()
	if err = fakeCfg.validate(); err != nil {
		return nil, fmt.Errorf("error validating fake api config: %w", err)
	}

	return fakeCfg, nil
}

// Client extracts the CLI view of the merged config.
func (cfg *StructuredConfig) Client() *ClientConfig {
	return &ClientConfig{
		App:         cfg.App,
		Adapter:     cfg.Adapter,
		Credentials: cfg.Credentials,
		Notifier:    cfg.Notifier,
	}
}

// FakeAPIServer extracts the fake API view of the merged config.
func (cfg *StructuredConfig) FakeAPIServer() *FakeAPIConfig {
	return &FakeAPIConfig{
		App:     cfg.App,
		FakeAPI: cfg.FakeAPI,
	}
}
