package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	defaultRequestTimeout = 30 * time.Second
	defaultWebhookTimeout = 5 * time.Second
	defaultQueueSize      = 64
	defaultFakeAPIAddress = "localhost:8080"
	defaultTokenDuration  = 24 * time.Hour

	appDirName = "go-biz-admin"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: "info",
		},
		Adapter: Adapter{
			RequestTimeout:     defaultRequestTimeout,
			MultipartDataField: "data",
		},
		Credentials: Credentials{
			Type: CredentialsFile,
			Path: defaultCredentialsPath(),
		},
		Notifier: Notifier{
			Sinks:          []string{SinkLog, SinkToast},
			WebhookTimeout: defaultWebhookTimeout,
			QueueSize:      defaultQueueSize,
		},
		FakeAPI: FakeAPI{
			Address:       defaultFakeAPIAddress,
			Email:         "admin@example.com",
			Password:      "admin",
			TokenSignKey:  "fakeapi-dev-key",
			TokenDuration: defaultTokenDuration,
		},
	}
}

func defaultCredentialsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, appDirName, "credentials.json")
}
