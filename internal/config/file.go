// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that decodes from a Go duration string
// ("30s", "1m30s") in both JSON and YAML files.
type Duration time.Duration

// UnmarshalJSON accepts a duration string or a number of nanoseconds.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		return d.set(s)
	}

	var n int64
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("invalid duration %s", string(b))
	}
	*d = Duration(n)
	return nil
}

// UnmarshalYAML accepts a duration string.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return d.set(s)
}

func (d *Duration) set(s string) error {
	if s == "" {
		*d = 0
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// fileConfig mirrors [StructuredConfig] in the shape accepted by config files.
type fileConfig struct {
	App struct {
		LogLevel string `json:"log_level" yaml:"log_level"`
		LogFile  string `json:"log_file" yaml:"log_file"`
	} `json:"app" yaml:"app"`

	Adapter struct {
		APIURL             string   `json:"api_url" yaml:"api_url"`
		RequestTimeout     Duration `json:"request_timeout" yaml:"request_timeout"`
		MultipartDataField string   `json:"multipart_data_field" yaml:"multipart_data_field"`
	} `json:"adapter" yaml:"adapter"`

	Credentials struct {
		Type       string `json:"type" yaml:"type"`
		Path       string `json:"path" yaml:"path"`
		Passphrase string `json:"passphrase" yaml:"passphrase"`
	} `json:"credentials" yaml:"credentials"`

	Notifier struct {
		Sinks          []string `json:"sinks" yaml:"sinks"`
		WebhookURL     string   `json:"webhook_url" yaml:"webhook_url"`
		WebhookTimeout Duration `json:"webhook_timeout" yaml:"webhook_timeout"`
		QueueSize      int      `json:"queue_size" yaml:"queue_size"`
	} `json:"notifier" yaml:"notifier"`

	FakeAPI struct {
		Address       string   `json:"address" yaml:"address"`
		Email         string   `json:"email" yaml:"email"`
		Password      string   `json:"password" yaml:"password"`
		TokenSignKey  string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenDuration Duration `json:"token_duration" yaml:"token_duration"`
	} `json:"fake_api" yaml:"fake_api"`
}

// parseFile reads the config file at path and decodes it as YAML when the
// extension is .yaml or .yml, as JSON otherwise.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return nil, fmt.Errorf("error parsing config file %s: %w", path, err)
	}

	return fc.toStructured(), nil
}

func (fc *fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: fc.App.LogLevel,
			LogFile:  fc.App.LogFile,
		},
		Adapter: Adapter{
			APIURL:             fc.Adapter.APIURL,
			RequestTimeout:     time.Duration(fc.Adapter.RequestTimeout),
			MultipartDataField: fc.Adapter.MultipartDataField,
		},
		Credentials: Credentials{
			Type:       fc.Credentials.Type,
			Path:       fc.Credentials.Path,
			Passphrase: fc.Credentials.Passphrase,
		},
		Notifier: Notifier{
			Sinks:          fc.Notifier.Sinks,
			WebhookURL:     fc.Notifier.WebhookURL,
			WebhookTimeout: time.Duration(fc.Notifier.WebhookTimeout),
			QueueSize:      fc.Notifier.QueueSize,
		},
		FakeAPI: FakeAPI{
			Address:       fc.FakeAPI.Address,
			Email:         fc.FakeAPI.Email,
			Password:      fc.FakeAPI.Password,
			TokenSignKey:  fc.FakeAPI.TokenSignKey,
			TokenDuration: time.Duration(fc.FakeAPI.TokenDuration),
		},
	}
}
