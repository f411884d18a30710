// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog"
)

func (cfg *ClientConfig) validate() error {
	if err := validateApp(cfg.App); err != nil {
		return err
	}

	if cfg.Adapter.APIURL == "" || cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.MultipartDataField == "" {
		return ErrInvalidAdapterConfigs
	}

	switch cfg.Credentials.Type {
	case CredentialsMemory:
	case CredentialsFile, CredentialsBolt, CredentialsSQLite:
		if cfg.Credentials.Path == "" {
			return fmt.Errorf("%w: %s backend needs a path", ErrInvalidCredentialsConfigs, cfg.Credentials.Type)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidCredentialsConfigs, cfg.Credentials.Type)
	}

	known := []string{SinkLog, SinkToast, SinkWebhook}
	for _, sink := range cfg.Notifier.Sinks {
		if !slices.Contains(known, sink) {
			return fmt.Errorf("%w: unknown sink %q", ErrInvalidNotifierConfigs, sink)
		}
	}
	if slices.Contains(cfg.Notifier.Sinks, SinkWebhook) && cfg.Notifier.WebhookURL == "" {
		return fmt.Errorf("%w: webhook sink needs a URL", ErrInvalidNotifierConfigs)
	}
	if cfg.Notifier.QueueSize < 0 {
		return ErrInvalidNotifierConfigs
	}

	return nil
}

func (cfg *FakeAPIConfig) validate() error {
	if err := validateApp(cfg.App); err != nil {
		return err
	}

	if cfg.FakeAPI.Address == "" || cfg.FakeAPI.TokenSignKey == "" || cfg.FakeAPI.TokenDuration <= 0 {
		return ErrInvalidFakeAPIConfigs
	}

	return nil
}

func validateApp(app App) error {
	if _, err := zerolog.ParseLevel(app.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAppConfigs, err)
	}
	return nil
}
