// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using caarlos0/env.
// Fields are mapped via the `env` and `envPrefix` tags of
// [StructuredConfig]; list values are comma separated. Backend and sink
// names are lower-cased and trimmed so "Toast, LOG" selects the same sinks
// as "toast,log".
func parseEnv(cfg *StructuredConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	cfg.Credentials.Type = strings.ToLower(strings.TrimSpace(cfg.Credentials.Type))

	sinks := cfg.Notifier.Sinks[:0]
	for _, s := range cfg.Notifier.Sinks {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			sinks = append(sinks, s)
		}
	}
	if len(sinks) == 0 {
		sinks = nil
	}
	cfg.Notifier.Sinks = sinks

	return nil
}
