// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package credentials persists the bearer token used by the access layer.
//
// Every backend stores a single string under the fixed key [TokenKey]. A
// missing token is reported as ("", nil) so callers can treat "no token" and
// "empty token" alike.
package credentials

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-biz-admin/internal/config"
	"github.com/MKhiriev/go-biz-admin/internal/crypto"
	"github.com/MKhiriev/go-biz-admin/internal/logger"
)

//go:generate mockgen -source=provider.go -destination=../mock/provider_mock.go -package=mock

// TokenKey is the key the token is stored under in every backend.
const TokenKey = "token"

// Provider is the capability to read and write the persisted token.
type Provider interface {
	// Get returns the stored token, or "" when none is stored.
	Get() (string, error)
	// Set replaces the stored token.
	Set(token string) error
	// Clear removes the stored token. Clearing an empty store is not an error.
	Clear() error
	// Close releases resources held by the backend.
	Close() error
}

// New builds the backend selected by cfg.Type.
func New(ctx context.Context, cfg config.Credentials, log *logger.Logger) (Provider, error) {
	log.Debug().Str("func", "credentials.New").Str("type", cfg.Type).Str("path", cfg.Path).Msg("opening credentials storage")

	switch cfg.Type {
	case config.CredentialsMemory:
		return NewMemoryProvider(), nil
	case config.CredentialsFile:
		var sealer crypto.Sealer
		if cfg.Passphrase != "" {
			s, err := crypto.NewSealer(cfg.Passphrase)
			if err != nil {
				return nil, err
			}
			sealer = s
		}
		return NewFileProvider(cfg.Path, sealer), nil
	case config.CredentialsBolt:
		return NewBoltProvider(cfg.Path)
	case config.CredentialsSQLite:
		return NewSQLiteProvider(ctx, cfg.Path, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Type)
	}
}
