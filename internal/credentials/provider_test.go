package credentials

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-biz-admin/internal/config"
	"github.com/MKhiriev/go-biz-admin/internal/logger"
)

func TestNew_Backends(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		cfg  config.Credentials
	}{
		{name: "memory", cfg: config.Credentials{Type: config.CredentialsMemory}},
		{name: "file", cfg: config.Credentials{Type: config.CredentialsFile, Path: filepath.Join(dir, "c.json")}},
		{name: "sealed file", cfg: config.Credentials{Type: config.CredentialsFile, Path: filepath.Join(dir, "s.json"), Passphrase: "pw"}},
		{name: "bbolt", cfg: config.Credentials{Type: config.CredentialsBolt, Path: filepath.Join(dir, "c.db")}},
		{name: "sqlite", cfg: config.Credentials{Type: config.CredentialsSQLite, Path: filepath.Join(dir, "c.sqlite")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(context.Background(), tt.cfg, logger.Nop())
			require.NoError(t, err)
			defer p.Close()

			require.NoError(t, p.Set("abc"))
			token, err := p.Get()
			require.NoError(t, err)
			assert.Equal(t, "abc", token)
		})
	}
}

func TestNew_UnknownBackend(t *testing.T) {
	_, err := New(context.Background(), config.Credentials{Type: "keychain"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownBackend)
}
