// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package credentials

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/MKhiriev/go-biz-admin/internal/crypto"
)

// fileProvider keeps the token in a small JSON document.
type fileProvider struct {
	path   string
	sealer crypto.Sealer

	mu sync.Mutex
}

type fileState struct {
	Values map[string]string `json:"values"`
	Sealed bool              `json:"sealed,omitempty"`
	At     time.Time         `json:"at"`
}

// NewFileProvider returns a Provider persisting to path. When sealer is
// non-nil the token is stored sealed.
func NewFileProvider(path string, sealer crypto.Sealer) Provider {
	return &fileProvider{path: path, sealer: sealer}
}

func (f *fileProvider) Get() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	st, err := f.load()
	if err != nil {
		return "", err
	}

	value, ok := st.Values[TokenKey]
	if !ok || value == "" {
		return "", nil
	}

	if !st.Sealed {
		return value, nil
	}
	if f.sealer == nil {
		return "", fmt.Errorf("token in %s is sealed and no passphrase is configured", f.path)
	}

	plain, err := f.sealer.Open(value)
	if err != nil {
		return "", fmt.Errorf("open sealed token: %w", err)
	}
	return string(plain), nil
}

func (f *fileProvider) Set(token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	value := token
	if f.sealer != nil {
		sealed, err := f.sealer.Seal([]byte(token))
		if err != nil {
			return fmt.Errorf("seal token: %w", err)
		}
		value = sealed
	}

	return f.persist(fileState{
		Values: map[string]string{TokenKey: value},
		Sealed: f.sealer != nil,
		At:     time.Now().UTC(),
	})
}

func (f *fileProvider) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove credentials file: %w", err)
	}
	return nil
}

func (f *fileProvider) Close() error {
	return nil
}

func (f *fileProvider) load() (fileState, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fileState{}, nil
		}
		return fileState{}, fmt.Errorf("read credentials file: %w", err)
	}

	var st fileState
	if err = json.Unmarshal(data, &st); err != nil {
		return fileState{}, fmt.Errorf("decode credentials file: %w", err)
	}
	return st, nil
}

func (f *fileProvider) persist(st fileState) error {
	dir := filepath.Dir(f.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create credentials dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}

	if err = os.WriteFile(f.path, payload, 0o600); err != nil {
		return fmt.Errorf("write credentials file: %w", err)
	}
	return nil
}
