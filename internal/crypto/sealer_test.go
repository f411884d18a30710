// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSealer_EmptyPassphrase(t *testing.T) {
	s, err := NewSealer("")
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrEmptyPassphrase)
}

func TestSeal_OpenRoundTrip(t *testing.T) {
	s, err := NewSealer("correct horse")
	require.NoError(t, err)

	sealed, err := s.Seal([]byte("eyJhbGciOi.token"))
	require.NoError(t, err)
	assert.NotContains(t, sealed, "eyJhbGciOi")

	plain, err := s.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "eyJhbGciOi.token", string(plain))
}

func TestSeal_SaltAndNonceRandomness(t *testing.T) {
	s, err := NewSealer("pass")
	require.NoError(t, err)

	a, err := s.Seal([]byte("same"))
	require.NoError(t, err)
	b, err := s.Seal([]byte("same"))
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestOpen_WrongPassphrase(t *testing.T) {
	s, err := NewSealer("right")
	require.NoError(t, err)
	other, err := NewSealer("wrong")
	require.NoError(t, err)

	sealed, err := s.Seal([]byte("secret"))
	require.NoError(t, err)

	_, err = other.Open(sealed)
	assert.ErrorIs(t, err, ErrWrongPassphrase)
}

func TestOpen_Malformed(t *testing.T) {
	s, err := NewSealer("pass")
	require.NoError(t, err)

	tests := []struct {
		name   string
		sealed string
	}{
		{name: "not base64", sealed: "%%%"},
		{name: "shorter than salt", sealed: base64.StdEncoding.EncodeToString([]byte("short"))},
		{name: "shorter than nonce", sealed: base64.StdEncoding.EncodeToString(make([]byte, saltSize+4))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Open(tt.sealed)
			assert.Error(t, err)
		})
	}
}
