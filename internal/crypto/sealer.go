// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const saltSize = 16

var (
	// ErrWrongPassphrase is returned by Open when the blob was sealed with a
	// different passphrase or has been tampered with.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted data")
	// ErrEmptyPassphrase is returned by NewSealer for an empty passphrase.
	ErrEmptyPassphrase = errors.New("empty passphrase")
)

// passphraseSealer is the private implementation of [Sealer].
type passphraseSealer struct {
	passphrase []byte

	// Argon2id tuning parameters.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewSealer constructs a [Sealer] with the Argon2id parameters recommended by
// OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewSealer(passphrase string) (Sealer, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}
	return &passphraseSealer{
		passphrase:   []byte(passphrase),
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}, nil
}

// Seal implements [Sealer].
func (s *passphraseSealer) Seal(plaintext []byte) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	gcm, err := s.aead(salt)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := make([]byte, 0, saltSize+len(nonce)+len(plaintext)+gcm.Overhead())
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = gcm.Seal(blob, nonce, plaintext, nil)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Open implements [Sealer].
func (s *passphraseSealer) Open(sealed string) ([]byte, error) {
	blob, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}
	if len(blob) < saltSize {
		return nil, fmt.Errorf("ciphertext too short")
	}

	salt, rest := blob[:saltSize], blob[saltSize:]
	gcm, err := s.aead(salt)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(rest) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}
	nonce, ciphertext := rest[:nonceSize], rest[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrWrongPassphrase
	}

	return plaintext, nil
}

// aead derives the key for salt and builds the AES-GCM cipher.
func (s *passphraseSealer) aead(salt []byte) (cipher.AEAD, error) {
	key := argon2.IDKey(s.passphrase, salt, s.argonTime, s.argonMemory, s.argonThreads, s.argonKeyLen)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
