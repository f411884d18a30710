package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/sealer_mock.go -package=mock

// Sealer protects small secrets (the bearer token) at rest with a key derived
// from a user passphrase.
//
// Sealed blob layout, Base64 (standard encoding):
//
//	salt (16 bytes) ‖ nonce (12 bytes) ‖ AES-256-GCM ciphertext
type Sealer interface {
	// Seal encrypts plaintext with a fresh salt and nonce.
	Seal(plaintext []byte) (string, error)

	// Open reverses Seal. It fails with [ErrWrongPassphrase] when the
	// authentication tag does not verify.
	Open(sealed string) ([]byte, error)
}
