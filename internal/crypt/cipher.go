package crypt

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	alperrors "github.com/alplock/alplock/internal/errors"
)

const (
	// KeySize is the AES-128 key length in bytes.
	KeySize = 16
	// NonceSize is the GCM nonce length in bytes.
	NonceSize = 12
)

// Engine performs AES-128-GCM encryption and decryption. The zero value is
// not usable; construct one with NewEngine or NewEngineWithRandom.
type Engine struct {
	rand io.Reader
}

// NewEngine returns an Engine drawing key material from the operating
// system's randomness source.
func NewEngine() *Engine {
	return &Engine{rand: rand.Reader}
}

// NewEngineWithRandom returns an Engine drawing key material from r instead
// of the operating system. Tests use this to make key generation, and
// therefore ciphertexts, reproducible.
func NewEngineWithRandom(r io.Reader) *Engine {
	return &Engine{rand: r}
}

// GenerateKeyMaterial produces a fresh random key and nonce. Every encrypted
// file gets its own pair; a nonce is never reused under the same key.
func (e *Engine) GenerateKeyMaterial() (key []byte, nonce []byte, err error) {
	key = make([]byte, KeySize)
	if _, err := io.ReadFull(e.rand, key); err != nil {
		return nil, nil, fmt.Errorf("failed to generate key: %w", err)
	}

	nonce = make([]byte, NonceSize)
	if _, err := io.ReadFull(e.rand, nonce); err != nil {
		return nil, nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	return key, nonce, nil
}

func newAEAD(key []byte, nonce []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: key must be %d bytes, got %d", alperrors.ErrInvalidKeyMaterial, KeySize, len(key))
	}
	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("%w: nonce must be %d bytes, got %d", alperrors.ErrInvalidKeyMaterial, NonceSize, len(nonce))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", alperrors.ErrInvalidKeyMaterial, err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to construct GCM: %w", err)
	}

	return aead, nil
}

// Encrypt seals plaintext under the key and nonce, returning ciphertext with
// the GCM authentication tag appended.
func (e *Engine) Encrypt(key []byte, nonce []byte, plaintext []byte) ([]byte, error) {
	aead, err := newAEAD(key, nonce)
	if err != nil {
		return nil, err
	}

	return aead.Seal(nil, nonce, plaintext, nil), nil
}

// Decrypt opens ciphertext sealed by Encrypt. If the key or nonce is wrong,
// or the ciphertext was modified, it returns ErrAuthenticationFailed and no
// plaintext.
func (e *Engine) Decrypt(key []byte, nonce []byte, ciphertext []byte) ([]byte, error) {
	aead, err := newAEAD(key, nonce)
	if err != nil {
		return nil, err
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, alperrors.ErrAuthenticationFailed
	}

	return plaintext, nil
}
