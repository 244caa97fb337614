package crypt

import (
	"fmt"
	"os"

	alperrors "github.com/alplock/alplock/internal/errors"
)

// EncryptFile encrypts the file at path: the contents are sealed under the
// key and nonce, compressed, and written to the path with the encrypted
// extension appended. The plaintext file is removed once the encrypted one
// is in place. Returns the path written.
//
// Encrypted files are written 0600; the payload is useless without the
// credential, but there is no reason to share it either.
func (e *Engine) EncryptFile(path string, key []byte, nonce []byte) (string, error) {
	plaintext, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", alperrors.ErrFileNotFound, path)
		}
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	sealed, err := e.Encrypt(key, nonce, plaintext)
	if err != nil {
		return "", err
	}

	packed, err := Compress(sealed)
	if err != nil {
		return "", err
	}

	target := EncryptedName(path)
	if err := ApplyTransition(path, target, packed, 0600); err != nil {
		return "", err
	}

	return target, nil
}

// DecryptFile reverses EncryptFile: the payload at path is decompressed,
// opened under the key and nonce, and written to the decrypted name. When
// the name carries the encrypted extension it is stripped; otherwise the
// plaintext replaces the file under its existing name. The encrypted file
// is removed once the plaintext is in place. Returns the path written.
//
// #nosec G306 -- decrypted files go back to being ordinary user files.
func (e *Engine) DecryptFile(path string, key []byte, nonce []byte) (string, error) {
	packed, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", alperrors.ErrFileNotFound, path)
		}
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	sealed, err := Decompress(packed)
	if err != nil {
		return "", err
	}

	plaintext, err := e.Decrypt(key, nonce, sealed)
	if err != nil {
		return "", err
	}

	target := DecryptedName(path)
	if err := ApplyTransition(path, target, plaintext, 0644); err != nil {
		return "", err
	}

	return target, nil
}
