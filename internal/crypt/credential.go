package crypt

import (
	"encoding/hex"
	"fmt"
	"strings"

	alperrors "github.com/alplock/alplock/internal/errors"
)

// CredentialSeparator joins the hex-encoded key and nonce halves of a
// credential string.
const CredentialSeparator = "#"

// EncodeCredential renders key material as the printable credential handed
// to the user after encryption: lowercase hex of the key, the separator,
// then lowercase hex of the nonce.
func EncodeCredential(key []byte, nonce []byte) string {
	return hex.EncodeToString(key) + CredentialSeparator + hex.EncodeToString(nonce)
}

// DecodeCredential parses a credential string back into key material. It
// returns ErrMalformedCredential when the separator is missing or repeated,
// a half is not valid hex, or a decoded half has the wrong length.
func DecodeCredential(credential string) (key []byte, nonce []byte, err error) {
	parts := strings.Split(credential, CredentialSeparator)
	if len(parts) != 2 {
		return nil, nil, fmt.Errorf("%w: expected hex key and hex nonce separated by %q", alperrors.ErrMalformedCredential, CredentialSeparator)
	}

	key, err = hex.DecodeString(parts[0])
	if err != nil {
		return nil, nil, fmt.Errorf("%w: key half is not valid hex", alperrors.ErrMalformedCredential)
	}
	if len(key) != KeySize {
		return nil, nil, fmt.Errorf("%w: key must be %d bytes, got %d", alperrors.ErrMalformedCredential, KeySize, len(key))
	}

	nonce, err = hex.DecodeString(parts[1])
	if err != nil {
		return nil, nil, fmt.Errorf("%w: nonce half is not valid hex", alperrors.ErrMalformedCredential)
	}
	if len(nonce) != NonceSize {
		return nil, nil, fmt.Errorf("%w: nonce must be %d bytes, got %d", alperrors.ErrMalformedCredential, NonceSize, len(nonce))
	}

	return key, nonce, nil
}
