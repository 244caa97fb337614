package crypt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	alperrors "github.com/alplock/alplock/internal/errors"
)

func TestEncodeCredential_Format(t *testing.T) {
	key := bytes.Repeat([]byte{0x0f}, KeySize)
	nonce := bytes.Repeat([]byte{0xf0}, NonceSize)

	credential := EncodeCredential(key, nonce)

	want := strings.Repeat("0f", KeySize) + "#" + strings.Repeat("f0", NonceSize)
	if credential != want {
		t.Errorf("credential = %q, want %q", credential, want)
	}
	if len(credential) != KeySize*2+1+NonceSize*2 {
		t.Errorf("credential length = %d, want %d", len(credential), KeySize*2+1+NonceSize*2)
	}
}

func TestDecodeCredential_RoundTrip(t *testing.T) {
	engine := NewEngine()
	key, nonce, err := engine.GenerateKeyMaterial()
	if err != nil {
		t.Fatalf("GenerateKeyMaterial failed: %v", err)
	}

	gotKey, gotNonce, err := DecodeCredential(EncodeCredential(key, nonce))
	if err != nil {
		t.Fatalf("DecodeCredential failed: %v", err)
	}
	if !bytes.Equal(gotKey, key) {
		t.Errorf("key = %x, want %x", gotKey, key)
	}
	if !bytes.Equal(gotNonce, nonce) {
		t.Errorf("nonce = %x, want %x", gotNonce, nonce)
	}
}

func TestDecodeCredential_AcceptsUppercaseHex(t *testing.T) {
	key := bytes.Repeat([]byte{0xab}, KeySize)
	nonce := bytes.Repeat([]byte{0xcd}, NonceSize)

	credential := strings.ToUpper(EncodeCredential(key, nonce))

	gotKey, gotNonce, err := DecodeCredential(credential)
	if err != nil {
		t.Fatalf("DecodeCredential failed: %v", err)
	}
	if !bytes.Equal(gotKey, key) || !bytes.Equal(gotNonce, nonce) {
		t.Error("uppercase credential did not decode to the same key material")
	}
}

func TestDecodeCredential_Malformed(t *testing.T) {
	validKey := strings.Repeat("ab", KeySize)
	validNonce := strings.Repeat("cd", NonceSize)

	cases := []struct {
		name       string
		credential string
	}{
		{"empty string", ""},
		{"missing separator", validKey + validNonce},
		{"repeated separator", validKey + "#" + validNonce + "#" + validNonce},
		{"key not hex", strings.Repeat("zz", KeySize) + "#" + validNonce},
		{"nonce not hex", validKey + "#" + strings.Repeat("zz", NonceSize)},
		{"key too short", "abcd#" + validNonce},
		{"nonce too short", validKey + "#abcd"},
		{"key too long", validKey + "ab#" + validNonce},
		{"nonce too long", validKey + "#" + validNonce + "cd"},
		{"odd length hex", validKey[:len(validKey)-1] + "#" + validNonce},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := DecodeCredential(tc.credential)
			if !errors.Is(err, alperrors.ErrMalformedCredential) {
				t.Errorf("expected ErrMalformedCredential, got %v", err)
			}
		})
	}
}
