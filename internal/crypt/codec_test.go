package crypt

import (
	"bytes"
	"errors"
	"testing"

	alperrors "github.com/alplock/alplock/internal/errors"
)

func TestCompressDecompress_RoundTrip(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{"empty payload", []byte{}},
		{"short payload", []byte("hello")},
		{"repetitive payload", bytes.Repeat([]byte("alplock "), 4096)},
		{"binary payload", []byte{0x00, 0xff, 0x1f, 0x8b, 0x00, 0x80, 0x7f}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			packed, err := Compress(tc.data)
			if err != nil {
				t.Fatalf("Compress failed: %v", err)
			}
			got, err := Decompress(packed)
			if err != nil {
				t.Fatalf("Decompress failed: %v", err)
			}
			if !bytes.Equal(got, tc.data) {
				t.Errorf("round trip changed payload: got %d bytes, want %d", len(got), len(tc.data))
			}
		})
	}
}

func TestCompress_ShrinksRepetitiveData(t *testing.T) {
	data := bytes.Repeat([]byte("0123456789"), 1000)

	packed, err := Compress(data)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	if len(packed) >= len(data) {
		t.Errorf("compressed size %d not smaller than input %d", len(packed), len(data))
	}
}

func TestDecompress_RejectsNonGzipData(t *testing.T) {
	if _, err := Decompress([]byte("this is not gzip")); !errors.Is(err, alperrors.ErrCorruptPayload) {
		t.Errorf("expected ErrCorruptPayload, got %v", err)
	}
}

func TestDecompress_RejectsTruncatedPayload(t *testing.T) {
	packed, err := Compress(bytes.Repeat([]byte("payload"), 512))
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	if _, err := Decompress(packed[:len(packed)/2]); !errors.Is(err, alperrors.ErrCorruptPayload) {
		t.Errorf("expected ErrCorruptPayload, got %v", err)
	}
}
