package crypt

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"

	alperrors "github.com/alplock/alplock/internal/errors"
)

// Compress shrinks data with gzip at the highest compression level. It runs
// after encryption, so the on-disk payload is gzip(ciphertext).
func Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	zw, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize compressor: %w", err)
	}

	if _, err := zw.Write(data); err != nil {
		return nil, fmt.Errorf("failed to compress payload: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize compressed payload: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress inflates a payload produced by Compress. Truncated or
// non-gzip data yields ErrCorruptPayload.
func Decompress(data []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", alperrors.ErrCorruptPayload, err)
	}
	defer zr.Close()

	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", alperrors.ErrCorruptPayload, err)
	}

	return out, nil
}
