// Package errors provides typed error values for the alplock application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Precondition errors: the operation never started (ErrFileNotFound)
//   - Credential errors: unusable credential strings (ErrMalformedCredential)
//   - Crypto errors: cipher engine failures (ErrAuthenticationFailed)
//   - Codec errors: undecompressable payloads (ErrCorruptPayload)
//   - Manifest errors: per-entry batch problems (ErrUnknownAction)
//
// # Usage
//
// Return errors from internal packages:
//
//	if len(parts) != 2 {
//	    return nil, nil, errors.ErrMalformedCredential
//	}
//
// Handle errors in the CLI layer:
//
//	result, err := workflows.Decrypt(ctx, opts)
//	if errors.Is(err, alperrors.ErrAuthenticationFailed) {
//	    // Show user-friendly message
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("%w: nonce must be %d bytes", errors.ErrMalformedCredential, NonceSize)
package errors
