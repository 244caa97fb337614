package errors

import "errors"

// Precondition errors indicate an operation was refused before any work began.
var (
	// ErrFileNotFound indicates the target file does not exist.
	ErrFileNotFound = errors.New("target file does not exist")
)

// Credential errors indicate a malformed or unusable credential string.
var (
	// ErrMalformedCredential indicates the credential string could not be decoded.
	// The delimiter is missing, a half is not valid hex, or a decoded half has
	// the wrong length.
	ErrMalformedCredential = errors.New("malformed credential")

	// ErrMissingCredential indicates a decrypt entry carried no credential.
	ErrMissingCredential = errors.New("no credential supplied for decrypt")
)

// Cryptographic errors indicate failures inside the cipher engine.
var (
	// ErrInvalidKeyMaterial indicates the key or nonce has a length the cipher
	// would reject.
	ErrInvalidKeyMaterial = errors.New("invalid key material")

	// ErrAuthenticationFailed indicates the integrity tag did not verify:
	// wrong key, wrong nonce, or tampered ciphertext. No plaintext is returned.
	ErrAuthenticationFailed = errors.New("authentication failed")
)

// Codec errors indicate a payload that cannot be decompressed.
var (
	// ErrCorruptPayload indicates truncated or malformed compressed data.
	ErrCorruptPayload = errors.New("corrupt compressed payload")
)

// Manifest errors indicate problems with batch entries or the manifest itself.
var (
	// ErrMalformedManifest indicates the manifest file could not be parsed.
	ErrMalformedManifest = errors.New("malformed manifest")

	// ErrUnknownAction indicates an entry's action is neither encrypt nor decrypt.
	ErrUnknownAction = errors.New("unknown action")

	// ErrRootUnavailable indicates the host environment cannot supply the
	// requested base directory. The entry is skipped, siblings are unaffected.
	ErrRootUnavailable = errors.New("root directory unavailable")
)

// History errors indicate problems reading the operation history.
var (
	// ErrInvalidDateFilter indicates a --since or --until value that is not
	// a YYYY-MM-DD date.
	ErrInvalidDateFilter = errors.New("invalid date filter")
)
