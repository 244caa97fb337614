package workflows

import (
	"context"
	"fmt"
	"os"

	"github.com/alplock/alplock/internal/crypt"
	alperrors "github.com/alplock/alplock/internal/errors"
)

// DecryptOptions configures the decrypt workflow.
type DecryptOptions struct {
	// Path is the encrypted file to restore. It must exist.
	Path string

	// Credential is the hex key and nonce pair handed out at encryption
	// time, in the form hex(key)#hex(nonce).
	Credential string

	// Engine performs the decryption. Nil means a fresh engine.
	Engine *crypt.Engine
}

// DecryptResult contains the outcome of a decrypt operation.
type DecryptResult struct {
	// WrittenPath is where the restored plaintext landed.
	WrittenPath string
}

// Decrypt restores a single encrypted file: the credential is decoded, the
// payload is decompressed and authenticated, and the plaintext is written
// under the file's decrypted name.
//
// Returns ErrFileNotFound if the target does not exist, checked before any
// work begins. Returns ErrMalformedCredential for a credential that cannot
// be decoded, and ErrAuthenticationFailed when the credential does not
// match the payload; in both cases the encrypted file is left untouched.
func Decrypt(ctx context.Context, opts DecryptOptions) (*DecryptResult, error) {
	if _, err := os.Stat(opts.Path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", alperrors.ErrFileNotFound, opts.Path)
	}

	key, nonce, err := crypt.DecodeCredential(opts.Credential)
	if err != nil {
		return nil, err
	}

	engine := opts.Engine
	if engine == nil {
		engine = crypt.NewEngine()
	}

	written, err := engine.DecryptFile(opts.Path, key, nonce)
	if err != nil {
		recordFileOperation("decrypt", opts.Path, "", "failed")
		return nil, err
	}

	recordFileOperation("decrypt", opts.Path, written, "ok")

	return &DecryptResult{WrittenPath: written}, nil
}
