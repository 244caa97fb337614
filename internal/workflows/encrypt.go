package workflows

import (
	"context"
	"fmt"
	"os"

	"github.com/alplock/alplock/internal/audit"
	"github.com/alplock/alplock/internal/configs"
	"github.com/alplock/alplock/internal/crypt"
	alperrors "github.com/alplock/alplock/internal/errors"
)

// EncryptOptions configures the encrypt workflow.
type EncryptOptions struct {
	// Path is the file to encrypt. It must exist.
	Path string

	// Engine performs the encryption. Nil means a fresh engine backed by
	// the operating system's randomness source.
	Engine *crypt.Engine
}

// EncryptResult contains the outcome of an encrypt operation.
type EncryptResult struct {
	// Credential unlocks the encrypted file. This result is the only place
	// it ever exists; nothing persists it.
	Credential string

	// WrittenPath is where the encrypted payload landed.
	WrittenPath string
}

// Encrypt encrypts a single file in place: fresh key material is generated,
// the contents are sealed and compressed, and the file is renamed with the
// encrypted extension. The returned credential is the only way to get the
// contents back.
//
// Returns ErrFileNotFound if the target does not exist. The check runs
// before any work begins; a missing target never leaves partial state.
func Encrypt(ctx context.Context, opts EncryptOptions) (*EncryptResult, error) {
	if _, err := os.Stat(opts.Path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", alperrors.ErrFileNotFound, opts.Path)
	}

	engine := opts.Engine
	if engine == nil {
		engine = crypt.NewEngine()
	}

	key, nonce, err := engine.GenerateKeyMaterial()
	if err != nil {
		return nil, fmt.Errorf("generating key material: %w", err)
	}

	written, err := engine.EncryptFile(opts.Path, key, nonce)
	if err != nil {
		recordFileOperation("encrypt", opts.Path, "", "failed")
		return nil, err
	}

	recordFileOperation("encrypt", opts.Path, written, "ok")

	return &EncryptResult{
		Credential:  crypt.EncodeCredential(key, nonce),
		WrittenPath: written,
	}, nil
}

// recordFileOperation appends a single-file operation to the history log.
// History is best effort: a read-only config directory must not block the
// operation being recorded.
func recordFileOperation(operation, path, written, status string) {
	_, _ = configs.EnsureUserConfig()
	audit.Log(audit.Entry{
		Operation: operation,
		Path:      path,
		Written:   written,
		Status:    status,
	})
}
