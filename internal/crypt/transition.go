package crypt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EncryptedExtension marks files holding an encrypted payload.
const EncryptedExtension = ".alp"

// EncryptedName returns the path an encrypted payload is written to: the
// source path with the encrypted extension appended, whatever the source
// was called.
func EncryptedName(path string) string {
	return path + EncryptedExtension
}

// DecryptedName returns the path a decrypted payload is written to. The
// encrypted extension is stripped when it is the file's extension proper;
// any other name decrypts in place. A file named just ".alp" has an empty
// stem, so the suffix is its whole name rather than an extension, and it
// too decrypts in place.
func DecryptedName(path string) string {
	name := filepath.Base(path)
	if strings.HasSuffix(name, EncryptedExtension) && name != EncryptedExtension {
		return strings.TrimSuffix(path, EncryptedExtension)
	}
	return path
}

// ApplyTransition replaces source with data written at target. The payload
// lands in a temporary sibling first and is renamed into place, so readers
// of target never observe a partial write and a crash cannot destroy the
// source before the target is durable. The source is removed last, and only
// when the transition changed the name.
func ApplyTransition(source string, target string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(target), filepath.Base(target)+".tmp*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file for %s: %w", target, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set permissions on %s: %w", target, err)
	}

	if err := os.Rename(tmpPath, target); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to move payload into place at %s: %w", target, err)
	}

	if source != target {
		if err := os.Remove(source); err != nil {
			return fmt.Errorf("failed to remove %s after writing %s: %w", source, target, err)
		}
	}

	return nil
}
