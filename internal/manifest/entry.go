package manifest

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	alperrors "github.com/alplock/alplock/internal/errors"
)

// Entry is one operation in a manifest. Field order matters: AppendEntry
// serializes entries in declaration order, and existing manifests expect
// action first and filepath last.
type Entry struct {
	Action   string `yaml:"action"`
	Root     string `yaml:"root,omitempty"`
	Key      string `yaml:"key,omitempty"`
	Filepath string `yaml:"filepath"`
}

// Actions recognized by the processor. Matching is case-insensitive, so
// manifests may spell them Encrypt, ENCRYPT, or encrypt.
const (
	ActionEncrypt = "Encrypt"
	ActionDecrypt = "Decrypt"
)

// Load reads a manifest file: a YAML sequence of entries. Entries are
// immutable once parsed; the processor never writes back to the manifest.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", alperrors.ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", alperrors.ErrMalformedManifest, err)
	}

	return entries, nil
}

// AppendEntry appends one entry to the manifest at path, creating the file
// if it does not exist. The entry is rendered as a YAML sequence item, two
// spaces of continuation indent, exactly the shape Load parses, so a
// manifest can be grown one entry at a time.
func AppendEntry(path string, entry Entry) error {
	data, err := yaml.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to serialize manifest entry: %w", err)
	}

	var formatted strings.Builder
	for index, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
		if index == 0 {
			formatted.WriteString("- " + line + "\n")
		} else {
			formatted.WriteString("  " + line + "\n")
		}
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) // #nosec G306 -- manifests are user-edited documents
	if err != nil {
		return fmt.Errorf("failed to open manifest %s: %w", path, err)
	}
	defer file.Close()

	if _, err := file.WriteString(formatted.String()); err != nil {
		return fmt.Errorf("failed to append to manifest %s: %w", path, err)
	}

	return nil
}
