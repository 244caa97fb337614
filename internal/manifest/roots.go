package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	alperrors "github.com/alplock/alplock/internal/errors"
)

// Root identifies the base directory a manifest entry's filepath is
// relative to.
type Root int

const (
	// RootNone means the entry gave no root; the filepath is used as-is.
	RootNone Root = iota
	// RootHome is the user's home directory.
	RootHome
	// RootConfig is the user's configuration directory (Roaming AppData
	// on Windows).
	RootConfig
	// RootCache is the user's cache directory (Local AppData on Windows).
	RootCache
	// RootTemp is the system temporary directory.
	RootTemp
	// RootUnknown means the entry named a root outside the known set. It
	// behaves like RootNone, but stays distinguishable so callers can warn
	// about the likely typo instead of silently using the literal path.
	RootUnknown
)

// ParseRoot maps a manifest root token to its Root, case-insensitively.
func ParseRoot(token string) Root {
	switch strings.ToUpper(token) {
	case "":
		return RootNone
	case "HOME":
		return RootHome
	case "CONFIG", "ROAMING":
		return RootConfig
	case "CACHE", "LOCAL":
		return RootCache
	case "TEMP", "TMP":
		return RootTemp
	default:
		return RootUnknown
	}
}

func (r Root) String() string {
	switch r {
	case RootNone:
		return "none"
	case RootHome:
		return "home"
	case RootConfig:
		return "config"
	case RootCache:
		return "cache"
	case RootTemp:
		return "temp"
	default:
		return "unknown"
	}
}

// Resolve returns the base directory for the root. RootNone and RootUnknown
// resolve to an empty base. When the host environment cannot supply the
// requested directory the error wraps ErrRootUnavailable, which the
// processor turns into a skip rather than a failure.
func (r Root) Resolve() (string, error) {
	switch r {
	case RootHome:
		dir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("%w: home directory: %v", alperrors.ErrRootUnavailable, err)
		}
		return dir, nil
	case RootConfig:
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("%w: config directory: %v", alperrors.ErrRootUnavailable, err)
		}
		return dir, nil
	case RootCache:
		dir, err := os.UserCacheDir()
		if err != nil {
			return "", fmt.Errorf("%w: cache directory: %v", alperrors.ErrRootUnavailable, err)
		}
		return dir, nil
	case RootTemp:
		return os.TempDir(), nil
	default:
		return "", nil
	}
}

// ResolvePath produces the effective path for an entry: the filepath joined
// onto the resolved base directory. An absolute filepath ignores the root,
// matching how manifests written on one machine spell out full paths.
func ResolvePath(token string, path string) (string, Root, error) {
	root := ParseRoot(token)

	base, err := root.Resolve()
	if err != nil {
		return "", root, err
	}
	if base == "" || filepath.IsAbs(path) {
		return path, root, nil
	}

	return filepath.Join(base, path), root, nil
}
