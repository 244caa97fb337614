package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	alperrors "github.com/alplock/alplock/internal/errors"
)

func TestParseRoot(t *testing.T) {
	cases := []struct {
		token string
		want  Root
	}{
		{"", RootNone},
		{"HOME", RootHome},
		{"home", RootHome},
		{"Home", RootHome},
		{"CONFIG", RootConfig},
		{"ROAMING", RootConfig},
		{"roaming", RootConfig},
		{"CACHE", RootCache},
		{"LOCAL", RootCache},
		{"TEMP", RootTemp},
		{"TMP", RootTemp},
		{"tmp", RootTemp},
		{"DESKTOP", RootUnknown},
		{"HOMEDIR", RootUnknown},
	}

	for _, tc := range cases {
		if got := ParseRoot(tc.token); got != tc.want {
			t.Errorf("ParseRoot(%q) = %v, want %v", tc.token, got, tc.want)
		}
	}
}

func TestRoot_String(t *testing.T) {
	cases := map[Root]string{
		RootNone:    "none",
		RootHome:    "home",
		RootConfig:  "config",
		RootCache:   "cache",
		RootTemp:    "temp",
		RootUnknown: "unknown",
	}

	for root, want := range cases {
		if got := root.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(root), got, want)
		}
	}
}

func TestResolvePath_TempJoinsSystemTempDir(t *testing.T) {
	got, root, err := ResolvePath("TEMP", "x.txt")
	if err != nil {
		t.Fatalf("ResolvePath failed: %v", err)
	}
	if root != RootTemp {
		t.Errorf("root = %v, want RootTemp", root)
	}

	want := filepath.Join(os.TempDir(), "x.txt")
	if got != want {
		t.Errorf("resolved path = %q, want %q", got, want)
	}
}

func TestResolvePath_HomeJoinsHomeDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory available: %v", err)
	}

	got, _, err := ResolvePath("home", filepath.Join("videos", "film.mp4"))
	if err != nil {
		t.Fatalf("ResolvePath failed: %v", err)
	}

	want := filepath.Join(home, "videos", "film.mp4")
	if got != want {
		t.Errorf("resolved path = %q, want %q", got, want)
	}
}

func TestResolvePath_NoRootUsesLiteralPath(t *testing.T) {
	got, root, err := ResolvePath("", "relative/notes.txt")
	if err != nil {
		t.Fatalf("ResolvePath failed: %v", err)
	}
	if root != RootNone {
		t.Errorf("root = %v, want RootNone", root)
	}
	if got != "relative/notes.txt" {
		t.Errorf("resolved path = %q, want literal", got)
	}
}

func TestResolvePath_UnknownRootUsesLiteralPath(t *testing.T) {
	got, root, err := ResolvePath("DESKTOP", "notes.txt")
	if err != nil {
		t.Fatalf("ResolvePath failed: %v", err)
	}
	if root != RootUnknown {
		t.Errorf("root = %v, want RootUnknown", root)
	}
	if got != "notes.txt" {
		t.Errorf("resolved path = %q, want literal", got)
	}
}

func TestResolvePath_AbsolutePathIgnoresRoot(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "notes.txt")

	got, _, err := ResolvePath("TEMP", abs)
	if err != nil {
		t.Fatalf("ResolvePath failed: %v", err)
	}
	if got != abs {
		t.Errorf("resolved path = %q, want absolute path unchanged %q", got, abs)
	}
}

func TestResolvePath_UnavailableHomeSignalsSkip(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("home resolution does not depend on $HOME on windows")
	}
	t.Setenv("HOME", "")

	_, root, err := ResolvePath("HOME", "x.txt")
	if !errors.Is(err, alperrors.ErrRootUnavailable) {
		t.Errorf("expected ErrRootUnavailable, got %v", err)
	}
	if root != RootHome {
		t.Errorf("root = %v, want RootHome even on failure", root)
	}
}
