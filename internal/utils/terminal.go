package utils

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// IsTerminal reports whether stdin is attached to an interactive terminal.
// Commands use this to decide between prompting and reading a pipe.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// ReadCredentialSecurely prompts for a credential with echo disabled.
//
// The credential decrypts user files, so it must never appear on screen or
// in shell history. Masked reading requires a real terminal; callers should
// check IsTerminal first and fall back to ReadFromStdin for piped input.
func ReadCredentialSecurely(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read credential from terminal: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}
