package utils

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadFromStdin consumes all of stdin and returns it trimmed of surrounding
// whitespace. Used when a credential is piped in rather than typed.
func ReadFromStdin() (string, error) {
	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read from stdin: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}

// PromptForInput displays a prompt on stderr and reads one line from the
// reader. The line is returned without its trailing newline; surrounding
// whitespace is trimmed.
func PromptForInput(reader *bufio.Reader, prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
