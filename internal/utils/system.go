package utils

import (
	"os"
	"os/user"
)

// GetUsername returns the current user's name for audit entries. It
// tolerates restricted environments by falling back to $USER, then to
// "unknown", so audit logging never blocks an operation.
func GetUsername() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "unknown"
}
