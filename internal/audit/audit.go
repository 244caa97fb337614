package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/alplock/alplock/internal/configs"
)

// Entry represents a single audit log entry. Entries record what was done
// to which paths, never credentials: the audit log must stay safe to read,
// ship, and back up.
type Entry struct {
	Timestamp   string `json:"ts"`   // RFC3339 with microseconds.
	User        string `json:"user"` // Local username performing the operation.
	InstallUUID string `json:"uuid"` // Installation UUID from user config.
	Operation   string `json:"op"`   // Operation name.

	// Optional fields depending on operation.
	Path    string `json:"path,omitempty"`    // For encrypt/decrypt: the source path.
	Written string `json:"written,omitempty"` // For encrypt/decrypt: the path written.
	Status  string `json:"status,omitempty"`  // For single-file ops: ok/failed.

	Manifest     string `json:"manifest,omitempty"`      // For batch: manifest path.
	BatchID      string `json:"batch_id,omitempty"`      // For batch: report UUID.
	Workers      int    `json:"workers,omitempty"`       // For batch: pool size.
	EntriesCount int    `json:"entries_count,omitempty"` // For batch: total entries.
	WrittenCount int    `json:"written_count,omitempty"` // For batch.
	SkippedCount int    `json:"skipped_count,omitempty"` // For batch.
	FailedCount  int    `json:"failed_count,omitempty"`  // For batch.
	DurationMS   int64  `json:"duration_ms,omitempty"`   // For batch.
}

// Log appends an entry to the audit log.
// If logging fails, or auditing is disabled in the user config, it does
// nothing. Operations never fail because audit logging failed.
func Log(entry Entry) {
	config, err := configs.LoadUserConfig()
	if err != nil || !config.Audit.Enabled {
		return
	}

	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}
	if entry.User == "" {
		entry.User = configs.UserAlplockSettings.Username
	}
	if entry.InstallUUID == "" {
		entry.InstallUUID = config.Install.UUID
	}

	logPath := LogPath()
	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return
	}

	// #nosec G306 -- the audit log holds no secrets, only paths and counts.
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}

// LogPath returns the path to the audit log file.
func LogPath() string {
	return filepath.Join(configs.UserAlplockSettings.UserDataPath, "audit.jsonl")
}

// ReadEntries reads all entries from the audit log.
// Returns an empty slice if the log doesn't exist.
func ReadEntries() ([]Entry, error) {
	data, err := os.ReadFile(LogPath())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into audit entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var entries []Entry
	start := 0

	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == '\n' {
			line := data[start:i]
			start = i + 1

			if len(line) == 0 {
				continue
			}

			var entry Entry
			if err := json.Unmarshal(line, &entry); err != nil {
				// Skip malformed entries.
				continue
			}
			entries = append(entries, entry)
		}
	}

	return entries, nil
}
