package workflows

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alplock/alplock/internal/audit"
	alperrors "github.com/alplock/alplock/internal/errors"
)

// auditTimestampLayout matches the timestamps audit.Log writes: RFC3339
// with microseconds in UTC.
const auditTimestampLayout = "2006-01-02T15:04:05.000000Z"

// LogOptions configures the log workflow.
type LogOptions struct {
	// Limit is the maximum number of entries to return. 0 means no limit.
	// The most recent entries are kept regardless of ordering.
	Limit int

	// Reverse orders entries from most recent to oldest when true.
	Reverse bool

	// Operations filters entries by operation name (comma-separated, e.g.
	// "encrypt,decrypt").
	Operations string

	// Since keeps entries on or after this date (YYYY-MM-DD).
	Since string

	// Until keeps entries on or before this date (YYYY-MM-DD, inclusive
	// of the whole day).
	Until string
}

// LogResult contains the outcome of a log read.
type LogResult struct {
	// Entries are the filtered history entries.
	Entries []audit.Entry

	// TotalEntriesBeforeFilter is the count of entries before filtering,
	// so callers can tell "no history" from "nothing matched".
	TotalEntriesBeforeFilter int
}

// Log reads and filters the operation history. A missing history file is
// not an error: it yields an empty result, the same as a history that was
// never written to.
//
// Returns ErrInvalidDateFilter if a Since or Until value is not a
// YYYY-MM-DD date.
func Log(ctx context.Context, opts LogOptions) (*LogResult, error) {
	entries, err := audit.ReadEntries()
	if err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}

	result := &LogResult{TotalEntriesBeforeFilter: len(entries)}
	if len(entries) == 0 {
		return result, nil
	}

	filtered := entries

	if opts.Operations != "" {
		ops := strings.Split(opts.Operations, ",")
		for i := range ops {
			ops[i] = strings.TrimSpace(ops[i])
		}
		filtered = filterByOperations(filtered, ops)
	}

	if opts.Since != "" {
		sinceTime, err := time.Parse("2006-01-02", opts.Since)
		if err != nil {
			return nil, fmt.Errorf("%w: --since must be YYYY-MM-DD", alperrors.ErrInvalidDateFilter)
		}
		filtered = filterSince(filtered, sinceTime)
	}

	if opts.Until != "" {
		untilTime, err := time.Parse("2006-01-02", opts.Until)
		if err != nil {
			return nil, fmt.Errorf("%w: --until must be YYYY-MM-DD", alperrors.ErrInvalidDateFilter)
		}
		// Include the entire day.
		untilTime = untilTime.Add(24*time.Hour - time.Nanosecond)
		filtered = filterUntil(filtered, untilTime)
	}

	if opts.Reverse {
		for i, j := 0, len(filtered)-1; i < j; i, j = i+1, j-1 {
			filtered[i], filtered[j] = filtered[j], filtered[i]
		}
	}

	if opts.Limit > 0 && len(filtered) > opts.Limit {
		if opts.Reverse {
			// When reversed, the first N are the most recent.
			filtered = filtered[:opts.Limit]
		} else {
			// When not reversed, the last N are the most recent.
			filtered = filtered[len(filtered)-opts.Limit:]
		}
	}

	result.Entries = filtered
	return result, nil
}

// filterByOperations filters entries by operation name.
func filterByOperations(entries []audit.Entry, ops []string) []audit.Entry {
	opSet := make(map[string]bool)
	for _, op := range ops {
		opSet[strings.ToLower(op)] = true
	}

	var result []audit.Entry
	for _, e := range entries {
		if opSet[strings.ToLower(e.Operation)] {
			result = append(result, e)
		}
	}
	return result
}

// filterSince keeps entries at or after the given time. Entries whose
// timestamps cannot be parsed are dropped rather than guessed at.
func filterSince(entries []audit.Entry, since time.Time) []audit.Entry {
	var result []audit.Entry
	for _, e := range entries {
		t, err := parseTimestamp(e.Timestamp)
		if err != nil {
			continue
		}
		if !t.Before(since) {
			result = append(result, e)
		}
	}
	return result
}

// filterUntil keeps entries at or before the given time.
func filterUntil(entries []audit.Entry, until time.Time) []audit.Entry {
	var result []audit.Entry
	for _, e := range entries {
		t, err := parseTimestamp(e.Timestamp)
		if err != nil {
			continue
		}
		if !t.After(until) {
			result = append(result, e)
		}
	}
	return result
}

func parseTimestamp(ts string) (time.Time, error) {
	t, err := time.Parse(auditTimestampLayout, ts)
	if err != nil {
		// Tolerate entries written by other tooling.
		t, err = time.Parse(time.RFC3339, ts)
	}
	return t, err
}

// FormatDate formats a history timestamp as YYYY-MM-DD.
func FormatDate(ts string) string {
	t, err := parseTimestamp(ts)
	if err != nil {
		if len(ts) >= 10 {
			return ts[:10]
		}
		return ts
	}
	return t.Format("2006-01-02")
}

// FormatDateTime formats a history timestamp as YYYY-MM-DD HH:MM:SS.
func FormatDateTime(ts string) string {
	t, err := parseTimestamp(ts)
	if err != nil {
		if len(ts) >= 19 {
			return strings.Replace(ts[:19], "T", " ", 1)
		}
		return ts
	}
	return t.Format("2006-01-02 15:04:05")
}

// FormatDetails renders the operation-specific columns of a history entry.
func FormatDetails(e audit.Entry) string {
	if e.Operation == "manifest run" {
		return fmt.Sprintf("%s: %d written, %d skipped, %d failed of %d",
			e.Manifest, e.WrittenCount, e.SkippedCount, e.FailedCount, e.EntriesCount)
	}

	detail := e.Path
	if e.Written != "" && e.Written != e.Path {
		detail = e.Path + " -> " + e.Written
	}
	if e.Status == "failed" {
		detail += " (failed)"
	}
	return detail
}

// FormatDetailsOneline renders a compact single-token detail for an entry.
func FormatDetailsOneline(e audit.Entry) string {
	if e.Operation == "manifest run" {
		return fmt.Sprintf("%s (%d/%d written)", e.Manifest, e.WrittenCount, e.EntriesCount)
	}
	if e.Status == "failed" {
		return e.Path + " (failed)"
	}
	return e.Path
}
