package manifest

// Status is the terminal state a manifest entry reached.
type Status string

const (
	// StatusWritten means the entry's payload landed on disk.
	StatusWritten Status = "written"
	// StatusSkipped means the entry was never attempted. The reason says
	// why; skips are expected on foreign machines and are not failures.
	StatusSkipped Status = "skipped"
	// StatusFailed means the entry was attempted and errored. Other
	// entries are unaffected.
	StatusFailed Status = "failed"
)

// Skip reasons surfaced in the batch report. Decrypt entries without a
// credential are deliberately a skip rather than a failure, but the report
// calls them out so a forgotten key column does not pass silently.
const (
	SkipReasonRootUnavailable   = "root directory unavailable on this system"
	SkipReasonMissingCredential = "decrypt entry has no credential"
	SkipReasonCanceled          = "batch canceled before dispatch"
)

// EntryResult captures the outcome of one manifest entry, keyed back to the
// manifest by Index.
type EntryResult struct {
	Index  int    `json:"index"`
	Action string `json:"action"`
	Root   string `json:"root,omitempty"`
	Path   string `json:"path"`
	Status Status `json:"status"`

	// Written is the path the payload landed at, for written entries.
	Written string `json:"written,omitempty"`
	// Credential is the freshly generated credential for written encrypt
	// entries. The report is the only place the caller ever sees it.
	Credential string `json:"credential,omitempty"`
	// Reason explains skipped and failed entries.
	Reason string `json:"reason,omitempty"`
}

// Report aggregates the results of one batch run.
type Report struct {
	BatchID    string        `json:"batch_id"`
	Manifest   string        `json:"manifest,omitempty"`
	Workers    int           `json:"workers"`
	StartedAt  string        `json:"started_at"` // RFC3339 with microseconds.
	DurationMS int64         `json:"duration_ms"`
	Results    []EntryResult `json:"results"`
}

// CountByStatus returns how many entries reached the given status.
func (r *Report) CountByStatus(status Status) int {
	count := 0
	for _, result := range r.Results {
		if result.Status == status {
			count++
		}
	}
	return count
}

// HasFailures reports whether any entry failed. Skips do not count.
func (r *Report) HasFailures() bool {
	return r.CountByStatus(StatusFailed) > 0
}
