package workflows

import (
	"context"

	"github.com/alplock/alplock/internal/audit"
	"github.com/alplock/alplock/internal/configs"
	"github.com/alplock/alplock/internal/crypt"
	"github.com/alplock/alplock/internal/manifest"
)

// RunOptions configures the manifest run workflow.
type RunOptions struct {
	// ManifestPath is the manifest file to execute.
	ManifestPath string

	// Workers is the pool size. Zero falls back to the user config value,
	// and from there to one worker per logical CPU.
	Workers int

	// Engine performs the per-entry encryption and decryption. Nil means
	// a fresh engine.
	Engine *crypt.Engine

	// OnResult, when set, streams per-entry results in completion order.
	OnResult func(manifest.EntryResult)
}

// RunResult contains the outcome of a manifest run.
type RunResult struct {
	// Report holds every entry's terminal status, keyed by manifest index.
	Report *manifest.Report
}

// Run executes every entry of the manifest at opts.ManifestPath. Entries
// are dispatched concurrently and isolated from each other: Run errors only
// when the manifest itself cannot be read or parsed, never because entries
// failed. Per-entry outcomes, including failures and skips, live in the
// returned report.
//
// Returns ErrFileNotFound if the manifest does not exist and
// ErrMalformedManifest if it is not a YAML sequence of entries.
func Run(ctx context.Context, opts RunOptions) (*RunResult, error) {
	entries, err := manifest.Load(opts.ManifestPath)
	if err != nil {
		return nil, err
	}

	workers := opts.Workers
	if workers <= 0 {
		if config, err := configs.LoadUserConfig(); err == nil {
			workers = config.Batch.Workers
		}
	}

	engine := opts.Engine
	if engine == nil {
		engine = crypt.NewEngine()
	}

	report := manifest.NewProcessor(engine).Process(ctx, entries, manifest.Options{
		Manifest: opts.ManifestPath,
		Workers:  workers,
		OnResult: opts.OnResult,
	})

	recordBatch(opts.ManifestPath, report)

	return &RunResult{Report: report}, nil
}

// recordBatch appends a batch summary to the history log. Only counts and
// paths are recorded; credentials generated during the run exist solely in
// the report.
func recordBatch(manifestPath string, report *manifest.Report) {
	_, _ = configs.EnsureUserConfig()
	audit.Log(audit.Entry{
		Operation:    "manifest run",
		Manifest:     manifestPath,
		BatchID:      report.BatchID,
		Workers:      report.Workers,
		EntriesCount: len(report.Results),
		WrittenCount: report.CountByStatus(manifest.StatusWritten),
		SkippedCount: report.CountByStatus(manifest.StatusSkipped),
		FailedCount:  report.CountByStatus(manifest.StatusFailed),
		DurationMS:   report.DurationMS,
	})
}
