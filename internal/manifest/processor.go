package manifest

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/alplock/alplock/internal/crypt"
	alperrors "github.com/alplock/alplock/internal/errors"
)

// Options tunes a batch run.
type Options struct {
	// Manifest is the manifest path recorded in the report, for context
	// only; entries are passed to Process already parsed.
	Manifest string
	// Workers is the pool size. Zero or negative means one worker per
	// logical CPU.
	Workers int
	// OnResult, when set, is called once per entry as it finishes, in
	// completion order. Calls are serialized; the callback does not need
	// its own locking.
	OnResult func(EntryResult)
}

// Processor executes manifest entries against a cipher engine.
type Processor struct {
	engine *crypt.Engine
}

// NewProcessor returns a Processor that encrypts and decrypts with engine.
func NewProcessor(engine *crypt.Engine) *Processor {
	return &Processor{engine: engine}
}

// Process runs every entry and returns the batch report. Entries are
// dispatched to a fixed-size worker pool and executed independently: they
// share no state, their order in the manifest carries no execution-order
// guarantee, and one entry failing or skipping never prevents another from
// being written. Process returns only after every entry has reached a
// terminal status.
//
// The context gates dispatch only: entries not yet handed to a worker when
// ctx is done are marked skipped, while entries already dispatched run to
// completion. There is no per-entry timeout.
//
// Entries naming the same file race; manifests are expected to keep paths
// disjoint.
func (p *Processor) Process(ctx context.Context, entries []Entry, opts Options) *Report {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(entries) {
		workers = len(entries)
	}

	report := &Report{
		BatchID:   uuid.New().String(),
		Manifest:  opts.Manifest,
		Workers:   workers,
		StartedAt: time.Now().UTC().Format("2006-01-02T15:04:05.000000Z"),
		Results:   make([]EntryResult, len(entries)),
	}
	started := time.Now()

	indexes := make(chan int)
	var wg sync.WaitGroup
	var callbackMu sync.Mutex

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				result := p.processEntry(i, entries[i])

				// Workers own disjoint indexes, so the slice needs no lock.
				report.Results[i] = result

				if opts.OnResult != nil {
					callbackMu.Lock()
					opts.OnResult(result)
					callbackMu.Unlock()
				}
			}
		}()
	}

	dispatched := len(entries)
dispatch:
	for i := range entries {
		if ctx.Err() != nil {
			dispatched = i
			break dispatch
		}
		select {
		case indexes <- i:
		case <-ctx.Done():
			dispatched = i
			break dispatch
		}
	}
	close(indexes)
	wg.Wait()

	// Entries cut off by the context still need a terminal status so the
	// report covers the whole manifest.
	for i := dispatched; i < len(entries); i++ {
		result := EntryResult{
			Index:  i,
			Action: entries[i].Action,
			Root:   entries[i].Root,
			Path:   entries[i].Filepath,
			Status: StatusSkipped,
			Reason: SkipReasonCanceled,
		}
		report.Results[i] = result
		if opts.OnResult != nil {
			opts.OnResult(result)
		}
	}

	report.DurationMS = time.Since(started).Milliseconds()
	return report
}

// processEntry drives one entry to a terminal status. Errors never escape;
// they become the entry's result so siblings keep running.
func (p *Processor) processEntry(index int, entry Entry) EntryResult {
	result := EntryResult{
		Index:  index,
		Action: entry.Action,
		Root:   entry.Root,
		Path:   entry.Filepath,
	}

	path, _, err := ResolvePath(entry.Root, entry.Filepath)
	if err != nil {
		result.Status = StatusSkipped
		result.Reason = SkipReasonRootUnavailable
		return result
	}
	result.Path = path

	switch strings.ToUpper(entry.Action) {
	case "ENCRYPT":
		key, nonce, err := p.engine.GenerateKeyMaterial()
		if err != nil {
			return failed(result, err)
		}

		written, err := p.engine.EncryptFile(path, key, nonce)
		if err != nil {
			return failed(result, err)
		}

		result.Status = StatusWritten
		result.Written = written
		result.Credential = crypt.EncodeCredential(key, nonce)

	case "DECRYPT":
		if entry.Key == "" {
			result.Status = StatusSkipped
			result.Reason = SkipReasonMissingCredential
			return result
		}

		key, nonce, err := crypt.DecodeCredential(entry.Key)
		if err != nil {
			return failed(result, err)
		}

		written, err := p.engine.DecryptFile(path, key, nonce)
		if err != nil {
			return failed(result, err)
		}

		result.Status = StatusWritten
		result.Written = written

	default:
		return failed(result, fmt.Errorf("%w: %q", alperrors.ErrUnknownAction, entry.Action))
	}

	return result
}

func failed(result EntryResult, err error) EntryResult {
	result.Status = StatusFailed
	result.Reason = err.Error()
	return result
}
