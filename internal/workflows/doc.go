// Package workflows provides high-level orchestration for alplock commands.
//
// Workflows coordinate multiple packages (crypt, manifest, configs, audit)
// to implement complete user-facing features. Each workflow handles a single
// command's business logic, independent of CLI concerns like flag parsing,
// spinners, and output formatting.
//
// # Design Philosophy
//
// The cmd/ package should be a thin layer that:
//   - Parses command-line flags and arguments
//   - Calls the appropriate workflow function
//   - Formats the result for display
//
// Workflows handle everything else:
//   - Checking preconditions (does the target file exist?)
//   - Performing the core operation
//   - Recording operation history entries
//
// # Available Workflows
//
// Each command has a corresponding workflow:
//
//   - Encrypt: encrypts one file and yields its credential
//   - Decrypt: restores one file from its credential
//   - Run: executes every entry of a manifest concurrently
//   - Log: reads and filters the operation history
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package, allowing
// the CLI layer to provide appropriate user-facing messages without string
// matching. Use errors.Is() to check for specific error conditions:
//
//	result, err := workflows.Decrypt(ctx, opts)
//	if errors.Is(err, alperrors.ErrAuthenticationFailed) {
//	    // Show user-friendly wrong-credential message
//	}
//
// Single-file workflows surface any error to the caller, which treats it as
// fatal: there is only one operation, so there is no partial success. Run
// never fails because an entry failed; per-entry outcomes live in the
// returned report, and Run itself errors only when the manifest cannot be
// read at all.
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter.
// Run passes it to the batch processor, where it gates dispatch of entries
// that have not started yet; entries already dispatched always run to
// completion.
package workflows
