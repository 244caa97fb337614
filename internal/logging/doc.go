// Package logger provides leveled, color-prefixed logging for alplock
// commands.
//
// A Logger value carries two switches, Verbose and Debug, which commands
// populate from their persistent flags. Informational output is suppressed
// unless the matching switch is set; errors always print.
//
// Levels:
//   - Infof: progress messages, shown with --verbose
//   - Debugf: internal detail, shown with --debug
//   - Warnf: recoverable oddities, shown with --verbose or --debug
//   - WarnfAlways: warnings the user must see regardless of flags
//   - Errorf: failures, always shown on stderr
//
// Usage:
//
//	logger := logger.Logger{Verbose: verbose, Debug: debug}
//	logger.Infof("encrypting %s", path)
//	if err != nil {
//	    return logger.ErrorfAndReturn("failed to encrypt %s: %w", path, err)
//	}
//
// Info and debug messages go to stdout, warnings and errors to stderr, so
// piped output stays clean.
package logger
