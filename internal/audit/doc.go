// Package audit provides append-only operation logging for alplock.
//
// Every encrypt, decrypt, and batch run is recorded as one JSON line in
// the audit log at <data dir>/alplock/audit.jsonl. Entries carry the
// operation, the paths involved, batch statistics, and the installation
// UUID. Credentials are never written: the log is safe to read, ship, and
// back up, and cannot be used to decrypt anything.
//
// Logging is best-effort. A full disk or missing directory never fails the
// operation being logged, and auditing can be turned off entirely in the
// user config. Reading tolerates damage: malformed lines are skipped so a
// partially corrupted log still yields its surviving entries.
package audit
