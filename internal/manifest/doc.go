// Package manifest implements declarative batch encryption: parsing
// manifest files, resolving symbolic root directories, and dispatching
// entries to a concurrent processor.
//
// # Manifest format
//
// A manifest is a YAML sequence of entries:
//
//	- action: Encrypt
//	  root: HOME
//	  filepath: documents/taxes.csv
//	- action: Decrypt
//	  key: 000102030405060708090a0b0c0d0e0f#000102030405060708090a0b
//	  filepath: /srv/backup/dump.sql.alp
//
// The action is matched case-insensitively. The optional root is a symbolic
// token (HOME, CONFIG or ROAMING, CACHE or LOCAL, TEMP or TMP) resolved to
// a host directory at run time, so the same manifest works across machines
// and operating systems. The key field carries the credential and is only
// meaningful for decrypt entries. AppendEntry writes entries in this exact
// shape, so wizard-built and hand-written manifests are interchangeable.
//
// # Execution model
//
// Process fans entries out to a fixed-size worker pool and collects every
// outcome into a Report. Entries are independent: a failed or skipped entry
// never stops the rest of the batch. An entry ends in one of three states:
//
//   - written: the operation succeeded and the payload is on disk
//   - skipped: the entry was not attempted, because its root does not
//     resolve on this host, a decrypt entry carries no credential, or the
//     context was done before the entry was dispatched
//   - failed: the entry was attempted and errored (unknown action,
//     malformed credential, authentication failure, I/O problems)
//
// Encrypt entries generate fresh key material per file; the resulting
// credential is surfaced only in the entry's result. Nothing in this
// package persists credentials.
package manifest
