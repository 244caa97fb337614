// Package configs manages user-level configuration for alplock.
//
// Configuration is stored in TOML format at the platform config directory,
// typically ~/.config/alplock/config.toml on Linux.
//
// The config stores:
//   - Installation identity (auto-generated UUID, used in audit entries)
//   - Batch settings (manifest worker pool size; zero means one per CPU)
//   - Audit settings (whether operations are recorded to the audit log)
//
// The installation UUID is generated on first use by EnsureUserConfig and
// persists for the lifetime of the install. Commands that only read files
// never write config; EnsureUserConfig is called by commands that log audit
// entries so every entry carries a stable identity.
//
// Global settings are initialized at startup in UserAlplockSettings: the
// config directory, the data directory (XDG_DATA_HOME or ~/.local/share)
// where the audit log lives, and the current username.
package configs
