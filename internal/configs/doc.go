// Package configs owns the persisted Perch configuration: where it lives,
// how it is loaded, and how changes are committed.
//
// # Config file
//
// The config is a single YAML document, by default at
// /opt/perch/config/config.yaml. Every write rewrites the whole file; there
// is no partial patching at the file level. Writes go to a temporary
// sibling file first and are moved into place with a rename, so a crash
// mid-write never leaves a truncated config behind.
//
// # Locking
//
// Mutating operations take an exclusive advisory lock on a sibling
// <config>.lock marker before touching the file. The lock wait is bounded
// (one second by default); when another instance holds the lock past the
// timeout the operation aborts with ErrLockBusy and nothing is written.
// The marker is only ever locked, never parsed. Reads (show) skip locking
// entirely.
//
// # Transactions
//
// Each write operation is one logical transaction: lock, load, mutate via
// the document package, validate against the schema unless the caller
// bypassed validation, serialize, rename into place, unlock. The lock is
// released on every exit path.
//
// # Settings
//
// Process-wide settings (install prefix, username prefix, hash toggle) are
// sourced from PERCH_* environment variables at startup, with an optional
// settings.toml override next to the config file. They are returned as an
// explicit *Settings value passed into constructors, never read from
// ambient globals.
package configs
