// Package tokenstore persists the single session credential (the bearer token
// issued by the backend) across restarts of the client.
//
// The Store contract is deliberately small:
//
//   - Get returns "" when nothing is stored.
//   - Set stores any non-empty string verbatim; Set("") behaves like Clear.
//   - Clear is idempotent.
//
// MetadataStore keeps the value in the local SQLite metadata table under the
// key "token". MemoryStore is a process-local variant for tests and for runs
// without a data directory.
//
// Inspect peeks into a JWT without verifying it. The result is for display
// and logging only; validity is always decided by the backend.
package tokenstore
