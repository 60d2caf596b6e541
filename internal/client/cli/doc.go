// Package cli provides the interactive findash command-line client.
//
// It wires configuration, the local credential store, the REST API client,
// the session, the hash router, the page registry and the assistant bridge,
// then runs a REPL over them. Typical flow: resolve the stored credential
// (or a "#token=" deep link), show the login prompt or the active view, and
// execute user commands.
//
// Key features:
//   - Login / Register / Logout, plus external sign-in through "link"
//   - Navigate between the summary and the seven record lists
//   - Add, edit and delete records of the active list
//   - Ask the assistant about the screen, inline or in the chat overlay
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
