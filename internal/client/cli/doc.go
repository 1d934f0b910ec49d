// Package cli provides the interactive command-line client.
//
// It wires configuration, the local database, the HTTP API client and the
// auth service, and drives the login and registration screens from a
// small REPL. The App is the screens' Navigator: the current route is
// shown in the prompt.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
