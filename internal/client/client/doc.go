// Package client contains the client-side building blocks that talk to
// the outside world.
//
// # Overview
//
//  1. Client, a transport-agnostic contract for the server's session and
//     user endpoints, and HTTPClient, its REST implementation.
//  2. ClassifyRegistration, the single place where a user-creation
//     response is turned into a RegistrationResult.
//  3. InitDatabase and RunMigrations, which bootstrap the local sqlite
//     database with embedded goose migrations.
//
// # Error Handling
//
// Sentinel errors are matched with errors.Is: ErrTransport,
// ErrInvalidCredentials, ErrUnexpectedStatus. Network failures and
// malformed bodies are always ErrTransport, so callers can tell them
// apart from an authentication refusal.
//
// Every request carries an X-Request-Id header; set it with WithRequestID
// to correlate the request with log lines.
package client
