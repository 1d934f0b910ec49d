package client

import "errors"

var (
	// ErrTransport covers network failures and unreadable or malformed
	// response bodies.
	ErrTransport = errors.New("transport error")
	// ErrInvalidCredentials is returned when the server refuses to open a
	// session.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnexpectedStatus is returned by auxiliary calls on non-2xx.
	ErrUnexpectedStatus = errors.New("unexpected status")
)
