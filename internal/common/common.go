// Package common holds small helpers shared by the client packages.
package common

// RequestIDHeader carries the per-attempt correlation id on outbound
// requests. The same id is logged with the attempt's outcome.
const RequestIDHeader = "X-Request-Id"

// WipeByteArray zeroes b. Used for password buffers read from the
// terminal. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
