// Package models contains the data types exchanged with the tracking
// server's session and user API.
package models
