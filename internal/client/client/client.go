package client

import (
	"context"

	"github.com/dmitrijs2005/trackcli/internal/client/models"
)

// Client is the transport-agnostic contract for the server's session and
// user endpoints.
type Client interface {
	// CreateSession logs in with email and password and returns the
	// session identity.
	CreateSession(ctx context.Context, email, password string) (*models.User, error)
	// DeleteSession ends the current server session.
	DeleteSession(ctx context.Context) error
	// CreateUser submits a registration. A non-nil error means the call
	// did not produce a usable response; server-side rejections are
	// reported through the result.
	CreateUser(ctx context.Context, req models.RegistrationRequest) (models.RegistrationResult, error)
	// Server fetches public server information.
	Server(ctx context.Context) (*models.Server, error)
}

type requestIDKey struct{}

// WithRequestID attaches a correlation id that the client sends with the
// next request made under ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the id stored by WithRequestID, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
