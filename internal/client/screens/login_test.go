package screens

import (
	"context"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/trackcli/internal/client/client"
	"github.com/dmitrijs2005/trackcli/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginSubmit_Success(t *testing.T) {
	user := &models.User{ID: 1, Email: "a@b.com"}
	auth := &fakeAuth{user: user}
	sess, nav := &fakeSession{}, &fakeNav{}
	s := NewLoginScreen(auth, sess, nav, DefaultMessages)
	s.Email, s.Password = "a@b.com", "right"

	require.NoError(t, s.Submit(context.Background()))

	require.Len(t, sess.updates, 1)
	assert.Same(t, user, sess.updates[0])
	assert.Equal(t, []string{RouteHome}, nav.routes)
	assert.False(t, s.Failed)
	assert.Empty(t, s.HelperText())
	assert.Equal(t, "a@b.com", auth.lastEmail)
	assert.Equal(t, "right", auth.lastPassword)
}

func TestLoginSubmit_Unauthorized(t *testing.T) {
	auth := &fakeAuth{loginErr: fmt.Errorf("create session: %w (status 401)", client.ErrInvalidCredentials)}
	sess, nav := &fakeSession{}, &fakeNav{}
	s := NewLoginScreen(auth, sess, nav, DefaultMessages)
	s.Email, s.Password = "a@b.com", "wrong"

	err := s.Submit(context.Background())
	require.ErrorIs(t, err, client.ErrInvalidCredentials)

	assert.True(t, s.Failed)
	assert.Equal(t, "", s.Password)
	assert.Equal(t, "a@b.com", s.Email)
	assert.Equal(t, DefaultMessages.InvalidCredentials, s.HelperText())
	assert.Empty(t, sess.updates)
	assert.Empty(t, nav.routes)
}

func TestLoginSubmit_TransportFailureShowsSameState(t *testing.T) {
	auth := &fakeAuth{loginErr: fmt.Errorf("create session: %w", client.ErrTransport)}
	s := NewLoginScreen(auth, &fakeSession{}, &fakeNav{}, DefaultMessages)
	s.Email, s.Password = "a@b.com", "pw"

	err := s.Submit(context.Background())
	require.ErrorIs(t, err, client.ErrTransport)
	assert.True(t, s.Failed)
	assert.Empty(t, s.Password)
}

func TestLoginSubmit_RetryAfterFailureResetsFailed(t *testing.T) {
	auth := &fakeAuth{loginErr: client.ErrInvalidCredentials}
	sess, nav := &fakeSession{}, &fakeNav{}
	s := NewLoginScreen(auth, sess, nav, DefaultMessages)
	s.Email, s.Password = "a@b.com", "wrong"
	_ = s.Submit(context.Background())
	require.True(t, s.Failed)

	auth.loginErr = nil
	auth.user = &models.User{ID: 9}
	s.Password = "right"
	require.NoError(t, s.Submit(context.Background()))

	assert.False(t, s.Failed)
	assert.Len(t, sess.updates, 1)
	assert.Equal(t, 2, auth.loginCalls)
}

func TestLoginSubmit_RejectsOverlappingSubmit(t *testing.T) {
	auth := &fakeAuth{user: &models.User{ID: 1}, block: make(chan struct{}), entered: make(chan struct{})}
	sess, nav := &fakeSession{}, &fakeNav{}
	s := NewLoginScreen(auth, sess, nav, DefaultMessages)
	s.Email, s.Password = "a@b.com", "pw"

	done := make(chan error)
	go func() { done <- s.Submit(context.Background()) }()
	<-auth.entered

	err := s.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSubmitInProgress)

	close(auth.block)
	require.NoError(t, <-done)

	assert.Equal(t, 1, auth.loginCalls)
	assert.Len(t, sess.updates, 1)
	assert.Equal(t, []string{RouteHome}, nav.routes)
}
