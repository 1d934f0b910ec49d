package screens

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/trackcli/internal/client/client"
	"github.com/dmitrijs2005/trackcli/internal/client/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filledRegister(auth *fakeAuth, nav *fakeNav) *RegisterScreen {
	s := NewRegisterScreen(auth, nav, DefaultMessages)
	s.Name, s.Email, s.Password = "Ann", "a@b.com", "pw"
	return s
}

func TestRegisterMount_LatchedRedirectsBeforeRender(t *testing.T) {
	auth := &fakeAuth{available: false}
	nav := &fakeNav{}
	s := NewRegisterScreen(auth, nav, DefaultMessages)

	render, err := s.Mount(context.Background())
	require.NoError(t, err)
	assert.False(t, render)
	assert.Equal(t, []string{RouteLogin}, nav.routes)
	assert.Zero(t, auth.registerCalls)
}

func TestRegisterMount_Open(t *testing.T) {
	nav := &fakeNav{}
	s := NewRegisterScreen(&fakeAuth{available: true}, nav, DefaultMessages)

	render, err := s.Mount(context.Background())
	require.NoError(t, err)
	assert.True(t, render)
	assert.Empty(t, nav.routes)
}

func TestRegisterMount_LatchReadErrorStillRenders(t *testing.T) {
	boom := errors.New("db locked")
	nav := &fakeNav{}
	s := NewRegisterScreen(&fakeAuth{availErr: boom}, nav, DefaultMessages)

	render, err := s.Mount(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.True(t, render)
	assert.Empty(t, nav.routes)
}

func TestRegisterCanSubmit(t *testing.T) {
	s := NewRegisterScreen(&fakeAuth{}, &fakeNav{}, DefaultMessages)
	assert.False(t, s.CanSubmit())

	s.Name, s.Email = "Ann", "a@b.com"
	assert.False(t, s.CanSubmit())

	s.Password = "pw"
	assert.True(t, s.CanSubmit())

	s.Name = ""
	assert.False(t, s.CanSubmit())
}

func TestRegisterSubmit_IncompleteFormIsBlocked(t *testing.T) {
	auth := &fakeAuth{}
	s := NewRegisterScreen(auth, &fakeNav{}, DefaultMessages)
	s.Name, s.Email = "Ann", "a@b.com"

	require.ErrorIs(t, s.Submit(context.Background()), ErrIncompleteForm)
	assert.Zero(t, auth.registerCalls)
}

func TestRegisterSubmit_Success(t *testing.T) {
	auth, nav := &fakeAuth{}, &fakeNav{}
	s := filledRegister(auth, nav)

	require.NoError(t, s.Submit(context.Background()))
	assert.Equal(t, []string{RouteLogin}, nav.routes)
	assert.Empty(t, s.Error)
	assert.Equal(t, "Ann", auth.lastName)
}

func TestRegisterSubmit_ClosedNavigatesWithoutError(t *testing.T) {
	auth, nav := &fakeAuth{registerErr: services.ErrRegistrationClosed}, &fakeNav{}
	s := filledRegister(auth, nav)
	s.Error = "stale"

	err := s.Submit(context.Background())
	require.ErrorIs(t, err, services.ErrRegistrationClosed)
	assert.Equal(t, []string{RouteLogin}, nav.routes)
	assert.Empty(t, s.Error)
}

func TestRegisterSubmit_RejectedShowsServerMessage(t *testing.T) {
	auth := &fakeAuth{registerErr: &services.RejectedError{Status: 400, Message: "Email already in use"}}
	nav := &fakeNav{}
	s := filledRegister(auth, nav)

	_ = s.Submit(context.Background())
	assert.Equal(t, "Email already in use", s.Error)
	assert.Empty(t, nav.routes)
	assert.Equal(t, "Ann", s.Name)
	assert.Equal(t, "a@b.com", s.Email)
	assert.Equal(t, "pw", s.Password)
}

func TestRegisterSubmit_RejectedEmptyBodyShowsFallback(t *testing.T) {
	auth := &fakeAuth{registerErr: &services.RejectedError{Status: 500}}
	nav := &fakeNav{}
	s := filledRegister(auth, nav)

	_ = s.Submit(context.Background())
	assert.Equal(t, DefaultMessages.RegistrationFailed, s.Error)
	assert.Empty(t, nav.routes)
}

func TestRegisterSubmit_TransportErrorShowsGeneric(t *testing.T) {
	auth := &fakeAuth{registerErr: fmt.Errorf("create user: %w", client.ErrTransport)}
	nav := &fakeNav{}
	s := filledRegister(auth, nav)

	err := s.Submit(context.Background())
	require.ErrorIs(t, err, client.ErrTransport)
	assert.Equal(t, DefaultMessages.GenericError, s.Error)
	assert.Empty(t, nav.routes)
}

func TestRegisterSubmit_ClearsPreviousErrorOnSuccess(t *testing.T) {
	auth := &fakeAuth{registerErr: &services.RejectedError{Message: "Email already in use"}}
	nav := &fakeNav{}
	s := filledRegister(auth, nav)
	_ = s.Submit(context.Background())
	require.NotEmpty(t, s.Error)

	auth.registerErr = nil
	s.Email = "c@d.com"
	require.NoError(t, s.Submit(context.Background()))
	assert.Empty(t, s.Error)
	assert.Equal(t, []string{RouteLogin}, nav.routes)
}

func TestRegisterSubmit_RejectsOverlappingSubmit(t *testing.T) {
	auth := &fakeAuth{block: make(chan struct{}), entered: make(chan struct{})}
	nav := &fakeNav{}
	s := filledRegister(auth, nav)

	done := make(chan error)
	go func() { done <- s.Submit(context.Background()) }()
	<-auth.entered

	assert.ErrorIs(t, s.Submit(context.Background()), ErrSubmitInProgress)

	close(auth.block)
	require.NoError(t, <-done)
	assert.Equal(t, 1, auth.registerCalls)
}

func TestDefaultMessages_NonEmpty(t *testing.T) {
	assert.NotEmpty(t, DefaultMessages.InvalidCredentials)
	assert.NotEmpty(t, DefaultMessages.RegistrationFailed)
	assert.NotEmpty(t, DefaultMessages.GenericError)
	assert.NotEqual(t, DefaultMessages.RegistrationFailed, DefaultMessages.GenericError)
}
