package screens

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/dmitrijs2005/trackcli/internal/client/services"
)

// RegisterService is the part of services.AuthService the registration
// screen uses.
type RegisterService interface {
	Register(ctx context.Context, name, email, password string) error
	RegistrationAvailable(ctx context.Context) (bool, error)
}

type RegisterScreen struct {
	Name     string
	Email    string
	Password string
	// Error is the message shown under the form; empty means none.
	Error string

	auth     RegisterService
	nav      Navigator
	messages Messages
	busy     atomic.Bool
}

func NewRegisterScreen(auth RegisterService, nav Navigator, messages Messages) *RegisterScreen {
	return &RegisterScreen{auth: auth, nav: nav, messages: messages}
}

// Mount must be called before the form is shown. It returns false after
// redirecting to the login route when registration is latched off.
//
// If the latch cannot be read the form is shown and the read error is
// returned; the server still refuses registrations when they are closed.
func (s *RegisterScreen) Mount(ctx context.Context) (bool, error) {
	available, err := s.auth.RegistrationAvailable(ctx)
	if err != nil {
		return true, err
	}
	if !available {
		s.nav.Navigate(RouteLogin)
		return false, nil
	}
	return true, nil
}

// CanSubmit reports whether the submit control is enabled.
func (s *RegisterScreen) CanSubmit() bool {
	return s.Name != "" && s.Email != "" && s.Password != ""
}

// Submit performs one registration attempt.
//
//   - success: navigate to login;
//   - registration closed: navigate to login, no error shown;
//   - rejected: Error is the server message, or the generic
//     registration-failed text when the server sent none;
//   - anything else: Error is the generic error text.
//
// Only the first two navigate. Fields are kept on failure.
func (s *RegisterScreen) Submit(ctx context.Context) error {
	if !s.CanSubmit() {
		return ErrIncompleteForm
	}
	if !s.busy.CompareAndSwap(false, true) {
		return ErrSubmitInProgress
	}
	defer s.busy.Store(false)

	s.Error = ""

	err := s.auth.Register(ctx, s.Name, s.Email, s.Password)

	var rejected *services.RejectedError
	switch {
	case err == nil, errors.Is(err, services.ErrRegistrationClosed):
		s.nav.Navigate(RouteLogin)
	case errors.As(err, &rejected):
		s.Error = rejected.Message
		if s.Error == "" {
			s.Error = s.messages.RegistrationFailed
		}
	default:
		s.Error = s.messages.GenericError
	}
	return err
}
