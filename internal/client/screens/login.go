package screens

import (
	"context"
	"sync/atomic"

	"github.com/dmitrijs2005/trackcli/internal/client/models"
)

// LoginService is the part of services.AuthService the login screen uses.
type LoginService interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
}

type LoginScreen struct {
	Email    string
	Password string
	// Failed marks both inputs as invalid.
	Failed bool

	auth     LoginService
	session  SessionSink
	nav      Navigator
	messages Messages
	busy     atomic.Bool
}

func NewLoginScreen(auth LoginService, session SessionSink, nav Navigator, messages Messages) *LoginScreen {
	return &LoginScreen{auth: auth, session: session, nav: nav, messages: messages}
}

// HelperText is the hint shown under the email input.
func (s *LoginScreen) HelperText() string {
	if s.Failed {
		return s.messages.InvalidCredentials
	}
	return ""
}

// Submit performs one login attempt with the current field values.
//
// On success the identity is handed to the session sink and the screen
// navigates home. On any failure Failed is set and Password cleared; Email
// is kept. The returned error is the cause of the failure, for logging.
func (s *LoginScreen) Submit(ctx context.Context) error {
	if !s.busy.CompareAndSwap(false, true) {
		return ErrSubmitInProgress
	}
	defer s.busy.Store(false)

	s.Failed = false

	user, err := s.auth.Login(ctx, s.Email, s.Password)
	if err != nil {
		s.Failed = true
		s.Password = ""
		return err
	}

	s.session.UpdateUser(user)
	s.nav.Navigate(RouteHome)
	return nil
}
