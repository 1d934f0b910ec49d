package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/trackcli/internal/client/screens"
	"github.com/dmitrijs2005/trackcli/internal/client/services"
	"github.com/dmitrijs2005/trackcli/internal/common"
)

// getSimpleText and getPassword point to the interactive input helpers
// and are swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login runs the login screen once. The email prompt defaults to the email
// of the last successful login. A failed attempt prints the invalid
// credentials hint and leaves the user logged out.
func (a *App) Login(ctx context.Context) error {
	s := screens.NewLoginScreen(a.auth, a.session, a, a.messages)
	a.Navigate(screens.RouteLogin)

	remembered, err := a.auth.RememberedEmail(ctx)
	if err != nil {
		a.log.Warn(ctx, "could not read remembered email", "error", err)
	}

	prompt := "Enter email"
	if remembered != "" {
		prompt = fmt.Sprintf("Enter email [%s]", remembered)
	}
	email, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	if email == "" {
		email = remembered
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	s.Email = email
	s.Password = string(password)

	if err := s.Submit(ctx); err != nil {
		printlnFn(s.HelperText())
		return err
	}

	printlnFn("Logged in as", a.session.User().DisplayName())
	return nil
}

// Register runs the registration screen once. When registration is latched
// off the user is sent back to the login route without seeing the form.
func (a *App) Register(ctx context.Context) error {
	s := screens.NewRegisterScreen(a.auth, a, a.messages)
	a.Navigate(screens.RouteRegister)

	render, err := s.Mount(ctx)
	if err != nil {
		a.log.Warn(ctx, "could not read registration latch", "error", err)
	}
	if !render {
		printlnFn("Registration is not available.")
		return nil
	}

	if s.Name, err = getSimpleText(a.reader, "Enter name", a.out); err != nil {
		return err
	}
	if s.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	s.Password = string(password)

	if !s.CanSubmit() {
		printlnFn("Name, email and password are required.")
		return screens.ErrIncompleteForm
	}

	err = s.Submit(ctx)
	switch {
	case err == nil:
		printlnFn("Account created. You can log in now.")
	case errors.Is(err, services.ErrRegistrationClosed):
	default:
		printlnFn(s.Error)
	}
	return err
}

// Logout ends the session. The local identity is cleared even when the
// server call fails.
func (a *App) Logout(ctx context.Context) error {
	err := a.auth.Logout(ctx)
	a.session.Clear()
	a.Navigate(screens.RouteLogin)
	if err != nil {
		return err
	}
	printlnFn("Logged out")
	return nil
}

// WhoAmI prints the logged-in identity.
func (a *App) WhoAmI(ctx context.Context) error {
	u := a.session.User()
	if u == nil {
		printlnFn("Not logged in")
		return nil
	}
	role := "user"
	if u.Administrator {
		role = "administrator"
	}
	printlnFn(fmt.Sprintf("%s <%s> id=%d %s", u.DisplayName(), u.Email, u.ID, role))
	return nil
}

// ShowAnnouncement prints the server notice, if there is one.
func (a *App) ShowAnnouncement(ctx context.Context) error {
	if text := a.session.Announcement(); text != "" {
		printlnFn("Announcement:", text, "(type 'dismiss' to hide)")
	}
	return nil
}

func (a *App) DismissAnnouncement(ctx context.Context) error {
	a.session.DismissAnnouncement()
	return nil
}
