// Package screens models the login and registration screens as plain
// form state plus a Submit method, independent of any rendering layer.
//
// A screen owns its field values and the error state shown next to them.
// Side effects leave the screen through two small interfaces: Navigator
// for route changes and SessionSink for the logged-in identity.
package screens

import (
	"errors"

	"github.com/dmitrijs2005/trackcli/internal/client/models"
)

const (
	RouteHome     = "/"
	RouteLogin    = "/login"
	RouteRegister = "/register"
)

var (
	// ErrSubmitInProgress is returned when Submit is called while a previous
	// submission of the same screen has not finished. Form state is untouched.
	ErrSubmitInProgress = errors.New("submission already in progress")
	// ErrIncompleteForm is returned when a required field is empty.
	ErrIncompleteForm = errors.New("all fields are required")
)

// Navigator changes the current route.
type Navigator interface {
	Navigate(route string)
}

// SessionSink receives the identity of a successful login.
type SessionSink interface {
	UpdateUser(u *models.User)
}

// Messages is the user-facing copy of the screens.
type Messages struct {
	InvalidCredentials string
	RegistrationFailed string
	GenericError       string
}

var DefaultMessages = Messages{
	InvalidCredentials: "Invalid email or password",
	RegistrationFailed: "Registration failed. Please try again.",
	GenericError:       "An error occurred. Please try again.",
}
