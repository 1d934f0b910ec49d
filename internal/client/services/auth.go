// Package services contains the application services of the client.
// This file defines the authentication service: login, registration with
// the persisted registration latch, logout and server info.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/trackcli/internal/client/client"
	"github.com/dmitrijs2005/trackcli/internal/client/latch"
	"github.com/dmitrijs2005/trackcli/internal/client/models"
	"github.com/dmitrijs2005/trackcli/internal/client/repositories/prefs"
	"github.com/dmitrijs2005/trackcli/internal/logging"
	"github.com/google/uuid"
)

const (
	rememberedEmailKey  = "login.email"
	rememberedUserIDKey = "login.userId"
)

// ErrRegistrationClosed means the server reported registration as
// disabled. The latch has been set by the time it is returned.
var ErrRegistrationClosed = errors.New("registration closed")

// RejectedError is a registration refused by the server. Message is the
// raw response body and may be empty.
type RejectedError struct {
	Status  int
	Message string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("registration rejected (status %d)", e.Status)
	}
	return fmt.Sprintf("registration rejected (status %d): %s", e.Status, e.Message)
}

// AuthService defines the authentication operations used by the screens.
//
// Contract:
//   - Login: open a server session; failures are client.ErrInvalidCredentials
//     or client.ErrTransport.
//   - Register: create a user; failures are ErrRegistrationClosed,
//     *RejectedError or client.ErrTransport.
//   - RegistrationAvailable: false once the registration latch is set.
//   - Logout: end the server session.
//   - ServerInfo: fetch public server info (announcement).
//   - RememberedEmail: the email of the last successful login, if any.
//
// All methods honor context cancellation.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Register(ctx context.Context, name, email, password string) error
	RegistrationAvailable(ctx context.Context) (bool, error)
	Logout(ctx context.Context) error
	ServerInfo(ctx context.Context) (*models.Server, error)
	RememberedEmail(ctx context.Context) (string, error)
}

type authService struct {
	client client.Client
	prefs  prefs.Repository
	latch  *latch.RegistrationLatch
	log    logging.Logger
}

// NewAuthService binds the service to an API client and the local database.
func NewAuthService(c client.Client, db *sql.DB, log logging.Logger) AuthService {
	repo := prefs.NewSQLiteRepository(db)
	return &authService{
		client: c,
		prefs:  repo,
		latch:  latch.NewRegistrationLatch(repo),
		log:    log,
	}
}

// attempt tags ctx and the logger with a fresh request id.
func (a *authService) attempt(ctx context.Context, flow string) (context.Context, logging.Logger) {
	id := uuid.NewString()
	return client.WithRequestID(ctx, id), a.log.With("flow", flow, "request_id", id)
}

// Login submits the credentials once. On success the email is remembered
// locally; failing to remember it is logged and otherwise ignored.
func (a *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	ctx, log := a.attempt(ctx, "login")

	user, err := a.client.CreateSession(ctx, email, password)
	if err != nil {
		if errors.Is(err, client.ErrTransport) {
			log.Warn(ctx, "login transport failure", "error", err)
		} else {
			log.Warn(ctx, "login rejected", "email", email, "error", err)
		}
		return nil, err
	}

	log.Info(ctx, "login successful", "user_id", user.ID)

	err = a.prefs.SetMany(ctx, map[string]string{
		rememberedEmailKey:  email,
		rememberedUserIDKey: strconv.FormatInt(user.ID, 10),
	})
	if err != nil {
		log.Warn(ctx, "could not remember login", "error", err)
	}

	return user, nil
}

// Register submits a new user. When the server says registration is
// disabled the latch is set before ErrRegistrationClosed is returned; a
// failure to persist the latch is logged but does not change the outcome.
func (a *authService) Register(ctx context.Context, name, email, password string) error {
	ctx, log := a.attempt(ctx, "register")

	res, err := a.client.CreateUser(ctx, models.RegistrationRequest{Name: name, Email: email, Password: password})
	if err != nil {
		log.Warn(ctx, "registration transport failure", "error", err)
		return err
	}

	switch res.Kind {
	case models.RegistrationOK:
		log.Info(ctx, "registration successful", "email", email)
		return nil
	case models.RegistrationClosed:
		log.Info(ctx, "registration closed by server, latching", "status", res.Status)
		if err := a.latch.Disable(ctx); err != nil {
			log.Error(ctx, "could not persist registration latch", "error", err)
		}
		return ErrRegistrationClosed
	default:
		log.Warn(ctx, "registration rejected", "status", res.Status, "message", res.Message)
		return &RejectedError{Status: res.Status, Message: res.Message}
	}
}

func (a *authService) RegistrationAvailable(ctx context.Context) (bool, error) {
	disabled, err := a.latch.IsDisabled(ctx)
	if err != nil {
		return false, err
	}
	return !disabled, nil
}

// Logout ends the server session. The remembered email is kept so the
// next login can be prefilled.
func (a *authService) Logout(ctx context.Context) error {
	ctx, log := a.attempt(ctx, "logout")

	if err := a.client.DeleteSession(ctx); err != nil {
		log.Warn(ctx, "logout failed", "error", err)
		return err
	}
	return a.prefs.Delete(ctx, rememberedUserIDKey)
}

func (a *authService) ServerInfo(ctx context.Context) (*models.Server, error) {
	return a.client.Server(ctx)
}

func (a *authService) RememberedEmail(ctx context.Context) (string, error) {
	v, _, err := a.prefs.Get(ctx, rememberedEmailKey)
	return v, err
}
