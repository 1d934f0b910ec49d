package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/trackcli/internal/client/models"
	"github.com/dmitrijs2005/trackcli/internal/common"
	"github.com/google/uuid"
)

const (
	sessionPath = "/api/session"
	usersPath   = "/api/users"
	serverPath  = "/api/server"
)

// HTTPClient talks to the REST API over net/http. The session cookie set
// by the server on login is kept in a cookie jar for later calls.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient returns a client for the server at baseURL. A zero timeout
// leaves requests bounded only by their context.
func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("parse server url: unsupported scheme %q", u.Scheme)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	return &HTTPClient{
		baseURL: strings.TrimRight(u.String(), "/"),
		http:    &http.Client{Timeout: timeout, Jar: jar},
	}, nil
}

func (c *HTTPClient) CreateSession(ctx context.Context, email, password string) (*models.User, error) {
	form := url.Values{"email": {email}, "password": {password}}

	req, err := c.newRequest(ctx, http.MethodPost, sessionPath, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("create session: %w: %w", ErrTransport, err)
	}
	defer drainAndClose(resp.Body)

	if !isSuccess(resp.StatusCode) {
		return nil, fmt.Errorf("create session: %w (status %d)", ErrInvalidCredentials, resp.StatusCode)
	}

	var user models.User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("create session: decode user: %w: %w", ErrTransport, err)
	}
	return &user, nil
}

func (c *HTTPClient) DeleteSession(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodDelete, sessionPath, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("delete session: %w: %w", ErrTransport, err)
	}
	defer drainAndClose(resp.Body)

	if !isSuccess(resp.StatusCode) {
		return fmt.Errorf("delete session: %w %d", ErrUnexpectedStatus, resp.StatusCode)
	}
	return nil
}

func (c *HTTPClient) CreateUser(ctx context.Context, r models.RegistrationRequest) (models.RegistrationResult, error) {
	var zero models.RegistrationResult

	payload, err := json.Marshal(r)
	if err != nil {
		return zero, fmt.Errorf("create user: encode: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, usersPath, bytes.NewReader(payload))
	if err != nil {
		return zero, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return zero, fmt.Errorf("create user: %w: %w", ErrTransport, err)
	}
	defer drainAndClose(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, fmt.Errorf("create user: read body: %w: %w", ErrTransport, err)
	}

	return ClassifyRegistration(resp.StatusCode, string(body)), nil
}

func (c *HTTPClient) Server(ctx context.Context) (*models.Server, error) {
	req, err := c.newRequest(ctx, http.MethodGet, serverPath, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get server: %w: %w", ErrTransport, err)
	}
	defer drainAndClose(resp.Body)

	if !isSuccess(resp.StatusCode) {
		return nil, fmt.Errorf("get server: %w %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var s models.Server
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		return nil, fmt.Errorf("get server: decode: %w: %w", ErrTransport, err)
	}
	return &s, nil
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	id := RequestID(ctx)
	if id == "" {
		id = uuid.NewString()
	}
	req.Header.Set(common.RequestIDHeader, id)
	return req, nil
}

func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
