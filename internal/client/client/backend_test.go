package client

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/dmitrijs2005/trackcli/internal/client/models"
	"github.com/go-chi/chi/v5"
)

// fakeBackend is a minimal stand-in for the tracking server.
type fakeBackend struct {
	mu sync.Mutex

	sessionStatus int
	sessionBody   string
	usersStatus   int
	usersBody     string
	serverBody    string
	serverStatus  int

	lastForm        map[string]string
	lastContentType string
	lastRegistered  models.RegistrationRequest
	lastRequestID   string
	deleteCookie    string
}

func newFakeBackend(t *testing.T) (*fakeBackend, *httptest.Server) {
	t.Helper()
	b := &fakeBackend{
		sessionStatus: http.StatusOK,
		sessionBody:   `{"id":1,"name":"Ann","email":"a@b.com"}`,
		usersStatus:   http.StatusOK,
		serverStatus:  http.StatusOK,
		serverBody:    `{"id":1,"registration":true,"announcement":"maintenance at 22:00"}`,
	}

	r := chi.NewRouter()
	r.Post("/api/session", b.createSession)
	r.Delete("/api/session", b.deleteSession)
	r.Post("/api/users", b.createUser)
	r.Get("/api/server", b.server)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return b, srv
}

func (b *fakeBackend) createSession(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	_ = r.ParseForm()
	b.lastContentType = r.Header.Get("Content-Type")
	b.lastRequestID = r.Header.Get("X-Request-Id")
	b.lastForm = map[string]string{"email": r.PostForm.Get("email"), "password": r.PostForm.Get("password")}

	if b.sessionStatus < 300 {
		http.SetCookie(w, &http.Cookie{Name: "JSESSIONID", Value: "s1", Path: "/"})
	}
	w.WriteHeader(b.sessionStatus)
	_, _ = io.WriteString(w, b.sessionBody)
}

func (b *fakeBackend) deleteSession(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if c, err := r.Cookie("JSESSIONID"); err == nil {
		b.deleteCookie = c.Value
	}
	w.WriteHeader(http.StatusNoContent)
}

func (b *fakeBackend) createUser(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lastContentType = r.Header.Get("Content-Type")
	b.lastRequestID = r.Header.Get("X-Request-Id")
	_ = json.NewDecoder(r.Body).Decode(&b.lastRegistered)

	w.WriteHeader(b.usersStatus)
	_, _ = io.WriteString(w, b.usersBody)
}

func (b *fakeBackend) server(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(b.serverStatus)
	_, _ = io.WriteString(w, b.serverBody)
}
