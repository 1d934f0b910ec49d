package screens

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/trackcli/internal/client/models"
)

type fakeNav struct {
	mu     sync.Mutex
	routes []string
}

func (n *fakeNav) Navigate(route string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.routes = append(n.routes, route)
}

type fakeSession struct {
	updates []*models.User
}

func (s *fakeSession) UpdateUser(u *models.User) { s.updates = append(s.updates, u) }

type fakeAuth struct {
	user     *models.User
	loginErr error

	registerErr error
	available   bool
	availErr    error

	loginCalls    int
	registerCalls int
	lastEmail     string
	lastPassword  string
	lastName      string

	// block, when set, is waited on inside Login/Register.
	block   chan struct{}
	entered chan struct{}
}

func (f *fakeAuth) wait() {
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.block != nil {
		<-f.block
	}
}

func (f *fakeAuth) Login(_ context.Context, email, password string) (*models.User, error) {
	f.loginCalls++
	f.lastEmail, f.lastPassword = email, password
	f.wait()
	return f.user, f.loginErr
}

func (f *fakeAuth) Register(_ context.Context, name, email, password string) error {
	f.registerCalls++
	f.lastName, f.lastEmail, f.lastPassword = name, email, password
	f.wait()
	return f.registerErr
}

func (f *fakeAuth) RegistrationAvailable(context.Context) (bool, error) {
	return f.available, f.availErr
}
