// Package session holds the application state shared between screens:
// the logged-in identity and the server announcement.
package session

import (
	"sync"

	"github.com/dmitrijs2005/trackcli/internal/client/models"
)

// State is safe for concurrent use. The zero value is ready to use.
type State struct {
	mu           sync.RWMutex
	user         *models.User
	announcement string
}

func NewState() *State {
	return &State{}
}

// UpdateUser records the identity returned by a successful login.
func (s *State) UpdateUser(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
}

// User returns the current identity, or nil when logged out.
func (s *State) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *State) LoggedIn() bool {
	return s.User() != nil
}

// Clear forgets the identity.
func (s *State) Clear() {
	s.UpdateUser(nil)
}

func (s *State) SetAnnouncement(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.announcement = text
}

// Announcement returns the pending server notice; empty means nothing to show.
func (s *State) Announcement() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.announcement
}

func (s *State) DismissAnnouncement() {
	s.SetAnnouncement("")
}
