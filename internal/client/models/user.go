package models

import "time"

// User is the session identity returned by the server on login.
type User struct {
	ID             int64          `json:"id"`
	Name           string         `json:"name"`
	Login          string         `json:"login,omitempty"`
	Email          string         `json:"email"`
	Phone          string         `json:"phone,omitempty"`
	Readonly       bool           `json:"readonly"`
	Administrator  bool           `json:"administrator"`
	Disabled       bool           `json:"disabled"`
	ExpirationTime *time.Time     `json:"expirationTime,omitempty"`
	DeviceLimit    int            `json:"deviceLimit"`
	UserLimit      int            `json:"userLimit"`
	Attributes     map[string]any `json:"attributes,omitempty"`
}

// DisplayName prefers the user's name and falls back to the email.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
