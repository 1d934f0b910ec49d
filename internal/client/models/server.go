package models

// Server is the subset of GET /api/server the client reads.
type Server struct {
	ID           int64          `json:"id"`
	Registration bool           `json:"registration"`
	Readonly     bool           `json:"readonly"`
	Announcement string         `json:"announcement,omitempty"`
	Version      string         `json:"version,omitempty"`
	Attributes   map[string]any `json:"attributes,omitempty"`
}
