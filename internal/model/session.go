package model

import "time"

// Session is server-held proof that a browser completed login. It carries a
// snapshot of the panel user taken at login time; absence of a session is
// the anonymous state.
type Session struct {
	Token     string    `json:"token"`
	User      PanelUser `json:"user"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session has passed its expiry.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
