package model

import (
	"time"

	"github.com/google/uuid"
)

// PanelUser is a user account as the panel reports it. The panel is the
// system of record; we never persist these beyond a session's lifetime.
type PanelUser struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Language  string    `json:"language"`
	RootAdmin bool      `json:"root_admin"`
	CreatedAt time.Time `json:"created_at"`
}

// DisplayName returns the user's full name, falling back to the username.
func (u *PanelUser) DisplayName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Username
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// PanelServer is a game server instance belonging to one PanelUser.
// Read-only from this system's perspective.
type PanelServer struct {
	ID          int          `json:"id"`
	UUID        uuid.UUID    `json:"uuid"`
	Identifier  string       `json:"identifier"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Limits      ServerLimits `json:"limits"`
}

// ServerLimits holds the resource allocation of a server.
// Memory, swap and disk are in MB, CPU is a percentage (100 = one core).
type ServerLimits struct {
	Memory int `json:"memory"`
	Swap   int `json:"swap"`
	Disk   int `json:"disk"`
	IO     int `json:"io"`
	CPU    int `json:"cpu"`
}
