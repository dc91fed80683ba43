package dto

import (
	"strings"
	"time"
)

type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required,max=100"`
	Password string `json:"password" form:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
}

// Session is the server-side record a staff cookie points at.
type Session struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

// MaxAge is the cookie lifetime in seconds, never negative.
func (l LoginResponse) MaxAge(now time.Time) int {
	seconds := int(l.ExpiresAt.Sub(now).Seconds())
	if seconds < 0 {
		return 0
	}

	return seconds
}
