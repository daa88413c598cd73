package session

import (
	"time"

	"github.com/worksphere/worksphere-backend-go/internal/domain/user"
)

// DefaultTTL is how long a login stays valid.
const DefaultTTL = 24 * time.Hour

// Session is the single logged-in identity. A new login replaces it.
type Session struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Role       user.Role `json:"role"`
	Position   string    `json:"position"`
	Department string    `json:"department"`
	EmployeeID *int      `json:"employee_id,omitempty"`
	LoginTime  time.Time `json:"login_time"`
}

// ValidAt reports whether the session is younger than ttl at now.
func (s Session) ValidAt(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.LoginTime) < ttl
}

func (s Session) ExpiresAt(ttl time.Duration) time.Time {
	return s.LoginTime.Add(ttl)
}
