package session

import (
	"time"

	"github.com/worksphere/worksphere-backend-go/internal/domain/user"
)

type SessionResponse struct {
	UserID     string    `json:"user_id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Role       user.Role `json:"role"`
	Position   string    `json:"position"`
	Department string    `json:"department"`
	EmployeeID *int      `json:"employee_id,omitempty"`
	LoginTime  time.Time `json:"login_time"`
	ExpiresAt  time.Time `json:"expires_at"`
}

func NewSessionResponse(s Session, ttl time.Duration) SessionResponse {
	return SessionResponse{
		UserID:     s.UserID,
		Email:      s.Email,
		Name:       s.Name,
		Role:       s.Role,
		Position:   s.Position,
		Department: s.Department,
		EmployeeID: s.EmployeeID,
		LoginTime:  s.LoginTime,
		ExpiresAt:  s.ExpiresAt(ttl),
	}
}
