package session

import (
	"context"

	"github.com/worksphere/worksphere-backend-go/internal/domain/user"
)

type SessionService interface {
	// Create stamps a new session for u, replacing any existing one.
	Create(ctx context.Context, u user.User) (Session, error)
	// Current returns the stored session, valid or not, or nil.
	Current(ctx context.Context) (*Session, error)
	IsValid(s Session) bool
	// RequireRole returns the current valid session when its role is role.
	RequireRole(ctx context.Context, role user.Role) (Session, error)
	// RequireValid returns the current valid session of any role.
	RequireValid(ctx context.Context) (Session, error)
	Refresh(ctx context.Context, fn func(*Session)) (Session, error)
	Clear(ctx context.Context) error
}
