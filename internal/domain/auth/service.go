package auth

import (
	"context"

	"github.com/worksphere/worksphere-backend-go/internal/domain/session"
	"github.com/worksphere/worksphere-backend-go/internal/domain/user"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	// Register creates an employee account and logs it in.
	Register(ctx context.Context, req user.RegisterRequest) (TokenResponse, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (session.SessionResponse, error)
}
