package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/worksphere/worksphere-backend-go/internal/domain/auth"
	"github.com/worksphere/worksphere-backend-go/internal/domain/session"
	"github.com/worksphere/worksphere-backend-go/internal/domain/user"
	"github.com/worksphere/worksphere-backend-go/internal/fixtures"
	"github.com/worksphere/worksphere-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// Options tunes login behaviour.
type Options struct {
	SessionTTL time.Duration
	// DemoMode accepts any password for allow-listed demo emails.
	DemoMode bool
}

type AuthServiceImpl struct {
	user.UserService
	session.SessionService
	jwt.Service
	demoAccounts fixtures.DemoAccounts
	opts         Options
}

func NewAuthService(userService user.UserService, sessionService session.SessionService, jwtService jwt.Service, demoAccounts fixtures.DemoAccounts, opts Options) auth.AuthService {
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = session.DefaultTTL
	}
	return &AuthServiceImpl{
		UserService:    userService,
		SessionService: sessionService,
		Service:        jwtService,
		demoAccounts:   demoAccounts,
		opts:           opts,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	found, err := a.UserService.FindUser(ctx, req.Email, req.Role)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	var u user.User
	if found != nil {
		u = *found
	} else {
		u, err = a.UserService.EnsureDemoUser(ctx, req.Email, req.Role)
		if err != nil {
			if errors.Is(err, user.ErrNotDemoAccount) {
				return auth.TokenResponse{}, auth.ErrInvalidCredentials
			}
			return auth.TokenResponse{}, err
		}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		_, isDemo := a.demoAccounts.Lookup(u.Email)
		if !a.opts.DemoMode || !isDemo {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		slog.Warn("demo mode: accepting wrong password for demo account", "email", u.Email)
	}

	return a.startSession(ctx, u)
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req user.RegisterRequest) (auth.TokenResponse, error) {
	u, err := a.UserService.Register(ctx, req)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	return a.startSession(ctx, u)
}

func (a *AuthServiceImpl) startSession(ctx context.Context, u user.User) (auth.TokenResponse, error) {
	sess, err := a.SessionService.Create(ctx, u)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	expiresAt := sess.ExpiresAt(a.opts.SessionTTL)
	token, err := a.Service.GenerateSessionToken(sess.ID, sess.UserID, sess.Role, expiresAt)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create session token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt.Unix(),
		Session:     session.NewSessionResponse(sess, a.opts.SessionTTL),
	}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context) error {
	return a.SessionService.Clear(ctx)
}

// Me implements auth.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context) (session.SessionResponse, error) {
	sess, err := a.SessionService.RequireValid(ctx)
	if err != nil {
		return session.SessionResponse{}, err
	}
	return session.NewSessionResponse(sess, a.opts.SessionTTL), nil
}
