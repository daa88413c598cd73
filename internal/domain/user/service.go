package user

import "context"

// UserService is the user directory: stored accounts plus the demo allow-list.
type UserService interface {
	// SeedDemoAccounts stores the allow-listed demo accounts that are not stored yet.
	SeedDemoAccounts(ctx context.Context) error

	// FindUser returns the stored user with exactly this email and role, or nil.
	FindUser(ctx context.Context, email string, role Role) (*User, error)

	// EnsureDemoUser synthesizes and stores a user for an allow-listed email.
	EnsureDemoUser(ctx context.Context, email string, role Role) (User, error)

	Register(ctx context.Context, req RegisterRequest) (User, error)
	GetProfile(ctx context.Context, userID string) (ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (ProfileResponse, error)
}
