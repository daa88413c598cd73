package user

import "context"

// UserRepository persists the user directory. Email matching is case-sensitive.
type UserRepository interface {
	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByEmailAndRole(ctx context.Context, email string, role Role) (User, error)
	Create(ctx context.Context, newUser User) error
	Update(ctx context.Context, u User) error
}
