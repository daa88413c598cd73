package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/worksphere/worksphere-backend-go/internal/domain/user"
	"github.com/worksphere/worksphere-backend-go/internal/pkg/storage"
)

const usersKey = "users"

// userRepositoryImpl stores the whole directory as one JSON array.
type userRepositoryImpl struct {
	store storage.KeyValueStore
}

func NewUserRepository(store storage.KeyValueStore) user.UserRepository {
	return &userRepositoryImpl{store: store}
}

func (r *userRepositoryImpl) List(ctx context.Context) ([]user.User, error) {
	var users []user.User
	err := storage.GetJSON(ctx, r.store, usersKey, &users)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return []user.User{}, nil
		}
		return nil, err
	}
	return users, nil
}

func (r *userRepositoryImpl) find(ctx context.Context, match func(u user.User) bool) (user.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return user.User{}, err
	}
	for _, u := range users {
		if match(u) {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	return r.find(ctx, func(u user.User) bool { return u.ID == id })
}

func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return r.find(ctx, func(u user.User) bool { return u.Email == email })
}

func (r *userRepositoryImpl) GetByEmailAndRole(ctx context.Context, email string, role user.Role) (user.User, error) {
	return r.find(ctx, func(u user.User) bool { return u.Email == email && u.Role == role })
}

// Create rejects a second account with the same email and role.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) error {
	return r.update(ctx, func(users []user.User) ([]user.User, error) {
		for _, u := range users {
			if u.Email == newUser.Email && u.Role == newUser.Role {
				return nil, user.ErrEmailTaken
			}
		}
		return append(users, newUser), nil
	})
}

func (r *userRepositoryImpl) Update(ctx context.Context, updated user.User) error {
	return r.update(ctx, func(users []user.User) ([]user.User, error) {
		for i := range users {
			if users[i].ID == updated.ID {
				users[i] = updated
				return users, nil
			}
		}
		return nil, user.ErrUserNotFound
	})
}

func (r *userRepositoryImpl) update(ctx context.Context, fn func(users []user.User) ([]user.User, error)) error {
	return r.store.Update(ctx, usersKey, func(current []byte) ([]byte, error) {
		users := []user.User{}
		if current != nil {
			if err := json.Unmarshal(current, &users); err != nil {
				return nil, fmt.Errorf("failed to decode %s: %w", usersKey, err)
			}
		}
		next, err := fn(users)
		if err != nil {
			return nil, err
		}
		return json.Marshal(next)
	})
}
