package kv

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/worksphere/worksphere-backend-go/internal/domain/session"
	"github.com/worksphere/worksphere-backend-go/internal/pkg/storage"
)

const sessionKey = "session"

type sessionRepositoryImpl struct {
	store storage.KeyValueStore
}

func NewSessionRepository(store storage.KeyValueStore) session.SessionRepository {
	return &sessionRepositoryImpl{store: store}
}

func (r *sessionRepositoryImpl) Get(ctx context.Context) (*session.Session, error) {
	raw, err := r.store.Get(ctx, sessionKey)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var s session.Session
	if err := json.Unmarshal(raw, &s); err != nil || s.ID == "" || s.LoginTime.IsZero() {
		return nil, session.ErrMalformedSession
	}
	return &s, nil
}

func (r *sessionRepositoryImpl) Save(ctx context.Context, s session.Session) error {
	return storage.SetJSON(ctx, r.store, sessionKey, s)
}

func (r *sessionRepositoryImpl) Delete(ctx context.Context) error {
	return r.store.Delete(ctx, sessionKey)
}
