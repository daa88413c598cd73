package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/worksphere/worksphere-backend-go/internal/pkg/database"
	"github.com/worksphere/worksphere-backend-go/internal/pkg/storage"
)

const kvSchema = `
CREATE TABLE IF NOT EXISTS kv_store (
	key        TEXT PRIMARY KEY,
	value      JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// KVStore implements storage.KeyValueStore on a single table.
type KVStore struct {
	db *database.DB
}

func NewKVStore(db *database.DB) *KVStore {
	return &KVStore{db: db}
}

// EnsureSchema creates the backing table if needed.
func (s *KVStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, kvSchema); err != nil {
		return fmt.Errorf("create kv_store: %w", err)
	}
	return nil
}

func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	q := GetQuerier(ctx, s.db)

	var value []byte
	err := q.QueryRow(ctx, `SELECT value FROM kv_store WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrKeyNotFound
		}
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return value, nil
}

func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	q := GetQuerier(ctx, s.db)

	_, err := q.Exec(ctx, `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, value)
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (s *KVStore) Delete(ctx context.Context, key string) error {
	q := GetQuerier(ctx, s.db)

	if _, err := q.Exec(ctx, `DELETE FROM kv_store WHERE key = $1`, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Update serializes writers on key with a transaction-scoped advisory lock,
// which also covers keys that do not exist yet.
func (s *KVStore) Update(ctx context.Context, key string, fn func(current []byte) ([]byte, error)) error {
	return WithTransaction(ctx, s.db, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, key); err != nil {
			return fmt.Errorf("lock %s: %w", key, err)
		}

		current, err := s.Get(ctx, key)
		if err != nil && !errors.Is(err, storage.ErrKeyNotFound) {
			return err
		}

		next, err := fn(current)
		if err != nil {
			return err
		}
		return s.Set(ctx, key, next)
	})
}
