package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore is a small persistent map of JSON documents keyed by name.
type KeyValueStore interface {
	// Get returns ErrKeyNotFound when key is absent
	Get(ctx context.Context, key string) ([]byte, error)

	// Set creates or replaces the value
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key; deleting a missing key is not an error
	Delete(ctx context.Context, key string) error

	// Update runs fn on the current value under the store's lock and writes its result.
	// current is nil when key is absent.
	Update(ctx context.Context, key string, fn func(current []byte) ([]byte, error)) error
}

// GetJSON decodes the value at key into v.
func GetJSON(ctx context.Context, s KeyValueStore, key string, v any) error {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

// SetJSON encodes v and stores it at key.
func SetJSON(ctx context.Context, s KeyValueStore, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return s.Set(ctx, key, raw)
}
