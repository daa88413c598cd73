package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stores(t *testing.T) map[string]KeyValueStore {
	t.Helper()
	local, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	return map[string]KeyValueStore{
		"memory": NewMemoryStore(),
		"local":  local,
	}
}

func TestKeyValueStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Get(ctx, "session")
			assert.ErrorIs(t, err, ErrKeyNotFound)

			require.NoError(t, s.Set(ctx, "session", []byte(`{"id":"a"}`)))
			got, err := s.Get(ctx, "session")
			require.NoError(t, err)
			assert.JSONEq(t, `{"id":"a"}`, string(got))

			require.NoError(t, s.Delete(ctx, "session"))
			_, err = s.Get(ctx, "session")
			assert.ErrorIs(t, err, ErrKeyNotFound)

			assert.NoError(t, s.Delete(ctx, "session"))
		})
	}
}

func TestKeyValueStore_Update(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			err := s.Update(ctx, "users", func(current []byte) ([]byte, error) {
				assert.Nil(t, current)
				return []byte(`[1]`), nil
			})
			require.NoError(t, err)

			err = s.Update(ctx, "users", func(current []byte) ([]byte, error) {
				assert.Equal(t, `[1]`, string(current))
				return []byte(`[1,2]`), nil
			})
			require.NoError(t, err)

			boom := errors.New("boom")
			err = s.Update(ctx, "users", func(current []byte) ([]byte, error) {
				return nil, boom
			})
			assert.ErrorIs(t, err, boom)

			got, err := s.Get(ctx, "users")
			require.NoError(t, err)
			assert.Equal(t, `[1,2]`, string(got))
		})
	}
}

func TestJSONHelpers(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	type doc struct {
		Name string `json:"name"`
	}
	require.NoError(t, SetJSON(ctx, s, "doc", doc{Name: "Sibongile"}))

	var got doc
	require.NoError(t, GetJSON(ctx, s, "doc", &got))
	assert.Equal(t, "Sibongile", got.Name)

	require.NoError(t, s.Set(ctx, "broken", []byte("{not json")))
	err := GetJSON(ctx, s, "broken", &got)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrKeyNotFound)
}

func TestLocalStore_RejectsPathKeys(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStore(dir)
	require.NoError(t, err)

	err = s.Set(context.Background(), "../escape", []byte("x"))
	assert.Error(t, err)

	_, statErr := os.Stat(filepath.Join(filepath.Dir(dir), "escape.json"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestLocalStore_PersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	first, err := NewLocalStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "session", []byte(`{"id":"x"}`)))

	second, err := NewLocalStore(dir)
	require.NoError(t, err)
	got, err := second.Get(ctx, "session")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"x"}`, string(got))
}
