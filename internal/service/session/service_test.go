package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worksphere/worksphere-backend-go/internal/domain/session"
	"github.com/worksphere/worksphere-backend-go/internal/domain/user"
	"github.com/worksphere/worksphere-backend-go/internal/pkg/storage"
	"github.com/worksphere/worksphere-backend-go/internal/repository/kv"
)

type clock struct{ t time.Time }

func (c *clock) Now() time.Time { return c.t }

func newTestService(t *testing.T) (session.SessionService, *clock, storage.KeyValueStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	c := &clock{t: time.Date(2025, 7, 29, 9, 0, 0, 0, time.UTC)}
	return NewSessionService(kv.NewSessionRepository(store), 24*time.Hour, c.Now), c, store
}

var admin = user.User{
	ID:         "admin_001",
	Email:      "admin@worksphere.com",
	Name:       "Administrator",
	Role:       user.RoleAdmin,
	Position:   "HR Manager",
	Department: "Human Resources",
}

func TestCreateThenCurrent(t *testing.T) {
	svc, c, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, admin)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, c.t, created.LoginTime)

	current, err := svc.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, created.ID, current.ID)
	assert.Equal(t, admin.Email, current.Email)
	assert.Equal(t, user.RoleAdmin, current.Role)
	assert.True(t, svc.IsValid(*current))
}

func TestCreateReplacesPreviousSession(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, admin)
	require.NoError(t, err)
	second, err := svc.Create(ctx, user.User{ID: "emp_001", Email: "employee@worksphere.com", Role: user.RoleEmployee})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	current, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, current.ID)
}

func TestRequireRole(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.RequireRole(ctx, user.RoleAdmin)
	assert.ErrorIs(t, err, session.ErrUnauthenticated)

	_, err = svc.Create(ctx, admin)
	require.NoError(t, err)

	got, err := svc.RequireRole(ctx, user.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, got.UserID)

	_, err = svc.RequireRole(ctx, user.RoleEmployee)
	assert.ErrorIs(t, err, session.ErrWrongRole)
}

func TestExpiry(t *testing.T) {
	svc, c, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, admin)
	require.NoError(t, err)

	c.t = c.t.Add(24*time.Hour - time.Second)
	_, err = svc.RequireRole(ctx, user.RoleAdmin)
	require.NoError(t, err)

	c.t = c.t.Add(time.Second)
	_, err = svc.RequireRole(ctx, user.RoleAdmin)
	assert.ErrorIs(t, err, session.ErrUnauthenticated)

	current, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, current, "expired session is removed on access")
}

func TestMalformedSessionIsRemoved(t *testing.T) {
	svc, _, store := newTestService(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "session", []byte("{broken")))

	current, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)

	_, err = store.Get(ctx, "session")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
}

func TestRefreshKeepsIdentity(t *testing.T) {
	svc, c, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, admin)
	require.NoError(t, err)

	c.t = c.t.Add(time.Hour)
	refreshed, err := svc.Refresh(ctx, func(s *session.Session) {
		s.Name = "Head of HR"
		s.ID = "tampered"
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, refreshed.ID)
	assert.Equal(t, created.LoginTime, refreshed.LoginTime)
	assert.Equal(t, "Head of HR", refreshed.Name)
}

func TestClear(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, admin)
	require.NoError(t, err)
	require.NoError(t, svc.Clear(ctx))

	_, err = svc.RequireRole(ctx, user.RoleAdmin)
	assert.ErrorIs(t, err, session.ErrUnauthenticated)
}
