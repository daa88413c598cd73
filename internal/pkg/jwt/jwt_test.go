package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worksphere/worksphere-backend-go/internal/domain/user"
)

func TestGenerateSessionToken_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.GenerateSessionToken("sess-1", "admin_001", user.RoleAdmin, time.Now().Add(time.Hour))
	require.NoError(t, err)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)

	sc, err := ParseSessionClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, SessionClaims{SessionID: "sess-1", UserID: "admin_001", Role: user.RoleAdmin}, sc)
}

func TestGenerateSessionToken_Expired(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.GenerateSessionToken("sess-1", "u", user.RoleEmployee, time.Now().Add(-time.Hour))
	require.NoError(t, err)

	_, err = svc.JWTAuth().Decode(token)
	assert.Error(t, err)
}

func TestGenerateSessionToken_WrongSecret(t *testing.T) {
	token, err := NewJWTService("one").GenerateSessionToken("s", "u", user.RoleAdmin, time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = NewJWTService("two").JWTAuth().Decode(token)
	assert.Error(t, err)
}

func TestParseSessionClaims_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		claims map[string]interface{}
	}{
		{"wrong type", map[string]interface{}{"type": "refresh", "session_id": "s", "user_id": "u", "role": "admin"}},
		{"no session", map[string]interface{}{"type": "session", "user_id": "u", "role": "admin"}},
		{"bad role", map[string]interface{}{"type": "session", "session_id": "s", "user_id": "u", "role": "owner"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSessionClaims(tt.claims)
			assert.ErrorIs(t, err, ErrInvalidClaims)
		})
	}
}
