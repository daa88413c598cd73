package jwt

import (
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/worksphere/worksphere-backend-go/internal/domain/user"
)

// TokenTypeSession marks bearer tokens issued at login.
const TokenTypeSession = "session"

var ErrInvalidClaims = errors.New("token is missing session claims")

type Service interface {
	// GenerateSessionToken signs a token bound to a stored session; it expires with the session.
	GenerateSessionToken(sessionID string, userID string, role user.Role, expiresAt time.Time) (token string, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	tokenAuth *jwtauth.JWTAuth
}

func NewJWTService(secretKey string) Service {
	return &JWTService{
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateSessionToken(sessionID string, userID string, role user.Role, expiresAt time.Time) (string, error) {
	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"session_id": sessionID,
		"user_id":    userID,
		"role":       string(role),
		"type":       TokenTypeSession,
		"exp":        expiresAt.Unix(),
	})
	return tokenString, err
}

// SessionClaims is what the middleware needs from a verified token.
type SessionClaims struct {
	SessionID string
	UserID    string
	Role      user.Role
}

// ParseSessionClaims reads the session claims from a decoded claims map.
func ParseSessionClaims(claims map[string]interface{}) (SessionClaims, error) {
	if tokenType, _ := claims["type"].(string); tokenType != TokenTypeSession {
		return SessionClaims{}, ErrInvalidClaims
	}
	sessionID, _ := claims["session_id"].(string)
	userID, _ := claims["user_id"].(string)
	role, _ := claims["role"].(string)
	if sessionID == "" || userID == "" || !user.Role(role).IsValid() {
		return SessionClaims{}, ErrInvalidClaims
	}
	return SessionClaims{SessionID: sessionID, UserID: userID, Role: user.Role(role)}, nil
}
