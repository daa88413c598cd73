package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/worksphere/worksphere-backend-go/internal/domain/session"
	"github.com/worksphere/worksphere-backend-go/internal/domain/user"
)

type SessionServiceImpl struct {
	session.SessionRepository
	ttl time.Duration
	now func() time.Time
}

func NewSessionService(sessionRepository session.SessionRepository, ttl time.Duration, now func() time.Time) session.SessionService {
	if ttl <= 0 {
		ttl = session.DefaultTTL
	}
	if now == nil {
		now = time.Now
	}
	return &SessionServiceImpl{
		SessionRepository: sessionRepository,
		ttl:               ttl,
		now:               now,
	}
}

// Create implements session.SessionService.
func (s *SessionServiceImpl) Create(ctx context.Context, u user.User) (session.Session, error) {
	sess := session.Session{
		ID:         uuid.NewString(),
		UserID:     u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Role:       u.Role,
		Position:   u.Position,
		Department: u.Department,
		EmployeeID: u.EmployeeID,
		LoginTime:  s.now().UTC(),
	}
	if err := s.SessionRepository.Save(ctx, sess); err != nil {
		return session.Session{}, fmt.Errorf("failed to save session: %w", err)
	}
	return sess, nil
}

// Current implements session.SessionService.
func (s *SessionServiceImpl) Current(ctx context.Context) (*session.Session, error) {
	sess, err := s.SessionRepository.Get(ctx)
	if err != nil {
		if errors.Is(err, session.ErrMalformedSession) {
			slog.Warn("discarding malformed session record")
			if delErr := s.SessionRepository.Delete(ctx); delErr != nil {
				return nil, fmt.Errorf("failed to remove malformed session: %w", delErr)
			}
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	return sess, nil
}

// IsValid implements session.SessionService.
func (s *SessionServiceImpl) IsValid(sess session.Session) bool {
	return sess.ValidAt(s.now(), s.ttl)
}

// RequireValid implements session.SessionService.
func (s *SessionServiceImpl) RequireValid(ctx context.Context) (session.Session, error) {
	sess, err := s.Current(ctx)
	if err != nil {
		return session.Session{}, err
	}
	if sess == nil {
		return session.Session{}, session.ErrUnauthenticated
	}
	if !s.IsValid(*sess) {
		// Expiry is lazy: the stale record goes on the first read after it lapses
		if err := s.SessionRepository.Delete(ctx); err != nil {
			return session.Session{}, fmt.Errorf("failed to clear expired session: %w", err)
		}
		return session.Session{}, session.ErrUnauthenticated
	}
	return *sess, nil
}

// RequireRole implements session.SessionService.
func (s *SessionServiceImpl) RequireRole(ctx context.Context, role user.Role) (session.Session, error) {
	sess, err := s.RequireValid(ctx)
	if err != nil {
		return session.Session{}, err
	}
	if sess.Role != role {
		return session.Session{}, session.ErrWrongRole
	}
	return sess, nil
}

// Refresh implements session.SessionService. Id and login time are preserved.
func (s *SessionServiceImpl) Refresh(ctx context.Context, fn func(*session.Session)) (session.Session, error) {
	sess, err := s.RequireValid(ctx)
	if err != nil {
		return session.Session{}, err
	}

	id, loginTime := sess.ID, sess.LoginTime
	fn(&sess)
	sess.ID, sess.LoginTime = id, loginTime

	if err := s.SessionRepository.Save(ctx, sess); err != nil {
		return session.Session{}, fmt.Errorf("failed to save session: %w", err)
	}
	return sess, nil
}

// Clear implements session.SessionService.
func (s *SessionServiceImpl) Clear(ctx context.Context) error {
	if err := s.SessionRepository.Delete(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
