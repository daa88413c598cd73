package session

import "context"

type SessionRepository interface {
	// Get returns nil when nothing is stored and ErrMalformedSession when the record cannot be decoded.
	Get(ctx context.Context) (*Session, error)
	Save(ctx context.Context, s Session) error
	Delete(ctx context.Context) error
}
