package session

import "errors"

var (
	ErrUnauthenticated  = errors.New("not logged in or session expired")
	ErrWrongRole        = errors.New("session role does not permit this action")
	ErrMalformedSession = errors.New("stored session is malformed")
)
