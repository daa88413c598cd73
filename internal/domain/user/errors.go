package user

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailTaken       = errors.New("an account with this email already exists")
	ErrNotDemoAccount   = errors.New("email is not a demo account")
	ErrNoLinkedEmployee = errors.New("user has no linked employee record")
)
