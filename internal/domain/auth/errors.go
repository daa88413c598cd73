package auth

import "errors"

var ErrInvalidCredentials = errors.New("invalid email, password or role")
