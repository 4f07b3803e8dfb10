package auth

import "errors"

// ErrInvalidCredentials is returned when no account matches the login
var ErrInvalidCredentials = errors.New("invalid credentials")
