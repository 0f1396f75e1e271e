package errors

import "errors"

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrMissingToken          = errors.New("no token provided")
	ErrInvalidOrExpiredToken = errors.New("invalid or expired token")
	ErrForbidden             = errors.New("access denied")
	ErrUsernameTaken         = errors.New("username already taken")
	ErrStoreUnavailable      = errors.New("store unavailable")
)
