package session

import "errors"

var (
	// ErrTokenInvalid is returned when no session exists for the username or
	// the session has expired (and was evicted).
	ErrTokenInvalid = errors.New("token invalid")

	// ErrInvalidCredentials is returned on a hash or password mismatch.
	// The stored session, if any, is left untouched.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound is returned when the username cannot be resolved to an
	// identity id.
	ErrUserNotFound = errors.New("user not found")

	// ErrConfig is returned for invalid configuration.
	ErrConfig = errors.New("invalid config")
)
