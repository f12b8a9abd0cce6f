package domain

import "errors"

// Sentinel errors surfaced by services and translated to HTTP status codes
// by the API error handler.
var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password so a caller cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrDuplicateUsername = errors.New("username is already taken")
	ErrDuplicateEmail    = errors.New("email is already registered")

	ErrUserNotFound  = errors.New("user not found")
	ErrIssueNotFound = errors.New("issue not found")

	ErrForbidden       = errors.New("access forbidden")
	ErrUnauthenticated = errors.New("authentication required")

	ErrTooManyAttempts = errors.New("too many login attempts, try again later")

	ErrInvalidStatus = errors.New("invalid issue status")
)
