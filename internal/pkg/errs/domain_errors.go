package errs

import "errors"

// Sentinel errors shared across usecase layers
var (
	// Session lookup errors. ErrSessionExpired is reported with its own
	// diagnostic code so callers can tell a reaped session from one that
	// never existed, even though both surface as not-found.
	ErrSessionNotFound = errors.New("checkout session not found")
	ErrSessionExpired  = errors.New("checkout session expired")

	// Input errors
	ErrInvalidRequest = errors.New("invalid checkout request")

	// Lifecycle errors
	ErrSessionCompleted = errors.New("checkout session already completed")
)
