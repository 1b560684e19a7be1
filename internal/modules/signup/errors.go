package signup

import (
	"errors"
	"fmt"
)

var (
	// ErrEmailAlreadyRegistered is the conflict outcome of the
	// duplicate check: terminal for the attempt, the user has to change
	// the address rather than retry.
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// ErrCheckUnavailable wraps repository failures during the
	// duplicate check or insert. Retryable by the user; the workflow
	// never advances on it.
	ErrCheckUnavailable = errors.New("signup storage unavailable")

	ErrInvalidVariant    = errors.New("unknown signup variant")
	ErrSubmitInProgress  = errors.New("a submission is already in flight")
	ErrInvalidTransition = errors.New("transition not allowed from current page")
	ErrSessionNotFound   = errors.New("signup session not found")
)

// FieldErrors maps field names to human-readable messages. A page
// transition is permitted only when the map is empty for that page's
// required fields.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	return fmt.Sprintf("validation failed: %v", map[string]string(e))
}
