package mailer

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIKey means the provider credential is absent from the
	// environment. Handlers answer a generic 500; the detail stays in
	// server logs.
	ErrMissingAPIKey = errors.New("mail provider api key is not configured")

	// ErrDispatchFailed covers transport-level failures reaching the
	// provider. At most one attempt is made per invocation.
	ErrDispatchFailed = errors.New("mail dispatch failed")
)

// UpstreamError is a non-success response from the provider; its status
// is passed through to the caller.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("mail provider rejected request: status=%d message=%q", e.Status, e.Message)
}

// ValidationError reports missing or malformed payload fields for the
// requested kind.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid mail request: %v", e.Fields)
}
