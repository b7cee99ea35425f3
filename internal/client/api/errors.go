package api

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSession means no credential is stored; the call was never sent.
	ErrNoSession = errors.New("no session")

	// ErrSessionExpired means the server rejected the credential. The session
	// has already been cleared by the time callers see this error.
	ErrSessionExpired = errors.New("session expired")

	// ErrUnavailable means no response arrived at all.
	ErrUnavailable = errors.New("server unavailable")
)

// RequestError is a reachable-server, non-success response carrying the
// application-level message from the {"message": ...} error body, if any.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// Message returns the server-provided message for err, or fallback when the
// server sent none. Screens own their fallback copy; the executor does not.
func Message(err error, fallback string) string {
	var re *RequestError
	if errors.As(err, &re) && re.Message != "" {
		return re.Message
	}
	return fallback
}
