package backend

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork means the request never got a response from the backend
	ErrNetwork = errors.New("backend unreachable")
	// ErrBadStatus means the backend answered with a non-2xx status
	ErrBadStatus = errors.New("backend returned non-success status")
	// ErrMalformedBody means the response body did not have the expected JSON shape
	ErrMalformedBody = errors.New("backend returned malformed body")
	// ErrCircuitOpen is joined with ErrNetwork while the circuit breaker rejects calls
	ErrCircuitOpen = errors.New("backend circuit breaker is open")
)

// StatusError is returned for non-2xx responses and keeps the backend's own
// message when the body carried one.
type StatusError struct {
	Operation  string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: backend returned status %d: %s", e.Operation, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: backend returned status %d", e.Operation, e.StatusCode)
}

func (e *StatusError) Unwrap() error {
	return ErrBadStatus
}

// BackendMessage extracts the backend-supplied message from err, if any
func BackendMessage(err error) (string, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.Message != "" {
		return statusErr.Message, true
	}
	return "", false
}

// IsNotFound reports whether err is a 404 from the backend
func IsNotFound(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == 404
}
