package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrTimeout marks a request that ran past its deadline.
	ErrTimeout = errors.New("backend_timeout")
	// ErrUnavailable marks transport-level failures (refused, DNS, reset).
	ErrUnavailable = errors.New("backend_unavailable")
	// ErrNotFound is matched by errors.Is against 404 StatusErrors.
	ErrNotFound = errors.New("resource_not_found")
)

// StatusError is a backend-reported failure: the request reached the server
// and the body came back with success:false. Message carries the backend's
// text verbatim so callers can surface it.
type StatusError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend error [%d] %s: %s", e.StatusCode, e.Code, e.Message)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}
