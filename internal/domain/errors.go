package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrValidation signals malformed caller input.
	ErrValidation = errors.New("invalid input")
	// ErrConfiguration signals invalid polling or client parameters.
	ErrConfiguration = errors.New("invalid configuration")
	// ErrSubmission signals that the API rejected a search query.
	ErrSubmission = errors.New("search submission rejected")
	// ErrNotFound signals a missing remote resource.
	ErrNotFound = errors.New("not found")
	// ErrDatasetNotReady signals a dataset that does not accept searches yet.
	ErrDatasetNotReady = errors.New("dataset not ready")
)

// APIError carries a non-2xx response from the Visual Layer API.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("api error %d", e.StatusCode)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Detail)
}

// Unwrap maps well-known status codes onto sentinel errors
// so callers can use errors.Is without inspecting codes.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrDatasetNotReady
	default:
		return nil
	}
}
