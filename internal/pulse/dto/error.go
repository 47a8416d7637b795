package dto

import (
	"errors"
	"fmt"
)

// ErrorResponse represents a generic error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrOverlordNotFound is returned when a requested key is not a configured overlord.
var ErrOverlordNotFound = errors.New("overlord not found")

// ErrRunInProgress is returned by the trigger surfaces when another run holds the lock.
var ErrRunInProgress = errors.New("a pulse run is already in progress")

// SourceUnavailableError is returned when an article source responds with a
// non-2xx status. It carries the status and body for diagnostics.
type SourceUnavailableError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("news source error %d: %s", e.StatusCode, e.Body)
}
