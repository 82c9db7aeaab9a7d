package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
// Implementing this interface lets the handler layer translate domain
// failures without switching on concrete types.
type HTTPError interface {
	error
	StatusCode() int
}

// Domain error types implementing HTTPError interface
type (
	// NotFoundError indicates a resource was not found
	NotFoundError struct {
		Message string
	}

	// ValidationError indicates invalid input
	ValidationError struct {
		Message string
	}

	// UnauthorizedError indicates authentication failure
	UnauthorizedError struct {
		Message string
	}
)

func (e *NotFoundError) Error() string     { return e.Message }
func (e *ValidationError) Error() string   { return e.Message }
func (e *UnauthorizedError) Error() string { return e.Message }

func (e *NotFoundError) StatusCode() int     { return http.StatusNotFound }
func (e *ValidationError) StatusCode() int   { return http.StatusBadRequest }
func (e *UnauthorizedError) StatusCode() int { return http.StatusUnauthorized }

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrValidation      = errors.New("validation failed")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrCapExceeded     = errors.New("folder limit reached")
	ErrInvalidPosition = errors.New("invalid position")
)

// CapacityError reports a rejected create because the owner already
// holds the maximum number of live folders. Count and Limit are
// surfaced so the client can show the user what to free up.
type CapacityError struct {
	Count int // live folders the owner currently has
	Limit int // configured per-owner maximum
}

// Error implements the error interface
func (e *CapacityError) Error() string {
	return fmt.Sprintf("folder limit reached (%d of %d in use)", e.Count, e.Limit)
}

// StatusCode implements the HTTPError interface
func (e *CapacityError) StatusCode() int {
	return http.StatusBadRequest
}

// Is allows errors.Is() to match against ErrCapExceeded
func (e *CapacityError) Is(target error) bool {
	return target == ErrCapExceeded
}

// PositionError reports a move target outside the valid dense range
// [0, Count) of the owner's live folders.
type PositionError struct {
	Requested int
	Count     int // live folder count, exclusive upper bound of the valid range
}

// Error implements the error interface
func (e *PositionError) Error() string {
	return fmt.Sprintf("position %d outside valid range [0, %d)", e.Requested, e.Count)
}

// StatusCode implements the HTTPError interface
func (e *PositionError) StatusCode() int {
	return http.StatusBadRequest
}

// Is allows errors.Is() to match against ErrInvalidPosition
func (e *PositionError) Is(target error) bool {
	return target == ErrInvalidPosition
}
