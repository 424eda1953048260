// Package server provides the HTTP REST API for the interview agent.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrInvalidCredentials indicates a wrong reviewer passphrase
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid passphrase"
}

// ErrNotFound indicates a requested resource does not exist
type ErrNotFound struct {
	Resource string
	ID       uuid.UUID
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrUpstream indicates the completion service failed or returned garbage.
// The client's degraded path is collecting the data from the user instead.
type ErrUpstream struct {
	Cause error
}

func (e *ErrUpstream) Error() string {
	return fmt.Sprintf("completion service failed: %v", e.Cause)
}

func (e *ErrUpstream) Unwrap() error { return e.Cause }

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrInvalidCredentials:
		return http.StatusUnauthorized
	case *ErrNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
