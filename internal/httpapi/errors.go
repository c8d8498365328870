package httpapi

import (
	"errors"
	"fmt"
	"net/http"
)

// Common error types shared by handlers and the store.

// ValidationError represents a request validation error.
type ValidationError struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a new validation error.
func NewValidationError(message string, fields map[string]string) *ValidationError {
	return &ValidationError{
		Message: message,
		Fields:  fields,
	}
}

// NotFoundError represents a resource not found error.
type NotFoundError struct {
	Resource string `json:"resource"`
	ID       string `json:"id"`
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id '%s' not found", e.Resource, e.ID)
}

// NewNotFoundError creates a new not found error.
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		ID:       id,
	}
}

// ErrorResponse is the JSON error envelope: a human-readable message plus
// optional field-addressable details for validation failures.
type ErrorResponse struct {
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// ErrorMapper maps application errors to HTTP status codes and response bodies.
type ErrorMapper interface {
	MapError(err error) (statusCode int, response interface{})
}

// DefaultErrorMapper provides the default ErrorMapper implementation.
type DefaultErrorMapper struct{}

// MapError maps application errors to HTTP status codes and responses.
func (m *DefaultErrorMapper) MapError(err error) (int, interface{}) {
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return http.StatusBadRequest, ErrorResponse{
			Message: valErr.Message,
			Details: valErr.Fields,
		}
	}

	var nfErr *NotFoundError
	if errors.As(err, &nfErr) {
		return http.StatusNotFound, ErrorResponse{
			Message: nfErr.Error(),
		}
	}

	// Never expose internals to the client.
	return http.StatusInternalServerError, ErrorResponse{
		Message: "internal server error",
	}
}
