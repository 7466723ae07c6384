package client

import (
	"fmt"
	"strings"
)

// Issue is one field-level validation problem.
type Issue struct {
	Path    string
	Message string
}

// ValidationError enumerates the issues found while checking a payload
// against its declared shape.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, i := range e.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", i.Path, i.Message))
	}
	return strings.Join(parts, ", ")
}

// RequestShapeError means the outgoing payload failed validation. No
// network call was made.
type RequestShapeError struct{ *ValidationError }

func (e *RequestShapeError) Unwrap() error { return e.ValidationError }

// ResponseShapeError means the network call succeeded but the response
// body did not match its declared shape.
type ResponseShapeError struct{ *ValidationError }

func (e *ResponseShapeError) Unwrap() error { return e.ValidationError }

// BusinessError is an HTTP 2xx response whose envelope carried
// success=false.
type BusinessError struct{ Message string }

func (e *BusinessError) Error() string { return e.Message }

// TransportError is a non-2xx response or a network-level failure.
type TransportError struct {
	Status  int // 0 when the request never completed
	Message string
}

func (e *TransportError) Error() string { return e.Message }

// AuthError is an HTTP 401. By the time the caller sees it the session has
// already been torn down.
type AuthError struct{ Message string }

func (e *AuthError) Error() string { return e.Message }
