// Package apperrors defines the error taxonomy of the trip core. Every error
// leaving a usecase is one of these kinds so handlers and callers can react
// without string matching.
package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an error
type Kind string

const (
	KindNotFound      Kind = "not_found"      // entity absent
	KindValidation    Kind = "validation"     // malformed or out-of-range input
	KindAuthorization Kind = "authorization"  // actor lacks permission
	KindState         Kind = "state"          // operation invalid for current lifecycle state
	KindCapacity      Kind = "capacity"       // would violate the seat invariant
	KindConflict      Kind = "conflict"       // concurrent write collision, retryable
	KindTimeout       Kind = "timeout"        // collaborator deadline exceeded
	KindUnavailable   Kind = "unavailable"    // collaborator unreachable
	KindInternal      Kind = "internal"       // anything else
)

// Error is a kinded application error
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is makes errors.Is match on kind
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

// New creates an error of the given kind
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates an error of the given kind preserving the cause
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// NotFound creates a not-found error
func NotFound(message string) *Error { return New(KindNotFound, message) }

// Validation creates a validation error
func Validation(message string) *Error { return New(KindValidation, message) }

// Authorization creates an authorization error
func Authorization(message string) *Error { return New(KindAuthorization, message) }

// State creates a lifecycle-state error
func State(message string) *Error { return New(KindState, message) }

// Capacity creates a seat-capacity error
func Capacity(message string) *Error { return New(KindCapacity, message) }

// Conflict creates a concurrent-write conflict error
func Conflict(message string) *Error { return New(KindConflict, message) }

// Timeout creates a collaborator timeout error
func Timeout(message string, err error) *Error { return Wrap(KindTimeout, message, err) }

// Unavailable creates a collaborator unreachable error
func Unavailable(message string, err error) *Error { return Wrap(KindUnavailable, message, err) }

// Internal wraps an unclassified error
func Internal(message string, err error) *Error { return Wrap(KindInternal, message, err) }

// KindOf returns the kind of err, or KindInternal for unclassified errors
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
