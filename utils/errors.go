package utils

import (
	"errors"
	"fmt"
)

// ValidationError marks malformed or out-of-range input. The caller can
// recover by resubmitting corrected input; it is never retried here.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError marks a missing referenced entity.
type NotFoundError struct {
	Entity string
	ID     interface{}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Entity, e.ID)
}

func NewNotFoundError(entity string, id interface{}) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// InvalidStateError marks an operation forbidden by the entity's current status.
type InvalidStateError struct {
	Message string
}

func (e *InvalidStateError) Error() string { return e.Message }

func NewInvalidStateError(format string, args ...interface{}) *InvalidStateError {
	return &InvalidStateError{Message: fmt.Sprintf(format, args...)}
}

// ConflictError marks an invariant that would be broken by overlapping or
// concurrent state, e.g. a double reservation or an over-payment.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func NewConflictError(format string, args ...interface{}) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// PersistenceError wraps a store failure. It is surfaced as-is; retrying, if
// wanted at all, belongs to the caller.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func WrapPersistence(op string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Err: err}
}

// StatusCodeFor maps the error taxonomy to HTTP status codes.
func StatusCodeFor(err error) int {
	var (
		validationErr   *ValidationError
		notFoundErr     *NotFoundError
		invalidStateErr *InvalidStateError
		conflictErr     *ConflictError
	)
	switch {
	case errors.As(err, &notFoundErr):
		return 404
	case errors.As(err, &validationErr),
		errors.As(err, &invalidStateErr),
		errors.As(err, &conflictErr):
		return 422
	default:
		return 500
	}
}
