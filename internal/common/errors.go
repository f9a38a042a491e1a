// Package common defines the sentinel errors shared by the store, the
// service layer and the gRPC boundary. Callers should use errors.Is to
// match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Validation errors (create/update payloads, pagination parameters).
	ErrorInvalidData = errors.New("invalid data")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")
)

// DataError carries a human-readable validation reason and matches
// ErrorInvalidData.
type DataError struct {
	Reason string
}

func (e *DataError) Error() string { return e.Reason }

func (e *DataError) Unwrap() error { return ErrorInvalidData }

// NotFoundError reports a missing user record and matches ErrorNotFound.
type NotFoundError struct {
	ID uint64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("User not found with id: %d", e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrorNotFound }

// NewInvalidDataError returns an error that matches ErrorInvalidData and
// whose message is exactly reason.
func NewInvalidDataError(reason string) error {
	return &DataError{Reason: reason}
}

// NewNotFoundError returns an error that matches ErrorNotFound.
func NewNotFoundError(id uint64) error {
	return &NotFoundError{ID: id}
}
