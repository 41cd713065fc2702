package models

import (
	"errors"
	"fmt"
)

var (
	ErrMissingToken           = errors.New("missing authentication token")
	ErrAuthenticationRejected = errors.New("authentication rejected")
	ErrNotFound               = errors.New("record not found")
	ErrValidation             = errors.New("validation failed")
	ErrConflict               = errors.New("record was modified concurrently")
	ErrUserExists             = errors.New("user with this pid already exists")
)

// ErrEntryNotFound is returned when no entry of a thread has the requested timestamp.
var ErrEntryNotFound = fmt.Errorf("%w: note entry", ErrNotFound)

// Category maps err to the category reported to HTTP clients. Request
// problems are WebError, token problems SecurityError, store outcomes
// ModelError.
func Category(err error) string {
	switch {
	case errors.Is(err, ErrMissingToken), errors.Is(err, ErrValidation):
		return CategoryWeb
	case errors.Is(err, ErrAuthenticationRejected):
		return CategorySecurity
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrConflict), errors.Is(err, ErrUserExists):
		return CategoryModel
	case errors.As(err, new(*StoreError)):
		return CategoryModel
	default:
		return CategoryUnknown
	}
}

// StoreError marks a failure reported by the database for a data operation.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
