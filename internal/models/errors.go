package models

import "errors"

// Sentinel errors returned by repositories and services. Handlers map these
// to HTTP statuses: ErrNotFound -> 404, ErrConflict -> 409.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")
)

// ValidationError reports a malformed or missing field supplied by the caller
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
