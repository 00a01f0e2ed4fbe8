package service

import "errors"

// ErrNotFound covers both a genuinely missing record and a record owned
// by someone else. Callers cannot tell the two apart, so one user can
// never probe for the existence of another user's data.
var ErrNotFound = errors.New("record not found")

// ValidationError reports malformed input. It is always raised before
// any storage access.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
