package fir

import (
	"errors"
	"fmt"
)

// ErrForbidden is returned when the acting user's role does not permit
// the requested mutation.
var ErrForbidden = errors.New("role not permitted to perform this action")

// ValidationError reports missing or invalid input on a create or
// status-update call. It is recoverable; the store is left untouched.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalidField(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
