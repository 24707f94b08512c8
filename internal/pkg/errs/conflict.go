package errs

import (
	"errors"
	"fmt"
)

// ErrConflict is the sentinel for operations rejected by the current state of an object,
// e.g. a lifecycle transition attempted out of order.
var ErrConflict = errors.New("conflict")

// ConflictError names the object whose state rejected the operation and the reason.
type ConflictError struct {
	Subject string
	Reason  string
	Cause   error
}

// NewConflictError creates a ConflictError for the given subject and reason.
func NewConflictError(subject string, reason string) *ConflictError {
	return &ConflictError{
		Subject: subject,
		Reason:  reason,
	}
}

// NewConflictErrorWithCause creates a ConflictError carrying the underlying cause.
func NewConflictErrorWithCause(subject string, reason string, cause error) *ConflictError {
	return &ConflictError{
		Subject: subject,
		Reason:  reason,
		Cause:   cause,
	}
}

func (e *ConflictError) Error() string {
	msg := fmt.Sprintf("%s: %s: %s", ErrConflict, sanitize(e.Subject), sanitize(e.Reason))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
