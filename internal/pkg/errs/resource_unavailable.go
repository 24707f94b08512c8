package errs

import (
	"errors"
	"fmt"
)

// ErrResourceUnavailable is the sentinel for collaborating services that are unreachable
// or answered with data that could not be used.
var ErrResourceUnavailable = errors.New("resource unavailable")

// ResourceUnavailableError names the collaborator that failed.
type ResourceUnavailableError struct {
	Resource string
	Cause    error
}

// NewResourceUnavailableError creates a ResourceUnavailableError for the given collaborator.
func NewResourceUnavailableError(resource string) *ResourceUnavailableError {
	return &ResourceUnavailableError{Resource: resource}
}

// NewResourceUnavailableErrorWithCause creates a ResourceUnavailableError carrying the underlying cause.
func NewResourceUnavailableErrorWithCause(resource string, cause error) *ResourceUnavailableError {
	return &ResourceUnavailableError{
		Resource: resource,
		Cause:    cause,
	}
}

func (e *ResourceUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrResourceUnavailable, e.Resource, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrResourceUnavailable, e.Resource)
}

func (e *ResourceUnavailableError) Unwrap() error {
	return ErrResourceUnavailable
}
