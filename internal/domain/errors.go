package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument signals a request that failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrTitleNotFound signals a title missing from the catalog.
	ErrTitleNotFound = errors.New("title not found")
	// ErrArtifactStale signals an embedding artifact that does not match the live catalog.
	ErrArtifactStale = errors.New("embedding artifact stale")
	// ErrEncoderUnavailable signals a query encoder that cannot serve requests.
	ErrEncoderUnavailable = errors.New("query encoder unavailable")
	// ErrProviderFailed signals a content provider transport or API failure.
	ErrProviderFailed = errors.New("provider failed")
	// ErrInvalidInsight signals provider output that failed schema validation.
	ErrInvalidInsight = errors.New("insight failed validation")
)

// FieldError wraps ErrInvalidArgument with the name of the offending field.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidArgument.Error(), e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error { return ErrInvalidArgument }

// NewFieldError creates a validation error for a single request field.
func NewFieldError(field, reason string) error {
	return &FieldError{Field: field, Reason: reason}
}
