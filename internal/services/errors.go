package services

import (
	"errors"
	"fmt"

	"github.com/kairosml/kairos-go/internal/models"
)

// ValidationError describes a client-caused request defect detected before
// any backend runs. The detail names the offending field and the expected
// versus actual shape so the caller can fix the request without guessing.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string {
	return e.Detail
}

// NewValidationError builds a ValidationError from a format string.
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Detail: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err is, or wraps, a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// EngineError is an opaque backend fitting or prediction failure. The
// underlying message is captured verbatim and never parsed; it is surfaced to
// the caller as a generic forecast failure and never retried.
type EngineError struct {
	Model models.ModelName
	Err   error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("forecast failed for model %s: %v", e.Model, e.Err)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}
