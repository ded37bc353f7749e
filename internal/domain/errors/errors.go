package errors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrClientNotFound = errors.New("client not found")
	ErrClientInUse    = errors.New("client has existing orders")
	ErrValidation     = errors.New("validation failed")
	ErrInvalidToken   = errors.New("invalid auth token")
)

// Validationf wraps ErrValidation with field level detail.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// PromoteError reports which staged file broke an attachment batch.
type PromoteError struct {
	File string
	Err  error
}

func (e *PromoteError) Error() string {
	return fmt.Sprintf("promote attachment %q: %v", e.File, e.Err)
}

func (e *PromoteError) Unwrap() error {
	return e.Err
}
