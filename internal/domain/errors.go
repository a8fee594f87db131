package domain

import "errors"

// Domain errors
var (
	ErrProfileNotFound   = errors.New("profile not found")
	ErrProfileExists     = errors.New("profile already exists")
	ErrUnsupportedFormat = errors.New("unsupported document format")
	ErrSubjectIDMismatch = errors.New("subject id mismatch")
)

// ValidationError represents a validation error with field and message information.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}
