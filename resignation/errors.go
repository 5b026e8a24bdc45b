package resignation

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned by Store.Latest when no record exists.
	ErrNotFound = errors.New("resignation not found")

	// ErrValidation is returned when an Input is rejected.
	ErrValidation = errors.New("invalid resignation")
)

// FieldError describes one rejected field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every rejected field of an Input.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "invalid resignation: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
