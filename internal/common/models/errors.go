package models

import (
	"errors"
	"fmt"
)

// ErrDuplicate is returned when a username or name collides with an
// existing record. The unique indexes catch races the pre-check misses.
var ErrDuplicate = errors.New("a record with that identifier already exists")

// ValidationError reports a required field that is missing or empty.
// A failed validation prevents the write entirely.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("required field %q is missing or empty", e.Field)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
