package errors

import (
	"errors"
	"fmt"
)

// MalformedError represents a file that exists but could not be parsed.
type MalformedError struct {
	Path string
	Err  error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed file %s: %v", e.Path, e.Err)
}

func (e *MalformedError) Unwrap() error {
	return e.Err
}

// NewMalformedError creates a MalformedError for the given path.
func NewMalformedError(path string, err error) *MalformedError {
	return &MalformedError{Path: path, Err: err}
}

// IsMalformedError reports whether err is a MalformedError (even when wrapped).
func IsMalformedError(err error) bool {
	var mErr *MalformedError
	return errors.As(err, &mErr)
}
