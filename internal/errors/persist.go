package errors

import (
	"errors"
	"fmt"
)

// PersistError represents a write that could not complete: a failed save,
// copy, or export. The in-memory state is unchanged when one is returned.
type PersistError struct {
	Op   string
	Path string
	Err  error
}

func (e *PersistError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s %s failed", e.Op, e.Path)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}

// NewPersistError creates a PersistError for the given operation and path.
func NewPersistError(op, path string, err error) *PersistError {
	return &PersistError{Op: op, Path: path, Err: err}
}

// IsPersistError reports whether err is a PersistError (even when wrapped).
func IsPersistError(err error) bool {
	var pErr *PersistError
	return errors.As(err, &pErr)
}
