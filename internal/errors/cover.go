package errors

import (
	"errors"
	"fmt"
)

// CoverSourceError represents a cover source file that is unreadable or not
// a decodable image.
type CoverSourceError struct {
	Path   string
	Reason string
}

func (e *CoverSourceError) Error() string {
	return fmt.Sprintf("cover source %s: %s", e.Path, e.Reason)
}

// NewCoverSourceError creates a CoverSourceError for the given source path.
func NewCoverSourceError(path, reason string) *CoverSourceError {
	return &CoverSourceError{Path: path, Reason: reason}
}

// IsCoverSourceError reports whether err is a CoverSourceError (even when wrapped).
func IsCoverSourceError(err error) bool {
	var cErr *CoverSourceError
	return errors.As(err, &cErr)
}
