package store

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned when a store is asked for a serialization
// format it does not implement.
var ErrUnsupportedFormat = errors.New("store: unsupported serialization format")

// FormatError reports which serialization format a store refused.
type FormatError struct {
	format Format
}

// Error returns the error string.
func (e *FormatError) Error() string {
	return fmt.Sprintf("store: serialization to %s is not supported", e.format)
}

// Is reports whether the target error matches FormatError.
// This allows errors.Is(formatErr, ErrUnsupportedFormat) to return true.
func (e *FormatError) Is(err error) bool {
	return err == ErrUnsupportedFormat
}

// Format returns the refused serialization format.
func (e *FormatError) Format() Format {
	return e.format
}

// NewFormatError returns a new FormatError for the given format.
func NewFormatError(format Format) *FormatError {
	return &FormatError{format: format}
}

// IsUnsupportedFormat returns true if the error is a FormatError.
func IsUnsupportedFormat(err error) bool {
	if err == nil {
		return false
	}
	var e *FormatError
	return errors.As(err, &e) || errors.Is(err, ErrUnsupportedFormat)
}
