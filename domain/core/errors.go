package core

import (
	"errors"
)

// Domain errors - centralized error definitions
var (
	ErrNotFound = errors.New("resource not found")

	// Ingestion errors
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrOutOfRange          = errors.New("wavenumbers out of range")
	ErrResolutionTooHigh   = errors.New("spectral resolution too high")
)

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError reports whether err came from input validation rather than I/O.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidArgument) ||
		errors.Is(err, ErrOutOfRange) ||
		errors.Is(err, ErrResolutionTooHigh)
}
