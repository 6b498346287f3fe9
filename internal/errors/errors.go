package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	"irspec/domain/core"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   err,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// GetCode returns the error code if it's an AppError, otherwise returns "UNKNOWN"
func GetCode(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return "UNKNOWN"
}

// Predefined error codes
const (
	CodeConfigInvalid       = "CONFIG_INVALID"
	CodeNotFound            = "NOT_FOUND"
	CodeInternalError       = "INTERNAL_ERROR"
	CodeInvalidInput        = "INVALID_INPUT"
	CodeUnsupportedFileType = "UNSUPPORTED_FILE_TYPE"
	CodeOutOfRange          = "OUT_OF_RANGE"
	CodeResolutionTooHigh   = "RESOLUTION_TOO_HIGH"
)

// SupportedExtensions lists the file types the loader accepts, in display order.
var SupportedExtensions = []string{".csv", ".tsv", ".txt", ".xlsx"}

// Common error constructors
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func NotFound(resource string) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: resource,
		Cause:   core.ErrNotFound,
	}
}

func InvalidInput(message string) *AppError {
	return &AppError{
		Code:    CodeInvalidInput,
		Message: message,
		Cause:   core.ErrInvalidArgument,
	}
}

func InvalidInputf(format string, args ...interface{}) *AppError {
	return InvalidInput(fmt.Sprintf(format, args...))
}

// UnsupportedFileType reports an extension the loader cannot read.
func UnsupportedFileType(ext string) *AppError {
	quoted := make([]string, len(SupportedExtensions))
	for i, e := range SupportedExtensions {
		quoted[i] = "'" + e + "'"
	}
	list := strings.Join(quoted[:len(quoted)-1], ", ") + ", and " + quoted[len(quoted)-1]
	return &AppError{
		Code:    CodeUnsupportedFileType,
		Message: fmt.Sprintf("file type %q: current supported filetypes are: %s", ext, list),
		Cause:   core.ErrUnsupportedFileType,
	}
}

func OutOfRange(message string) *AppError {
	return &AppError{
		Code:    CodeOutOfRange,
		Message: message,
		Cause:   core.ErrOutOfRange,
	}
}

func ResolutionTooHigh(message string) *AppError {
	return &AppError{
		Code:    CodeResolutionTooHigh,
		Message: message,
		Cause:   core.ErrResolutionTooHigh,
	}
}
