package errors

import (
	"errors"
	"fmt"
	"strings"
	"syscall"
)

// Error codes for categorizing errors
const (
	ErrDisplay = "DISPLAY"
	ErrIO      = "IO"
	ErrErrno   = "ERRNO"
	ErrMessage = "MESSAGE"
	ErrConfig  = "CONFIG"
	ErrLock    = "LOCK"
)

// Error represents a structured error with code, message, suggestion, and optional cause.
// Rendered as:
//
//	✗ <What failed>
//
//	  <Why it failed - technical details>
//
//	  <How to fix it - actionable steps>
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New creates a new structured error with the given code, message, and suggestion.
func New(code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// Messagef creates a MESSAGE error for domain failures that have no underlying cause,
// such as a missing hostname or a load sample that was never started.
func Messagef(format string, args ...interface{}) *Error {
	return &Error{
		Code:    ErrMessage,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an existing error with a message, defaulting to ErrIO code.
func Wrap(err error, message string) *Error {
	return &Error{
		Code:    ErrIO,
		Message: message,
		Cause:   err,
	}
}

// WrapWithCode wraps an existing error with a specific code, message, and suggestion.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		Cause:      err,
	}
}

// FromOS wraps an error returned by a syscall or the os package.
// Raw errnos get ErrErrno, everything else ErrIO.
func FromOS(err error, message string) *Error {
	code := ErrIO
	var errno syscall.Errno
	if errors.As(err, &errno) {
		code = ErrErrno
	}
	return &Error{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Display wraps a failure reported by the display transport.
func Display(err error, message string) *Error {
	return &Error{
		Code:    ErrDisplay,
		Message: message,
		Cause:   err,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("✗ %s\n", e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Cause.Error()))
	}

	if e.Suggestion != "" {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Suggestion))
	}

	return b.String()
}

// Short returns a single-line form suitable for log attributes.
func (e *Error) Short() string {
	if e.Cause != nil {
		return e.Message + ": " + OneLine(e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode checks if an error is a structured Error with the given code.
func IsCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var psErr *Error
	if errors.As(err, &psErr) {
		return psErr.Code == code
	}
	return false
}

// OneLine flattens any error into a single line for logging.
func OneLine(err error) string {
	if err == nil {
		return ""
	}
	var psErr *Error
	if errors.As(err, &psErr) {
		return psErr.Short()
	}
	return err.Error()
}
