package errs

import (
	"errors"
	"fmt"
)

// Code is a suite error code.
type Code string

const (
	// AssertionMismatch means a verification observed rendered state that does
	// not match the expected condition. A behavioral failure of the
	// application under test.
	AssertionMismatch Code = "assertion_mismatch"
	// Timeout means an action or verification did not complete within its
	// bound window. Kept distinct from AssertionMismatch so infrastructure
	// flakiness triages separately from regressions.
	Timeout Code = "timeout"
	// UnknownRole means the data factory was asked for a role it does not
	// know. A programming error in the scenario, raised before any browser
	// interaction.
	UnknownRole Code = "unknown_role"
	// ScreenshotCapture marks a failed artifact capture. Always logged and
	// swallowed, never propagated to a scenario.
	ScreenshotCapture Code = "screenshot_capture"
	Internal          Code = "internal"
)

// Error is a coded suite error.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Code)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a coded error with message.
func New(code Code, message string) error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a coded error with message and cause.
func Wrap(code Code, message string, cause error) error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     cause,
	}
}

// Mismatch creates an AssertionMismatch naming the expected and observed
// condition. Every verification failure goes through here so messages stay
// uniform across page objects.
func Mismatch(subject, expected, observed string) error {
	return &Error{
		Code:    AssertionMismatch,
		Message: fmt.Sprintf("%s: expected %s, observed %s", subject, expected, observed),
	}
}

// CodeOf returns the error code, defaulting to internal.
func CodeOf(err error) Code {
	if err == nil {
		return Internal
	}
	var coded *Error
	if errors.As(err, &coded) {
		if coded.Code == "" {
			return Internal
		}
		return coded.Code
	}
	return Internal
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code Code) bool {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code == code
	}
	return false
}

// MessageOf returns the coded message, or a generic fallback for untyped errors.
func MessageOf(err error) string {
	if err == nil {
		return string(Internal)
	}
	var coded *Error
	if errors.As(err, &coded) && coded.Message != "" {
		return coded.Message
	}
	return "internal error"
}
