// Package errors provides the coded error taxonomy shared by the placement
// engine, the window-manager session and the CLI.
//
// Every failure that reaches the top of a command carries a Code. The CLI
// maps codes to process exit codes with ExitCode:
//
//	err := errors.New(errors.ErrCodeUnknownOutput, "output %q is not active", name)
//	if errors.Is(err, errors.ErrCodeUnknownOutput) {
//	    // precondition violated by the current session state
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

const (
	// Window manager unreachable.
	ErrCodeConnection Code = "CONNECTION"

	// Session state preconditions.
	ErrCodeNoActiveOutputs      Code = "NO_ACTIVE_OUTPUTS"
	ErrCodeUnknownOutput        Code = "UNKNOWN_OUTPUT"
	ErrCodeNoWorkspacesOnOutput Code = "NO_WORKSPACES_ON_OUTPUT"
	ErrCodeNoFocusedWorkspace   Code = "NO_FOCUSED_WORKSPACE"
	ErrCodeNoNeighborOutput     Code = "NO_NEIGHBOR_OUTPUT"

	// A command sent to the window manager was rejected.
	ErrCodeCommandRejected Code = "COMMAND_REJECTED"

	// Bad argument, flag or config value.
	ErrCodeInvalidInput Code = "INVALID_INPUT"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// CommandError reports a window-manager command that was rejected.
// Applied is the number of commands of the same plan that had already
// been executed; those are not rolled back.
type CommandError struct {
	Command string
	Reason  string
	Applied int
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command %q rejected", e.Command)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Applied > 0 {
		msg += fmt.Sprintf(" (%d earlier command(s) already applied)", e.Applied)
	}
	return msg
}

// Code returns the error code for this error type.
func (e *CommandError) Code() Code {
	return ErrCodeCommandRejected
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error or *CommandError.
func Is(err error, code Code) bool {
	return GetCode(err) == code
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the chain holds no coded error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var ce *CommandError
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// ExitCode maps an error to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch GetCode(err) {
	case ErrCodeConnection:
		return 2
	case ErrCodeNoActiveOutputs, ErrCodeUnknownOutput, ErrCodeNoWorkspacesOnOutput,
		ErrCodeNoFocusedWorkspace, ErrCodeNoNeighborOutput:
		return 3
	case ErrCodeCommandRejected:
		return 4
	default:
		return 1
	}
}
