package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/akhenakh/kepler"
	"github.com/akhenakh/kepler/internal/api"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Domain violation or non-converged solve
	ExitCommandError = 2 // Bad arguments, unreadable files, invalid config
)

// Error codes reported in the JSON error envelope.
const (
	ErrCodeArgument = "E001"
	ErrCodeDomain   = "E002"
	ErrCodeInput    = "E003"
	ErrCodeServer   = "E004"
)

// ExitError carries the process exit code for an error.
type ExitError struct {
	Code     int    // ExitFailure or ExitCommandError
	Message  string // Error message
	Err      error  // Underlying error (optional)
	Reported bool   // Already written through the OutputFormatter
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// IsReported reports whether err was already written to the user by an
// OutputFormatter, so callers should not print it again.
func IsReported(err error) bool {
	var exitErr *ExitError
	return errors.As(err, &exitErr) && exitErr.Reported
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Diagnostics go here so JSON output stays clean
	Verbose   bool
}

// CLIResponse is the JSON envelope of every command.
type CLIResponse struct {
	Status string    `json:"status"` // "ok" or "error"
	Data   any       `json:"data,omitempty"`
	Error  *CLIError `json:"error,omitempty"`
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Success writes data. Text output relies on data's String method.
func (f *OutputFormatter) Success(data fmt.Stringer) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{Status: "ok", Data: data})
	}
	_, err := fmt.Fprint(f.Writer, data.String())
	return err
}

// Error writes an error in the configured format.
func (f *OutputFormatter) Error(code, message string) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error:  &CLIError{Code: code, Message: message},
		})
	}
	_, err := fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	return err
}

// VerboseLog writes to ErrWriter only in verbose mode.
func (f *OutputFormatter) VerboseLog(format string, args ...any) {
	if !f.Verbose {
		return
	}
	w := f.ErrWriter
	if w == nil {
		w = f.Writer
	}
	fmt.Fprintf(w, format+"\n", args...)
}

// fail reports err through the formatter and returns the matching ExitError.
// Domain violations exit with ExitFailure, everything else with
// ExitCommandError.
func (f *OutputFormatter) fail(err error) error {
	code, exit := ErrCodeArgument, ExitCommandError
	switch {
	case errors.Is(err, kepler.ErrOutOfRange), errors.Is(err, kepler.ErrNotFinite), errors.Is(err, api.ErrNotConverged):
		code, exit = ErrCodeDomain, ExitFailure
	case errors.Is(err, kepler.ErrInvalidElementSet):
		code = ErrCodeInput
	}
	return f.report(code, exit, "command failed", err)
}

// report writes err under code and returns an ExitError marked as reported.
func (f *OutputFormatter) report(code string, exit int, message string, err error) error {
	if werr := f.Error(code, err.Error()); werr != nil {
		return WrapExitError(ExitCommandError, "write output", werr)
	}
	return &ExitError{Code: exit, Message: message, Err: err, Reported: true}
}
