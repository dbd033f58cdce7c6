package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/swimlane/internal/app"
	"github.com/thenoetrevino/swimlane/internal/kanban"
	boardservice "github.com/thenoetrevino/swimlane/internal/services/board"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Card not found, column not found, or an unknown drop target.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: A stored board that breaks the one-column-per-card rule.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty titles, names too long, non-empty column deletion,
	// or a drop that was refused.
	ExitValidation = 5
)

// CodedError carries the process exit code for a failed command
type CodedError struct {
	Code int
	Err  error
}

func (e *CodedError) Error() string {
	return e.Err.Error()
}

func (e *CodedError) Unwrap() error {
	return e.Err
}

// Exit wraps err with an explicit exit code
func Exit(code int, err error) error {
	return &CodedError{Code: code, Err: err}
}

// ExitCode maps an error returned by a command to its exit code
func ExitCode(err error) int {
	var exitErr *CodedError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &exitErr):
		return exitErr.Code
	case errors.Is(err, boardservice.ErrCardNotFound),
		errors.Is(err, boardservice.ErrColumnNotFound),
		errors.Is(err, kanban.ErrColumnNotFound),
		errors.Is(err, app.ErrUnknownID):
		return ExitNotFound
	case errors.Is(err, boardservice.ErrEmptyTitle),
		errors.Is(err, boardservice.ErrTitleTooLong),
		errors.Is(err, boardservice.ErrNameTooLong),
		errors.Is(err, boardservice.ErrInvalidColumnID),
		errors.Is(err, boardservice.ErrColumnExists),
		errors.Is(err, boardservice.ErrColumnNotEmpty),
		errors.Is(err, kanban.ErrDuplicateColumn),
		errors.Is(err, kanban.ErrInvalidColumnID),
		errors.Is(err, app.ErrNotCommitted):
		return ExitValidation
	default:
		return ExitError
	}
}

// ErrorCode returns the machine readable code printed for err
func ErrorCode(err error) string {
	switch ExitCode(err) {
	case ExitNotFound:
		return "NOT_FOUND"
	case ExitValidation:
		return "VALIDATION_ERROR"
	case ExitDataErr:
		return "DATA_ERROR"
	case ExitUsage:
		return "USAGE_ERROR"
	default:
		return "ERROR"
	}
}

// Fail reports err through the formatter and returns it with its exit code
func Fail(formatter *OutputFormatter, err error) error {
	if fmtErr := formatter.Error(ErrorCode(err), err.Error()); fmtErr != nil {
		return fmt.Errorf("%w (output failed: %v)", err, fmtErr)
	}
	return Exit(ExitCode(err), err)
}
