// Package exitcode defines the process exit codes shared by every command
// and an error type that carries the code a failure maps to. Handlers return
// these errors up the call chain; main prints the message and exits exactly
// once, so command logic never terminates the process itself.
package exitcode

import (
	"errors"
	"fmt"
)

const (
	// Success is the implicit zero exit of a completed command.
	Success = 0
	// InvalidInput covers everything rejected before a request is built:
	// bad flags, malformed dates, empty required lists.
	InvalidInput = 2
	// APIExpectedError covers status codes the API documents as a normal
	// negative outcome for an operation (not found, forbidden feature).
	APIExpectedError = 3
	// APIUnexpectedError covers contract mismatches between client and
	// server: transport failures, undocumented codes, malformed bodies.
	APIUnexpectedError = 4
)

// Error couples an operator-facing message with a process exit code.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Invalid reports input rejected before any network call.
func Invalid(message string) *Error {
	return &Error{Code: InvalidInput, Message: message}
}

// Invalidf is Invalid with formatting.
func Invalidf(format string, args ...any) *Error {
	return &Error{Code: InvalidInput, Message: fmt.Sprintf(format, args...)}
}

// Expected reports a documented negative API outcome.
func Expected(message string) *Error {
	return &Error{Code: APIExpectedError, Message: message}
}

// Expectedf is Expected with formatting.
func Expectedf(format string, args ...any) *Error {
	return &Error{Code: APIExpectedError, Message: fmt.Sprintf(format, args...)}
}

// Unexpected reports a client/API contract mismatch.
func Unexpected(message string) *Error {
	return &Error{Code: APIUnexpectedError, Message: message}
}

// Unexpectedf is Unexpected with formatting.
func Unexpectedf(format string, args ...any) *Error {
	return &Error{Code: APIUnexpectedError, Message: fmt.Sprintf(format, args...)}
}

// From resolves the exit code for an error reaching main. Errors without a
// code of their own come from the CLI layer (unknown commands, bad flags,
// missing required flags), so they count as invalid input.
func From(err error) int {
	if err == nil {
		return Success
	}
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	return InvalidInput
}
