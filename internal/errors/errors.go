package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the operation timed out.
	ExitErrorMismatch = 3   // Indicates a result mismatch between engines.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorInput    = 5   // Indicates malformed operands or an invalid mathematical input.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// Sentinel causes carried by DomainError. Use errors.Is to test for them.
var (
	ErrDivisionByZero     = errors.New("division by zero")
	ErrNegativeExponent   = errors.New("negative exponent")
	ErrNonPositiveModulus = errors.New("modulus must be positive")
	ErrNegativeSquareRoot = errors.New("square root of a negative number")
	ErrExponentTooLarge   = errors.New("exponent does not fit in 64 bits")
)

// ConfigError represents a configuration error: invalid flags or values, or no
// requested or available arithmetic engine. It indicates that the application
// cannot proceed and is never retried.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
//
// Returns:
//   - string: The error message string.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
// It allows for the creation of configuration-specific errors with dynamic
// content.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// UnsupportedOperationError reports an operation name outside the fixed
// capability set. It always indicates a caller defect.
type UnsupportedOperationError struct {
	// Engine is the name of the engine bound to the facade.
	Engine string
	// Operation is the requested (rejected) operation name.
	Operation string
}

// Error returns a formatted message naming the engine and the operation.
func (e UnsupportedOperationError) Error() string {
	return fmt.Sprintf("invalid method call: %s engine does not support operation %q", e.Engine, e.Operation)
}

// ParseError reports malformed textual input to init, or an unsupported base.
type ParseError struct {
	// Input is the offending literal.
	Input string
	// Base is the base the literal was parsed in.
	Base int
	// Reason explains the failure.
	Reason string
}

// Error returns a formatted message describing the parse failure.
func (e ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q in base %d: %s", e.Input, e.Base, e.Reason)
}

// DomainError reports an invalid mathematical input such as a zero divisor or
// a negative square root operand. Cause is one of the package sentinels.
type DomainError struct {
	// Operation is the name of the operation that rejected its input.
	Operation string
	// Operand is the decimal form of the offending operand.
	Operand string
	// Cause is the sentinel describing the violated precondition.
	Cause error
}

// Error returns a formatted message with the operation and the operand.
func (e DomainError) Error() string {
	return fmt.Sprintf("%s: %v (operand %s)", e.Operation, e.Cause, e.Operand)
}

// Unwrap returns the sentinel cause.
func (e DomainError) Unwrap() error { return e.Cause }

// CalculationError encapsulates an engine failure while preserving the
// original cause. The comparison mode uses it to attribute errors to the
// engine that produced them.
type CalculationError struct {
	// Engine is the engine that failed. May be empty.
	Engine string
	// Cause is the underlying error that triggered this calculation error.
	Cause error
}

// Error returns the error message from the underlying cause, prefixed with
// the engine name when known.
//
// Returns:
//   - string: The error message string from the wrapped error.
func (e CalculationError) Error() string {
	if e.Engine == "" {
		return e.Cause.Error()
	}
	return e.Engine + ": " + e.Cause.Error()
}

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
//
// Returns:
//   - error: The underlying cause of the CalculationError.
func (e CalculationError) Unwrap() error { return e.Cause }

// TimeoutError represents an evaluation timeout. It captures the operation
// name and the duration limit that was exceeded.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
//
// Returns:
//   - string: The error message string.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
//
// Returns:
//   - string: The error message string.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is a context error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// IsInputError reports whether err stems from caller input: a parse failure,
// a domain violation, an unsupported operation or a validation failure.
func IsInputError(err error) bool {
	var (
		parseErr  ParseError
		domainErr DomainError
		opErr     UnsupportedOperationError
		valErr    ValidationError
	)
	return errors.As(err, &parseErr) || errors.As(err, &domainErr) ||
		errors.As(err, &opErr) || errors.As(err, &valErr)
}
