package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// ColorProvider supplies the ANSI sequences used when reporting errors.
// It keeps this package free of any dependency on the ui package.
type ColorProvider interface {
	Red() string
	Yellow() string
	Reset() string
}

// HandleCalculationError reports err on out and maps it to an exit code.
// A nil error maps to ExitSuccess and prints nothing.
//
// Parameters:
//   - err: The error returned by an evaluation.
//   - duration: Time spent before the failure; printed when non-zero.
//   - out: The writer for the report.
//   - colors: The color provider for highlighting.
//
// Returns:
//   - int: The exit code matching the error class.
func HandleCalculationError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}

	suffix := ""
	if duration > 0 {
		suffix = fmt.Sprintf(" after %s", duration)
	}

	var (
		timeoutErr TimeoutError
		configErr  ConfigError
	)
	switch {
	case errors.As(err, &timeoutErr) || errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintf(out, "%sStatus: Timeout%s. %v%s\n", colors.Yellow(), colors.Reset(), err, suffix)
		return ExitErrorTimeout
	case IsContextError(err):
		fmt.Fprintf(out, "%sStatus: Canceled%s%s.\n", colors.Yellow(), colors.Reset(), suffix)
		return ExitErrorCanceled
	case errors.As(err, &configErr):
		fmt.Fprintf(out, "%sConfiguration error:%s %v\n", colors.Red(), colors.Reset(), err)
		return ExitErrorConfig
	case IsInputError(err):
		fmt.Fprintf(out, "%sInvalid input:%s %v\n", colors.Red(), colors.Reset(), err)
		return ExitErrorInput
	default:
		fmt.Fprintf(out, "%sStatus: Failure%s. %v%s\n", colors.Red(), colors.Reset(), err, suffix)
		return ExitErrorGeneric
	}
}
