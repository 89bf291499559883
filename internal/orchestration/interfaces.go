package orchestration

import (
	"io"
	"time"

	"github.com/agbru/dhcalc/internal/bigint"
)

// EvaluationResult is the outcome of one request on one engine. It is the
// shared domain type between orchestration and presentation layers.
type EvaluationResult struct {
	// Engine is the engine that evaluated the request.
	Engine bigint.EngineName
	// Result holds the value, or the order for compare. Zero if Err is set.
	Result bigint.Result
	// Duration is the wall-clock time of the evaluation.
	Duration time.Duration
	// Err contains any error that occurred during the evaluation.
	Err error
}

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	Op         string
	Operands   []string
	OutputBase int
	Verbose    bool
	Quiet      bool
}

// ProgressReporter displays activity while evaluations run. It decouples the
// orchestration layer from spinners and other terminal effects.
type ProgressReporter interface {
	// Begin starts displaying progress for label and returns a function that
	// stops it. The stop function must be safe to call once.
	Begin(label string, out io.Writer) (stop func())
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(label string, out io.Writer) func()

// Begin calls the underlying function.
func (f ProgressReporterFunc) Begin(label string, out io.Writer) func() { return f(label, out) }

// NullProgressReporter displays nothing. Useful for quiet mode or testing.
type NullProgressReporter struct{}

// Begin returns a no-op stop function.
func (NullProgressReporter) Begin(string, io.Writer) func() { return func() {} }

// ResultPresenter defines the interface for presenting evaluation results,
// allowing different output formats without modifying the orchestration
// logic.
type ResultPresenter interface {
	// PresentComparisonTable displays the per-engine comparison summary.
	PresentComparisonTable(results []EvaluationResult, opts PresentationOptions, out io.Writer)

	// PresentResult displays the final result.
	PresentResult(result EvaluationResult, opts PresentationOptions, out io.Writer)
}

// ErrorHandler handles evaluation errors and returns exit codes.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}
