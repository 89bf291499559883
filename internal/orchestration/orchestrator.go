package orchestration

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/dhcalc/internal/bigint"
	apperrors "github.com/agbru/dhcalc/internal/errors"
)

// Request is one operation to evaluate, with its operands still in text form.
type Request struct {
	Op       string
	Operands []string
	// Base is the input base of the operands (0 or 2..36). For init, an
	// explicit second operand overrides it.
	Base int
	// MaxBits rejects oversized operands and pow results. Zero disables it.
	MaxBits int
	// Timeout bounds the evaluation. Zero means no limit beyond ctx.
	Timeout time.Duration
}

// EngineFactory builds a facade bound to the named engine.
type EngineFactory func(name bigint.EngineName) (*bigint.Math, error)

// EnginesToRun resolves the --engine selection against the available
// engines. "all" selects every available engine; an empty selection selects
// the first one. Any other name is returned as is so that the facade reports
// it as unknown or unavailable.
func EnginesToRun(selection string, available []bigint.EngineName) []bigint.EngineName {
	switch selection {
	case "all":
		return append([]bigint.EngineName(nil), available...)
	case "":
		if len(available) == 0 {
			return nil
		}
		return available[:1]
	default:
		return []bigint.EngineName{bigint.EngineName(selection)}
	}
}

// Evaluate parses the operands of req on m, applies the size guard and
// dispatches the operation by name. The operation itself cannot be
// interrupted; on timeout or cancellation Evaluate returns immediately and
// the result is discarded.
//
// Parameters:
//   - ctx: The context for cancellation.
//   - m: The facade to evaluate on.
//   - req: The request.
//
// Returns:
//   - bigint.Result: The operation result.
//   - error: A TimeoutError, a context error, a ValidationError from the size
//     guard, or the facade error unchanged.
func Evaluate(ctx context.Context, m *bigint.Math, req Request) (bigint.Result, error) {
	op, ok := bigint.ParseOp(req.Op)
	if !ok {
		return bigint.Result{}, apperrors.UnsupportedOperationError{Engine: string(m.Engine()), Operation: req.Op}
	}

	args, err := prepareArgs(m, op, req)
	if err != nil {
		return bigint.Result{}, err
	}

	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	type outcome struct {
		res bigint.Result
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		res, err := m.Invoke(string(op), args...)
		done <- outcome{res, err}
	}()

	select {
	case o := <-done:
		return o.res, o.err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) && req.Timeout > 0 {
			return bigint.Result{}, apperrors.TimeoutError{Operation: string(op), Limit: req.Timeout}
		}
		return bigint.Result{}, ctx.Err()
	}
}

func prepareArgs(m *bigint.Math, op bigint.Op, req Request) ([]any, error) {
	minArgs, maxArgs := op.Arity()
	if n := len(req.Operands); n < minArgs || n > maxArgs {
		// Invoke reports the arity error with its own message.
		args := make([]any, n)
		for i, s := range req.Operands {
			args[i] = s
		}
		return args, nil
	}

	if op == bigint.OpInit {
		return prepareInit(m, req)
	}

	args := make([]any, len(req.Operands))
	values := make([]bigint.Int, len(req.Operands))
	for i, s := range req.Operands {
		x, err := m.Init(s, req.Base)
		if err != nil {
			return nil, err
		}
		if err := checkOperandSize(i, x, req.MaxBits); err != nil {
			return nil, err
		}
		values[i] = x
		args[i] = x
	}

	if op == bigint.OpPow && req.MaxBits > 0 {
		if err := checkPowSize(values[0], values[1], req.MaxBits); err != nil {
			return nil, err
		}
	}
	return args, nil
}

// prepareInit applies the size guard to the init literal. Malformed literals
// and bases are left for Invoke to report.
func prepareInit(m *bigint.Math, req Request) ([]any, error) {
	args := []any{req.Operands[0], req.Base}
	base := req.Base
	if len(req.Operands) == 2 {
		args[1] = req.Operands[1]
		n, err := strconv.Atoi(req.Operands[1])
		if err != nil {
			return args, nil
		}
		base = n
	}
	if req.MaxBits <= 0 {
		return args, nil
	}
	x, err := m.Init(req.Operands[0], base)
	if err != nil {
		return args, nil
	}
	if err := checkOperandSize(0, x, req.MaxBits); err != nil {
		return nil, err
	}
	return args, nil
}

func checkOperandSize(i int, x bigint.Int, maxBits int) error {
	if maxBits > 0 && x.BitLen() > maxBits {
		return apperrors.ValidationError{
			Field:   fmt.Sprintf("operand %d", i+1),
			Message: fmt.Sprintf("%d bits exceeds the limit of %d", x.BitLen(), maxBits),
		}
	}
	return nil
}

// checkPowSize rejects a**e when the result certainly exceeds maxBits: for
// |a| >= 2 the result has more than (bitlen(a)-1)*e bits.
func checkPowSize(a, e bigint.Int, maxBits int) error {
	if a.BitLen() <= 1 || e.Sign() <= 0 {
		return nil
	}
	exp := e.Big()
	limit := int64(maxBits / (a.BitLen() - 1))
	if !exp.IsInt64() || exp.Int64() > limit {
		return apperrors.ValidationError{
			Field:   "pow",
			Message: fmt.Sprintf("result would exceed the limit of %d bits", maxBits),
		}
	}
	return nil
}

// ExecuteAcrossEngines evaluates req concurrently on every named engine.
// Each goroutine builds and owns its own facade. Failures are recorded per
// engine as CalculationError and never abort the other evaluations.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - engines: The engines to run, in display order.
//   - factory: Builds one facade per engine.
//   - req: The request.
//   - reporter: The progress reporter (use NullProgressReporter for quiet mode).
//   - out: The io.Writer for progress output.
//
// Returns:
//   - []EvaluationResult: One entry per engine, in the order of engines.
func ExecuteAcrossEngines(ctx context.Context, engines []bigint.EngineName, factory EngineFactory, req Request, reporter ProgressReporter, out io.Writer) []EvaluationResult {
	stop := reporter.Begin(fmt.Sprintf("Evaluating %s on %d engine(s)", req.Op, len(engines)), out)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	results := make([]EvaluationResult, len(engines))

	for i, name := range engines {
		g.Go(func() error {
			start := time.Now()
			m, err := factory(name)
			if err != nil {
				results[i] = EvaluationResult{Engine: name, Duration: time.Since(start), Err: err}
				return nil
			}
			res, err := Evaluate(ctx, m, req)
			if err != nil {
				err = apperrors.CalculationError{Engine: string(name), Cause: err}
			}
			results[i] = EvaluationResult{Engine: name, Result: res, Duration: time.Since(start), Err: err}
			return nil
		})
	}

	_ = g.Wait()
	return results
}

// AnalyzeComparisonResults checks that every successful engine produced the
// same value and presents the comparison.
//
// Results are sorted with successes first, fastest first. If no engine
// succeeded the first error is handed to errHandler. Disagreeing successful
// results yield ExitErrorMismatch.
//
// Parameters:
//   - results: The per-engine results; sorted in place.
//   - opts: The presentation options.
//   - presenter: The result presenter for display formatting.
//   - errHandler: Maps the failure to an exit code.
//   - out: The io.Writer for the summary report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeComparisonResults(results []EvaluationResult, opts PresentationOptions, presenter ResultPresenter, errHandler ErrorHandler, out io.Writer) int {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstValid *EvaluationResult
	var firstError error
	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
			continue
		}
		if firstValid == nil {
			firstValid = &results[i]
		}
	}

	presenter.PresentComparisonTable(results, opts, out)

	if firstValid == nil {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No engine could complete the operation.\n")
		return errHandler.HandleError(firstError, 0, out)
	}

	want := firstValid.Result.String()
	for _, res := range results {
		if res.Err == nil && res.Result.String() != want {
			fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! Engines disagree on the result.\n")
			return apperrors.ExitErrorMismatch
		}
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All engines agree.\n")
	presenter.PresentResult(*firstValid, opts, out)
	return apperrors.ExitSuccess
}
