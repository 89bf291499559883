package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/agbru/dhcalc/internal/bigint"
	apperrors "github.com/agbru/dhcalc/internal/errors"
	"github.com/agbru/dhcalc/internal/format"
	"github.com/agbru/dhcalc/internal/orchestration"
	"github.com/agbru/dhcalc/internal/ui"
)

const (
	// TruncationLimit is the length from which a value is truncated on
	// standard output unless --verbose is set.
	TruncationLimit = 100
	// DisplayEdges is the number of characters kept at each end of a
	// truncated value.
	DisplayEdges = 25
)

// CLIResultPresenter implements orchestration.ResultPresenter and
// orchestration.ErrorHandler with colorized terminal output.
type CLIResultPresenter struct{}

var (
	_ orchestration.ResultPresenter = CLIResultPresenter{}
	_ orchestration.ErrorHandler    = CLIResultPresenter{}
)

// PresentComparisonTable displays the per-engine summary with duration,
// status and value fingerprint. Padding is computed by hand because the
// cells carry ANSI sequences.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.EvaluationResult, opts orchestration.PresentationOptions, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	maxNameLen := len("Engine")
	maxDurationLen := len("Duration")
	for _, res := range results {
		maxNameLen = max(maxNameLen, len(res.Engine))
		maxDurationLen = max(maxDurationLen, len(displayDuration(res.Duration)))
	}

	fmt.Fprintf(out, "%sEngine%s%s   %sDuration%s%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxNameLen-len("Engine")),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxDurationLen-len("Duration")),
		ui.ColorUnderline(), ui.ColorReset())

	for _, res := range results {
		var status string
		if res.Err != nil {
			status = fmt.Sprintf("%s❌ Failure (%v)%s", ui.ColorRed(), res.Err, ui.ColorReset())
		} else {
			status = fmt.Sprintf("%s✅ Success%s %s[%s]%s", ui.ColorGreen(), ui.ColorReset(),
				ui.ColorGrey(), format.Fingerprint(FormatResultValue(res.Result, opts.OutputBase)), ui.ColorReset())
		}
		duration := displayDuration(res.Duration)
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s\n",
			ui.ColorBlue(), res.Engine, ui.ColorReset(), padRight("", maxNameLen-len(res.Engine)),
			ui.ColorYellow(), duration, ui.ColorReset(), padRight("", maxDurationLen-len(duration)),
			status)
	}
}

// PresentResult displays the final result.
func (CLIResultPresenter) PresentResult(result orchestration.EvaluationResult, opts orchestration.PresentationOptions, out io.Writer) {
	if opts.Quiet {
		DisplayQuietResult(out, result.Result, opts.OutputBase)
		return
	}
	DisplayResult(result, opts, out)
}

// HandleError handles evaluation errors and returns an appropriate exit code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleCalculationError(err, duration, out, CLIColorProvider{})
}

// CLIColorProvider supplies theme colors to the errors package.
type CLIColorProvider struct{}

var _ apperrors.ColorProvider = CLIColorProvider{}

// Red returns the error color.
func (CLIColorProvider) Red() string { return ui.ColorRed() }

// Yellow returns the warning color.
func (CLIColorProvider) Yellow() string { return ui.ColorYellow() }

// Reset returns the reset sequence.
func (CLIColorProvider) Reset() string { return ui.ColorReset() }

// DisplayQuietResult prints only the value, on a single line.
func DisplayQuietResult(out io.Writer, r bigint.Result, base int) {
	fmt.Fprintln(out, FormatQuietResult(r, base))
}

// DisplayResult prints a result with its analysis: engine, duration, and for
// values the size, magnitude and fingerprint. Long values are truncated
// unless opts.Verbose is set.
func DisplayResult(res orchestration.EvaluationResult, opts orchestration.PresentationOptions, out io.Writer) {
	fmt.Fprintf(out, "\n--- Result ---\n")
	fmt.Fprintf(out, "Engine:          %s%s%s\n", ui.ColorBlue(), res.Engine, ui.ColorReset())
	fmt.Fprintf(out, "Evaluation time: %s%s%s\n", ui.ColorYellow(), displayDuration(res.Duration), ui.ColorReset())

	r := res.Result
	if r.Op == bigint.OpCompare {
		fmt.Fprintf(out, "compare = %s%d%s (%s)\n", ui.ColorMagenta(), r.Order, ui.ColorReset(), orderSymbol(r.Order))
		return
	}

	base := opts.OutputBase
	if base == 0 {
		base = 10
	}
	text := FormatResultValue(r, base)
	digits := len(text)
	if r.Value.Sign() < 0 {
		digits--
	}
	fmt.Fprintf(out, "Result size:     %s%d%s bits, %s%d%s digits in base %d\n",
		ui.ColorCyan(), r.Value.BitLen(), ui.ColorReset(), ui.ColorCyan(), digits, ui.ColorReset(), base)
	if b := r.Value.Big(); b.BitLen() > 32 {
		fmt.Fprintf(out, "Magnitude:       %s≈ %s%s\n", ui.ColorCyan(), format.Magnitude(b), ui.ColorReset())
	}
	fmt.Fprintf(out, "Fingerprint:     %s%s%s\n", ui.ColorGrey(), format.Fingerprint(text), ui.ColorReset())

	display := text
	if base == 10 {
		display = format.GroupDigits(text, ',')
	}
	if !opts.Verbose && len(text) > TruncationLimit {
		display = format.Truncate(text, DisplayEdges)
		fmt.Fprintf(out, "%s = %s%s%s\n%s(use --verbose for the full value)%s\n",
			r.Op, ui.ColorMagenta(), display, ui.ColorReset(), ui.ColorGrey(), ui.ColorReset())
		return
	}
	fmt.Fprintf(out, "%s = %s%s%s\n", r.Op, ui.ColorMagenta(), display, ui.ColorReset())
}

func displayDuration(d time.Duration) string {
	if d == 0 {
		return "< 1ns"
	}
	return format.FormatExecutionDuration(d)
}

// padRight returns s followed by length spaces.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}
