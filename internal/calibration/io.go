package calibration

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/agbru/dhcalc/internal/format"
	"github.com/agbru/dhcalc/internal/ui"
)

// printCalibrationResults formats and prints the calibration results table.
func printCalibrationResults(out io.Writer, results []calibrationResult, recommended string) {
	fmt.Fprintf(out, "\n--- Calibration Summary (powmod) ---\n")
	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "  %sEngine%s\t%sModulus%s\t%sMedian%s\t%sStd Dev%s\t%sAlloc/op%s\n",
		ui.ColorUnderline(), ui.ColorReset(), ui.ColorUnderline(), ui.ColorReset(),
		ui.ColorUnderline(), ui.ColorReset(), ui.ColorUnderline(), ui.ColorReset(),
		ui.ColorUnderline(), ui.ColorReset())
	fmt.Fprintf(tw, "  %s\n", strings.Repeat("─", 60))
	for _, res := range results {
		bitsLabel := fmt.Sprintf("%d bits", res.Bits)
		if res.Err != nil {
			fmt.Fprintf(tw, "  %s%s%s\t%s\t%sN/A%s\t\t%s\n",
				ui.ColorCyan(), res.Engine, ui.ColorReset(), bitsLabel,
				ui.ColorRed(), ui.ColorReset(), res.Err)
			continue
		}
		median := format.FormatExecutionDuration(res.Timing.Median)
		if res.Timing.Median == 0 {
			median = "< 1µs"
		}
		highlight := ""
		if string(res.Engine) == recommended && res.Bits == PrimaryBits {
			highlight = fmt.Sprintf(" %s(Recommended)%s", ui.ColorGreen(), ui.ColorReset())
		}
		fmt.Fprintf(tw, "  %s%s%s\t%s\t%s%s%s%s\t±%s\t%d B\n",
			ui.ColorCyan(), res.Engine, ui.ColorReset(), bitsLabel,
			ui.ColorYellow(), median, ui.ColorReset(), highlight,
			format.FormatExecutionDuration(res.Timing.StdDev), res.Timing.BytesPerOp)
	}
	tw.Flush()
}

// printCalibrationOutput prints the recommendation of a completed run.
func printCalibrationOutput(out io.Writer, p *Profile) {
	fmt.Fprintf(out, "%sCalibration%s: recommended engine=%s%s%s at %d bits (took %s)\n",
		ui.ColorGreen(), ui.ColorReset(),
		ui.ColorYellow(), p.RecommendedEngine, ui.ColorReset(),
		p.OperandBits, p.CalibrationTime)
}
