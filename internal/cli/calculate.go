package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/agbru/dhcalc/internal/bigint"
	"github.com/agbru/dhcalc/internal/config"
	"github.com/agbru/dhcalc/internal/format"
	"github.com/agbru/dhcalc/internal/ui"
)

// PrintExecutionConfig displays the operation, its limits and the runtime
// environment.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	operands := make([]string, len(cfg.Operands))
	for i, o := range cfg.Operands {
		operands[i] = format.Truncate(o, 12)
	}
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Evaluating %s%s(%s)%s in base %d with a timeout of %s%s%s.\n",
		ui.ColorMagenta(), cfg.Op, strings.Join(operands, ", "), ui.ColorReset(),
		cfg.Base, ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s, %s/%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset(),
		runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(out, "Size limit: %s%d%s bits per operand and pow result.\n",
		ui.ColorCyan(), cfg.MaxBits, ui.ColorReset())
}

// PrintExecutionMode displays whether one engine runs or all are compared.
//
// Parameters:
//   - engines: The engines that will evaluate the operation.
//   - out: The writer for standard output.
func PrintExecutionMode(engines []bigint.EngineName, out io.Writer) {
	var modeDesc string
	switch len(engines) {
	case 0:
		modeDesc = fmt.Sprintf("%sno engine available%s", ui.ColorRed(), ui.ColorReset())
	case 1:
		modeDesc = fmt.Sprintf("Single evaluation with the %s%s%s engine",
			ui.ColorGreen(), engines[0], ui.ColorReset())
	default:
		modeDesc = "Parallel comparison of all engines"
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
