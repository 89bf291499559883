// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplayQuietResult], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatQuietResult], [FormatResultValue].
//
//   - Write* functions write data to files on the filesystem.
//     Examples: [WriteResultToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/agbru/dhcalc/internal/format"
	"github.com/agbru/dhcalc/internal/orchestration"
	"github.com/agbru/dhcalc/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	orchestration.PresentationOptions
}

// WriteResultToFile writes a result, preceded by a commented header, to
// config.OutputFile. It does nothing when no file is configured.
//
// Parameters:
//   - res: The evaluation to save.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteResultToFile(res orchestration.EvaluationResult, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	base := config.OutputBase
	if base == 0 {
		base = 10
	}
	text := FormatResultValue(res.Result, base)

	fmt.Fprintf(file, "# dhcalc result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Engine: %s\n", res.Engine)
	fmt.Fprintf(file, "# Duration: %s\n", res.Duration)
	fmt.Fprintf(file, "# Operation: %s %s\n", config.Op, strings.Join(config.Operands, " "))
	fmt.Fprintf(file, "# Base: %d\n", base)
	fmt.Fprintf(file, "# Bits: %d\n", res.Result.Value.BitLen())
	fmt.Fprintf(file, "# Fingerprint: %s\n", format.Fingerprint(text))
	fmt.Fprintf(file, "\n%s\n", text)

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// DisplayResultWithConfig displays a result and saves it when an output file
// is configured.
//
// Returns:
//   - error: An error if file output fails.
func DisplayResultWithConfig(out io.Writer, res orchestration.EvaluationResult, config OutputConfig) error {
	CLIResultPresenter{}.PresentResult(res, config.PresentationOptions, out)

	if config.OutputFile != "" {
		if err := WriteResultToFile(res, config); err != nil {
			return err
		}
		if !config.Quiet {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), config.OutputFile, ui.ColorReset())
		}
	}
	return nil
}
