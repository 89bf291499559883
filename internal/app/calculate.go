package app

import (
	"context"
	"fmt"
	"io"

	"github.com/agbru/dhcalc/internal/cli"
	apperrors "github.com/agbru/dhcalc/internal/errors"
	"github.com/agbru/dhcalc/internal/orchestration"
	"github.com/agbru/dhcalc/internal/ui"
)

// runCalculate evaluates the configured operation on the selected engines.
func (a *Application) runCalculate(ctx context.Context, out io.Writer) int {
	engines := orchestration.EnginesToRun(a.Config.Engine, a.availableEngines())
	if len(engines) == 0 {
		fmt.Fprintf(a.ErrWriter, "Configuration error: no engine available\n")
		return apperrors.ExitErrorConfig
	}

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(engines, out)
	}

	var reporter orchestration.ProgressReporter = cli.CLIProgressReporter{}
	progressOut := out
	if a.Config.Quiet {
		reporter = orchestration.NullProgressReporter{}
		progressOut = io.Discard
	}

	req := orchestration.Request{
		Op:       a.Config.Op,
		Operands: a.Config.Operands,
		Base:     a.Config.Base,
		MaxBits:  a.Config.MaxBits,
		Timeout:  a.Config.Timeout,
	}
	results := orchestration.ExecuteAcrossEngines(ctx, engines, a.factory, req, reporter, progressOut)

	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		PresentationOptions: orchestration.PresentationOptions{
			Op:         a.Config.Op,
			Operands:   a.Config.Operands,
			OutputBase: a.Config.OutputBase,
			Verbose:    a.Config.Verbose,
			Quiet:      a.Config.Quiet,
		},
	}
	return a.analyzeResultsWithOutput(results, outputCfg, out)
}

func (a *Application) analyzeResultsWithOutput(results []orchestration.EvaluationResult, outputCfg cli.OutputConfig, out io.Writer) int {
	best := findBestResult(results)

	// A single quiet evaluation prints the bare value, or the error on stderr.
	if outputCfg.Quiet && len(results) == 1 {
		if best == nil {
			return apperrors.HandleCalculationError(results[0].Err, results[0].Duration, a.ErrWriter, cli.CLIColorProvider{})
		}
		cli.DisplayQuietResult(out, best.Result, outputCfg.OutputBase)
		if err := a.saveResultIfNeeded(best, outputCfg); err != nil {
			return apperrors.ExitErrorGeneric
		}
		return apperrors.ExitSuccess
	}

	exitCode := orchestration.AnalyzeComparisonResults(results, outputCfg.PresentationOptions, cli.CLIResultPresenter{}, cli.CLIResultPresenter{}, out)

	// AnalyzeComparisonResults reorders results; look the best one up again.
	best = findBestResult(results)
	if best != nil && exitCode == apperrors.ExitSuccess {
		if err := a.saveResultIfNeeded(best, outputCfg); err != nil {
			return apperrors.ExitErrorGeneric
		}
		if outputCfg.OutputFile != "" && !outputCfg.Quiet {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), outputCfg.OutputFile, ui.ColorReset())
		}
	}
	return exitCode
}

func findBestResult(results []orchestration.EvaluationResult) *orchestration.EvaluationResult {
	var best *orchestration.EvaluationResult
	for i := range results {
		if results[i].Err == nil {
			if best == nil || results[i].Duration < best.Duration {
				best = &results[i]
			}
		}
	}
	return best
}

func (a *Application) saveResultIfNeeded(res *orchestration.EvaluationResult, cfg cli.OutputConfig) error {
	if cfg.OutputFile == "" {
		return nil
	}
	if err := cli.WriteResultToFile(*res, cfg); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error saving result: %v\n", err)
		return err
	}
	return nil
}
