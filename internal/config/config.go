// Package config handles command-line, environment and config-file settings
// for dhcalc.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	apperrors "github.com/agbru/dhcalc/internal/errors"
)

// EnvPrefix is the prefix of every environment variable read by dhcalc.
const EnvPrefix = "DHCALC_"

// Default values for the tunable settings.
const (
	DefaultTimeout    = 1 * time.Minute
	DefaultMaxBits    = 1 << 20
	DefaultBase       = 10
	DefaultOutputBase = 10
	DefaultLogLevel   = "warn"

	// EngineAll runs the operation on every available engine and compares
	// the results.
	EngineAll = "all"
)

var (
	logLevels        = []string{"debug", "info", "warn", "error"}
	completionShells = []string{"bash", "zsh", "fish", "powershell"}
)

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// Op is the operation name given as the first positional argument.
	Op string
	// Operands are the remaining positional arguments.
	Operands []string

	// Engine is the preferred engine name, "all", or "" for automatic selection.
	Engine string
	// Base is the input base for operands (0 or 2..36).
	Base int
	// OutputBase is the base used to display results (2..36).
	OutputBase int
	// Timeout bounds a single evaluation.
	Timeout time.Duration
	// MaxBits rejects operands and exponent-derived results above this size.
	// Zero disables the guard.
	MaxBits int

	Quiet       bool
	Verbose     bool
	OutputFile  string
	REPL        bool
	TUI         bool
	Calibrate   bool
	Metrics     bool
	NoColor     bool
	ListEngines bool
	ShowVersion bool

	CalibrationProfile string
	LogLevel           string
	ConfigFile         string
	Completion         string
}

// Interactive reports whether the configuration selects a mode that does not
// need a positional operation.
func (c AppConfig) Interactive() bool {
	return c.REPL || c.TUI || c.Calibrate || c.ListEngines || c.Completion != "" || c.ShowVersion
}

// Validate checks the configuration for consistency.
//
// Parameters:
//   - availableEngines: The engine names accepted for --engine, besides "all".
//
// Returns:
//   - error: A ConfigError describing the first invalid setting, or nil.
func (c AppConfig) Validate(availableEngines []string) error {
	if c.Base != 0 && (c.Base < 2 || c.Base > 36) {
		return apperrors.NewConfigError("--base must be 0 or between 2 and 36, got %d", c.Base)
	}
	if c.OutputBase < 2 || c.OutputBase > 36 {
		return apperrors.NewConfigError("--output-base must be between 2 and 36, got %d", c.OutputBase)
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("--timeout must be positive, got %s", c.Timeout)
	}
	if c.MaxBits < 0 {
		return apperrors.NewConfigError("--max-bits must not be negative, got %d", c.MaxBits)
	}
	if c.Engine != "" && c.Engine != EngineAll && !slices.Contains(availableEngines, c.Engine) {
		return apperrors.NewConfigError("unknown engine %q; known engines: %s, %s",
			c.Engine, strings.Join(availableEngines, ", "), EngineAll)
	}
	if !slices.Contains(logLevels, c.LogLevel) {
		return apperrors.NewConfigError("--log-level must be one of %s, got %q", strings.Join(logLevels, ", "), c.LogLevel)
	}
	if c.Completion != "" && !slices.Contains(completionShells, c.Completion) {
		return apperrors.NewConfigError("unsupported shell %q for --completion; supported: %s",
			c.Completion, strings.Join(completionShells, ", "))
	}
	if c.REPL && c.TUI {
		return apperrors.NewConfigError("--repl and --tui are mutually exclusive")
	}
	if c.Op == "" && !c.Interactive() {
		return apperrors.NewConfigError("missing operation; usage: dhcalc [flags] <op> <operand>...")
	}
	return nil
}

// ParseConfig parses command-line arguments into an AppConfig.
//
// Settings are resolved with the priority: flags > DHCALC_* environment
// variables > config file (--config or DHCALC_CONFIG) > defaults.
//
// Parameters:
//   - programName: The program name used in usage output.
//   - args: Command-line arguments without the program name.
//   - errorWriter: The writer for usage and parse errors.
//   - availableEngines: Engine names accepted for --engine.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp when help was requested, or a ConfigError.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableEngines []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	config := AppConfig{}
	fs.StringVar(&config.Engine, "engine", "", fmt.Sprintf("Arithmetic engine (%s, %s). Empty selects the best available.", strings.Join(availableEngines, ", "), EngineAll))
	fs.IntVar(&config.Base, "base", DefaultBase, "Input base for operands (0 detects 0x/0o/0b prefixes, or 2..36).")
	fs.IntVar(&config.OutputBase, "output-base", DefaultOutputBase, "Base used to display results (2..36).")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum time allowed for one evaluation.")
	fs.IntVar(&config.MaxBits, "max-bits", DefaultMaxBits, "Reject operands or pow results larger than this many bits (0 disables).")
	fs.BoolVar(&config.Quiet, "quiet", false, "Print only the result value.")
	fs.BoolVar(&config.Quiet, "q", false, "Shorthand for --quiet.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Print operands, engine and timing details.")
	fs.BoolVar(&config.Verbose, "v", false, "Shorthand for --verbose.")
	fs.StringVar(&config.OutputFile, "output", "", "Write the result to this file.")
	fs.StringVar(&config.OutputFile, "o", "", "Shorthand for --output.")
	fs.BoolVar(&config.REPL, "repl", false, "Start the interactive read-eval-print loop.")
	fs.BoolVar(&config.TUI, "tui", false, "Start the interactive terminal UI.")
	fs.BoolVar(&config.Calibrate, "calibrate", false, "Benchmark every available engine and recommend the fastest.")
	fs.StringVar(&config.CalibrationProfile, "calibration-profile", "", "Path of the calibration profile to save or load.")
	fs.BoolVar(&config.Metrics, "metrics", false, "Print Prometheus operation metrics on exit.")
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Log level (debug, info, warn, error).")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.StringVar(&config.ConfigFile, "config", "", "Path of a YAML, TOML or JSON config file.")
	fs.StringVar(&config.Completion, "completion", "", "Print a completion script for a shell (bash, zsh, fish, powershell).")
	fs.BoolVar(&config.ListEngines, "list-engines", false, "List the engines and their availability.")
	fs.BoolVar(&config.ShowVersion, "version", false, "Print version information.")
	fs.BoolVar(&config.ShowVersion, "V", false, "Shorthand for --version.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return AppConfig{}, err
		}
		return AppConfig{}, apperrors.NewConfigError("%v", err)
	}

	if rest := fs.Args(); len(rest) > 0 {
		config.Op = rest[0]
		config.Operands = rest[1:]
	}

	if err := config.resolve(fs, availableEngines); err != nil {
		fmt.Fprintf(errorWriter, "Configuration error: %v\n", err)
		return AppConfig{}, err
	}
	return config, nil
}

// resolve layers the config file and the environment under the parsed
// flags, normalizes names and validates the result.
func (c *AppConfig) resolve(fs *flag.FlagSet, availableEngines []string) error {
	if err := applyConfigFile(c, fs); err != nil {
		return err
	}
	if err := applyEnvOverrides(c, fs); err != nil {
		return err
	}
	c.Engine = strings.ToLower(strings.TrimSpace(c.Engine))
	c.LogLevel = strings.ToLower(c.LogLevel)
	return c.Validate(availableEngines)
}
