package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/dhcalc/internal/bigint"
	"github.com/agbru/dhcalc/internal/calibration"
	"github.com/agbru/dhcalc/internal/cli"
	"github.com/agbru/dhcalc/internal/config"
	apperrors "github.com/agbru/dhcalc/internal/errors"
	"github.com/agbru/dhcalc/internal/logging"
	"github.com/agbru/dhcalc/internal/metrics"
	"github.com/agbru/dhcalc/internal/tui"
	"github.com/agbru/dhcalc/internal/ui"
)

// Application represents the dhcalc application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	Logger    logging.Logger
	Metrics   *metrics.OperationMetrics
	Tracer    *metrics.Tracer

	probe func(bigint.EngineName) error
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithAvailability replaces the engine availability probe, for tests and
// for forcing a fallback.
func WithAvailability(probe func(bigint.EngineName) error) AppOption {
	return func(a *Application) { a.probe = probe }
}

// WithLogger sets the logger handed to every engine facade.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
// A valid cached calibration profile supplies the engine when no flag,
// environment variable or config file did.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "dhcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, engineNames(bigint.Names()))
	if err != nil {
		return nil, err
	}

	if !cfg.Calibrate {
		if cfgWithProfile, loaded := calibration.LoadCachedCalibration(cfg, cfg.CalibrationProfile); loaded {
			cfg = cfgWithProfile
		}
	}

	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode and returns
// the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}
	if a.Config.ShowVersion {
		PrintVersion(out)
		return apperrors.ExitSuccess
	}

	a.setup()
	ui.InitTheme(a.Config.NoColor)

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	var code int
	switch {
	case a.Config.ListEngines:
		cli.DisplayEngines(out, a.engineInfos())
		code = apperrors.ExitSuccess
	case a.Config.Calibrate:
		code = a.runCalibration(ctx, out)
	case a.Config.REPL:
		repl := cli.NewREPL(a.sessionConfig())
		repl.SetOutput(out)
		repl.Start(ctx)
		code = apperrors.ExitSuccess
	case a.Config.TUI:
		code = tui.Run(ctx, a.sessionConfig(), Version)
	default:
		code = a.runCalculate(ctx, out)
	}

	if a.Config.Metrics {
		fmt.Fprintf(out, "\n--- Metrics ---\n")
		if err := a.Metrics.WriteText(out); err != nil {
			a.Logger.Error("writing metrics failed", err)
		}
	}
	return code
}

// setup applies the log level and creates the logger and observers that
// every facade shares.
func (a *Application) setup() {
	level, err := zerolog.ParseLevel(a.Config.LogLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(level)

	if a.Logger == nil {
		zl := zerolog.New(zerolog.ConsoleWriter{Out: a.ErrWriter, NoColor: a.Config.NoColor}).
			With().Timestamp().Str("component", "dhcalc").Logger()
		a.Logger = logging.NewZerologAdapter(zl)
	}
	if a.Metrics == nil {
		a.Metrics = metrics.NewOperationMetrics()
	}
	if a.Tracer == nil {
		a.Tracer = metrics.NewTracer(nil)
	}
}

// factory builds a facade bound to name with the application's logger and
// observers attached.
func (a *Application) factory(name bigint.EngineName) (*bigint.Math, error) {
	opts := []bigint.Option{
		bigint.WithLogger(a.Logger),
		bigint.WithObserver(a.Metrics),
		bigint.WithObserver(a.Tracer),
	}
	if a.probe != nil {
		opts = append(opts, bigint.WithAvailability(a.probe))
	}
	return bigint.New(string(name), opts...)
}

// availableEngines returns the usable engines in priority order.
func (a *Application) availableEngines() []bigint.EngineName {
	var names []bigint.EngineName
	for _, info := range a.engineInfos() {
		if info.Available {
			names = append(names, info.Name)
		}
	}
	return names
}

func (a *Application) engineInfos() []bigint.EngineInfo {
	infos := bigint.Engines()
	if a.probe == nil {
		return infos
	}
	for i := range infos {
		infos[i].Available, infos[i].Reason = true, ""
		if err := a.probe(infos[i].Name); err != nil {
			infos[i].Available, infos[i].Reason = false, err.Error()
		}
	}
	return infos
}

func (a *Application) sessionConfig() cli.SessionConfig {
	return cli.SessionConfig{
		DefaultEngine: a.Config.Engine,
		Engines:       a.availableEngines(),
		Factory:       a.factory,
		Timeout:       a.Config.Timeout,
		MaxBits:       a.Config.MaxBits,
		Base:          a.Config.Base,
		HexOutput:     a.Config.OutputBase == 16,
	}
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	ops := make([]string, 0, len(bigint.Ops()))
	for _, op := range bigint.Ops() {
		ops = append(ops, string(op))
	}
	if err := cli.GenerateCompletion(out, a.Config.Completion, engineNames(bigint.Names()), ops); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runCalibration benchmarks the available engines and saves the profile.
func (a *Application) runCalibration(ctx context.Context, out io.Writer) int {
	path := a.Config.CalibrationProfile
	if path == "" {
		path = calibration.DefaultProfilePath()
	}
	profile, err := calibration.RunCalibration(ctx, out, a.availableEngines(), a.factory, calibration.Options{
		SavePath: path,
		Reporter: cli.CLIProgressReporter{},
	})
	if err != nil {
		return apperrors.HandleCalculationError(err, 0, out, cli.CLIColorProvider{})
	}
	a.Logger.Info("calibration profile saved",
		logging.String("path", path),
		logging.String("engine", profile.RecommendedEngine))
	return apperrors.ExitSuccess
}

func engineNames(names []bigint.EngineName) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = string(n)
	}
	return out
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
