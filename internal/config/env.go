// This file contains the environment variable and config file overrides.

package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	apperrors "github.com/agbru/dhcalc/internal/errors"
)

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply lower-priority overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
// This is useful for aliased flags where either the short or long form may be used.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// override declares a setting that can come from the environment or a config
// file. envKey is used without the DHCALC_ prefix; the config file key is the
// first flag name. apply rejects values it cannot parse.
type override struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string) error
}

func (o override) fileKey() string { return o.flags[0] }

func intSetter(dst func(*AppConfig) *int) func(*AppConfig, string) error {
	return func(c *AppConfig, v string) error {
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid integer %q", v)
		}
		*dst(c) = parsed
		return nil
	}
}

func durationSetter(dst func(*AppConfig) *time.Duration) func(*AppConfig, string) error {
	return func(c *AppConfig, v string) error {
		parsed, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid duration %q", v)
		}
		*dst(c) = parsed
		return nil
	}
}

func boolSetter(dst func(*AppConfig) *bool) func(*AppConfig, string) error {
	return func(c *AppConfig, v string) error {
		p := dst(c)
		*p = parseBoolEnv(v, *p)
		return nil
	}
}

func stringSetter(dst func(*AppConfig) *string) func(*AppConfig, string) error {
	return func(c *AppConfig, v string) error {
		*dst(c) = v
		return nil
	}
}

// overrides is the declarative table of settings that can be overridden.
var overrides = []override{
	// Numeric overrides
	{"BASE", []string{"base"}, intSetter(func(c *AppConfig) *int { return &c.Base })},
	{"OUTPUT_BASE", []string{"output-base"}, intSetter(func(c *AppConfig) *int { return &c.OutputBase })},
	{"MAX_BITS", []string{"max-bits"}, intSetter(func(c *AppConfig) *int { return &c.MaxBits })},

	// Duration overrides
	{"TIMEOUT", []string{"timeout"}, durationSetter(func(c *AppConfig) *time.Duration { return &c.Timeout })},

	// String overrides
	{"ENGINE", []string{"engine"}, stringSetter(func(c *AppConfig) *string { return &c.Engine })},
	{"OUTPUT", []string{"output", "o"}, stringSetter(func(c *AppConfig) *string { return &c.OutputFile })},
	{"CALIBRATION_PROFILE", []string{"calibration-profile"}, stringSetter(func(c *AppConfig) *string { return &c.CalibrationProfile })},
	{"LOG_LEVEL", []string{"log-level"}, stringSetter(func(c *AppConfig) *string { return &c.LogLevel })},

	// Boolean overrides
	{"VERBOSE", []string{"verbose", "v"}, boolSetter(func(c *AppConfig) *bool { return &c.Verbose })},
	{"QUIET", []string{"quiet", "q"}, boolSetter(func(c *AppConfig) *bool { return &c.Quiet })},
	{"METRICS", []string{"metrics"}, boolSetter(func(c *AppConfig) *bool { return &c.Metrics })},
	{"NO_COLOR", []string{"no-color"}, boolSetter(func(c *AppConfig) *bool { return &c.NoColor })},
	{"TUI", []string{"tui"}, boolSetter(func(c *AppConfig) *bool { return &c.TUI })},
	{"REPL", []string{"repl"}, boolSetter(func(c *AppConfig) *bool { return &c.REPL })},
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
// Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
//
// Supported environment variables (all prefixed with DHCALC_):
//   - BASE, OUTPUT_BASE, MAX_BITS, TIMEOUT, ENGINE, OUTPUT,
//     CALIBRATION_PROFILE, LOG_LEVEL, VERBOSE, QUIET, METRICS, NO_COLOR,
//     TUI, REPL
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) error {
	for _, o := range overrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			if err := o.apply(config, val); err != nil {
				return apperrors.NewConfigError("%s%s: %v", EnvPrefix, o.envKey, err)
			}
		}
	}
	return nil
}

// applyConfigFile loads the file named by --config, or by DHCALC_CONFIG when
// the flag is absent, and applies its keys for flags not set explicitly.
// Keys use the long flag names, e.g. "max-bits: 4096".
func applyConfigFile(config *AppConfig, fs *flag.FlagSet) error {
	path := config.ConfigFile
	if path == "" {
		path = os.Getenv(EnvPrefix + "CONFIG")
		config.ConfigFile = path
	}
	if path == "" {
		return nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return apperrors.NewConfigError("cannot read config file %q: %v", path, err)
	}

	for _, o := range overrides {
		if isFlagSetAny(fs, o.flags...) || !v.IsSet(o.fileKey()) {
			continue
		}
		if err := o.apply(config, v.GetString(o.fileKey())); err != nil {
			return apperrors.NewConfigError("config file %q, key %s: %v", path, o.fileKey(), err)
		}
	}
	return nil
}
