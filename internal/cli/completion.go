package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// All shell generators read flagRegistry, so a new flag only needs an entry
// there.
type FlagCompletion struct {
	Long      string   // long flag name without "--"
	Short     string   // short flag without "-"
	Help      string   // description text
	Values    []string // suggested values (nil = boolean or free-form)
	ValueName string   // label for the value in zsh
	IsFile    bool     // flag takes a file path
	IsEngine  bool     // values come from the engine list
	Section   string   // fish comment section
}

var bases = []string{"2", "8", "10", "16", "36"}

// flagRegistry is the central list of all CLI flags for completion generation.
var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message", Section: "Help and version"},
	{Long: "version", Short: "V", Help: "Show version information", Section: "Help and version"},
	{Long: "engine", Help: "Arithmetic engine", IsEngine: true, ValueName: "engine", Section: "Evaluation"},
	{Long: "base", Help: "Base of the operands (0 auto-detects prefixes)", Values: append([]string{"0"}, bases...), ValueName: "base", Section: "Evaluation"},
	{Long: "output-base", Help: "Base of the printed result", Values: bases, ValueName: "base", Section: "Evaluation"},
	{Long: "timeout", Help: "Maximum evaluation time", Values: []string{"10s", "1m", "5m", "30m"}, ValueName: "duration", Section: "Evaluation"},
	{Long: "max-bits", Help: "Largest operand or pow result in bits", Values: []string{"65536", "1048576", "16777216"}, ValueName: "bits", Section: "Evaluation"},
	{Long: "verbose", Short: "v", Help: "Print the full result value", Section: "Output"},
	{Long: "quiet", Short: "q", Help: "Print only the result", Section: "Output"},
	{Long: "output", Short: "o", Help: "Output file path", IsFile: true, ValueName: "file", Section: "Output"},
	{Long: "metrics", Help: "Print Prometheus metrics after the run", Section: "Output"},
	{Long: "no-color", Help: "Disable colored output", Section: "Output"},
	{Long: "log-level", Help: "Log level", Values: []string{"debug", "info", "warn", "error"}, ValueName: "level", Section: "Output"},
	{Long: "repl", Help: "Start the interactive prompt", Section: "Modes"},
	{Long: "tui", Help: "Start the terminal dashboard", Section: "Modes"},
	{Long: "list-engines", Help: "List engines and availability", Section: "Modes"},
	{Long: "calibrate", Help: "Benchmark the engines and recommend one", Section: "Calibration"},
	{Long: "calibration-profile", Help: "Calibration profile file", IsFile: true, ValueName: "file", Section: "Calibration"},
	{Long: "config", Help: "Configuration file", IsFile: true, ValueName: "file", Section: "Configuration"},
	{Long: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish", "powershell"}, ValueName: "shell", Section: "Configuration"},
}

// GenerateCompletion generates a shell completion script for the specified shell.
//
// Parameters:
//   - out: The writer to output the completion script.
//   - shell: The shell type ("bash", "zsh", "fish", "powershell").
//   - engines: Names of the known engines.
//   - ops: Names of the operations, completed as the first positional word.
//
// Returns:
//   - error: An error if the shell is not supported.
func GenerateCompletion(out io.Writer, shell string, engines, ops []string) error {
	var script string
	switch shell {
	case "bash":
		script = bashCompletion(engines, ops)
	case "zsh":
		script = zshCompletion(engines, ops)
	case "fish":
		script = fishCompletion(engines, ops)
	case "powershell", "ps":
		script = powerShellCompletion(engines, ops)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish, powershell)", shell)
	}
	if _, err := fmt.Fprint(out, script); err != nil {
		return fmt.Errorf("completion %s generation failed: %w", shell, err)
	}
	return nil
}

func engineValues(engines []string) []string {
	return append(append([]string(nil), engines...), "all")
}

func bashCompletion(engines, ops []string) string {
	var opts []string
	var cases strings.Builder
	var files []string
	for _, f := range flagRegistry {
		if f.Long != "" {
			opts = append(opts, "--"+f.Long)
		}
		if f.Short != "" {
			opts = append(opts, "-"+f.Short)
		}
		switch {
		case f.IsFile:
			files = append(files, "--"+f.Long)
			if f.Short != "" {
				files = append(files, "-"+f.Short)
			}
		case f.IsEngine:
			fmt.Fprintf(&cases, "        --%s)\n            COMPREPLY=( $(compgen -W \"${engines}\" -- \"${cur}\") )\n            return 0\n            ;;\n", f.Long)
		case len(f.Values) > 0:
			fmt.Fprintf(&cases, "        --%s)\n            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n            return 0\n            ;;\n", f.Long, strings.Join(f.Values, " "))
		}
	}
	if len(files) > 0 {
		fmt.Fprintf(&cases, "        %s)\n            COMPREPLY=( $(compgen -f -- \"${cur}\") )\n            return 0\n            ;;\n", strings.Join(files, "|"))
	}

	return fmt.Sprintf(`# Bash completion script for dhcalc
# Add this to your ~/.bashrc or ~/.bash_completion

_dhcalc_completions() {
    local cur prev opts engines ops
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    opts="%s"
    engines="%s"
    ops="%s"

    case "${prev}" in
%s    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "${ops}" -- "${cur}") )
    fi
}

complete -F _dhcalc_completions dhcalc
`, strings.Join(opts, " "), strings.Join(engineValues(engines), " "), strings.Join(ops, " "), cases.String())
}

func zshCompletion(engines, ops []string) string {
	args := make([]string, 0, len(flagRegistry)+1)
	for _, f := range flagRegistry {
		args = append(args, zshArgEntry(f))
	}
	args = append(args, "        '1:operation:($ops)'", "        '*:operand:'")

	return fmt.Sprintf(`#compdef dhcalc

# Zsh completion script for dhcalc
# Add this to your ~/.zshrc or place in $fpath

_dhcalc() {
    local -a engines ops
    engines=(%s)
    ops=(%s)

    _arguments -s \
%s
}

_dhcalc "$@"
`, strings.Join(engineValues(engines), " "), strings.Join(ops, " "), strings.Join(args, " \\\n"))
}

// zshArgEntry formats a single FlagCompletion as a zsh _arguments entry.
func zshArgEntry(f FlagCompletion) string {
	valueSuffix := ""
	switch {
	case f.IsFile:
		valueSuffix = fmt.Sprintf(":%s:_files", f.ValueName)
	case f.IsEngine:
		valueSuffix = fmt.Sprintf(":%s:($engines)", f.ValueName)
	case len(f.Values) > 0:
		valueSuffix = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
	case f.ValueName != "":
		valueSuffix = fmt.Sprintf(":%s:", f.ValueName)
	}

	if f.Short != "" {
		return fmt.Sprintf("        '(-%s --%s)'{-%s,--%s}'[%s]%s'",
			f.Short, f.Long, f.Short, f.Long, f.Help, valueSuffix)
	}
	return fmt.Sprintf("        '--%s[%s]%s'", f.Long, f.Help, valueSuffix)
}

func fishCompletion(engines, ops []string) string {
	lines := []string{
		"# Fish completion script for dhcalc",
		"# Add this to ~/.config/fish/completions/dhcalc.fish",
		"",
		"complete -c dhcalc -f",
		"",
		"# Operations",
		fmt.Sprintf("complete -c dhcalc -n '__fish_use_subcommand' -a '%s'", strings.Join(ops, " ")),
	}

	section := ""
	for _, f := range flagRegistry {
		if f.Section != section {
			section = f.Section
			lines = append(lines, "", "# "+section)
		}
		lines = append(lines, fishCompleteLine(f, engines))
	}
	return strings.Join(lines, "\n") + "\n"
}

// fishCompleteLine formats a single FlagCompletion as a fish complete command.
func fishCompleteLine(f FlagCompletion, engines []string) string {
	parts := []string{"complete -c dhcalc"}
	if f.Short != "" {
		parts = append(parts, "-s "+f.Short)
	}
	parts = append(parts, "-l "+f.Long, fmt.Sprintf("-d '%s'", f.Help))

	switch {
	case f.IsFile:
		parts = append(parts, "-rF")
	case f.IsEngine:
		parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(engineValues(engines), " ")))
	case len(f.Values) > 0:
		parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(f.Values, " ")))
	case f.ValueName != "":
		parts = append(parts, "-x")
	}
	return strings.Join(parts, " ")
}

func powerShellCompletion(engines, ops []string) string {
	quote := func(vals []string) string {
		q := make([]string, len(vals))
		for i, v := range vals {
			q[i] = "'" + v + "'"
		}
		return strings.Join(q, ", ")
	}

	var options, switches []string
	for _, f := range flagRegistry {
		if f.Short != "" {
			options = append(options, fmt.Sprintf("        @{Name = '-%s'; Description = '%s' }", f.Short, f.Help))
		}
		options = append(options, fmt.Sprintf("        @{Name = '--%s'; Description = '%s' }", f.Long, f.Help))

		values := f.Values
		if f.IsEngine {
			values = engineValues(engines)
		}
		if len(values) == 0 {
			continue
		}
		switches = append(switches, fmt.Sprintf(`        '--%s' {
            @(%s) | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
            }
            return
        }`, f.Long, quote(values)))
	}

	return fmt.Sprintf(`# PowerShell completion script for dhcalc
# Add this to your $PROFILE

$dhcalcOps = @(%s)

Register-ArgumentCompleter -CommandName 'dhcalc' -Native -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $options = @(
%s
    )

    $elements = $commandAst.CommandElements
    $prevElement = if ($elements.Count -gt 2) { $elements[-2].ToString() } else { '' }

    switch ($prevElement) {
%s
    }

    if ($elements.Count -le 2 -and -not $wordToComplete.StartsWith('-')) {
        $dhcalcOps | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
        }
        return
    }

    $options | Where-Object { $_.Name -like "$wordToComplete*" } | ForEach-Object {
        [System.Management.Automation.CompletionResult]::new($_.Name, $_.Name, 'ParameterName', $_.Description)
    }
}
`, quote(ops), strings.Join(options, "\n"), strings.Join(switches, "\n"))
}
