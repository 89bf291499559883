package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/agbru/dhcalc/internal/bigint"
	"github.com/agbru/dhcalc/internal/orchestration"
	"github.com/agbru/dhcalc/internal/ui"
)

// REPL is an interactive prompt over a Session.
type REPL struct {
	session *Session
	in      io.Reader
	out     io.Writer
}

// NewREPL creates a new REPL reading stdin and writing stdout.
func NewREPL(config SessionConfig) *REPL {
	return &REPL{
		session: NewSession(config),
		in:      os.Stdin,
		out:     os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) { r.in = in }

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) { r.out = out }

// Start reads and runs commands until exit, EOF or cancellation of ctx.
func (r *REPL) Start(ctx context.Context) {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)
	for ctx.Err() == nil {
		fmt.Fprint(r.out, ui.ColorGreen()+"dh> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			return
		}
		eof := errors.Is(err, io.EOF)

		if !r.processCommand(ctx, strings.TrimSpace(input)) {
			return
		}
		if eof {
			fmt.Fprintln(r.out, "\nGoodbye!")
			return
		}
	}
}

func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════════════════╗%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s     %s🔢 dhcalc - Interactive Mode%s                         %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════════════════╝%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

// HelpLines returns the command reference shared by the REPL and the TUI.
func HelpLines() [][2]string {
	ops := make([]string, 0, len(bigint.Ops()))
	for _, op := range bigint.Ops() {
		ops = append(ops, string(op))
	}
	return [][2]string{
		{"<op> <operand>...", "Evaluate on the current engine (" + strings.Join(ops, ", ") + ")"},
		{"all <op> <operand>...", "Evaluate on every engine and compare"},
		{LastResultToken, "Stands for the previous result"},
		{"engine <name>", "Change engine"},
		{"engines", "List available engines"},
		{"hex", "Toggle hexadecimal display"},
		{"status", "Display current configuration"},
		{"help", "Display this help"},
		{"exit / quit", "Exit interactive mode"},
	}
}

func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	for _, line := range HelpLines() {
		fmt.Fprintf(r.out, "  %s%-22s%s - %s\n", ui.ColorYellow(), line[0], ui.ColorReset(), line[1])
	}
}

// processCommand runs one line and renders the reply. It returns false if
// the REPL should exit.
func (r *REPL) processCommand(ctx context.Context, input string) bool {
	reply := r.session.Execute(ctx, input)
	switch reply.Kind {
	case ReplyNone:
	case ReplyExit:
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	case ReplyHelp:
		r.printHelp()
	case ReplyMessage:
		fmt.Fprintf(r.out, "%s\n", reply.Message)
	case ReplyError:
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), reply.Err, ui.ColorReset())
	case ReplyResult:
		r.printResult(reply.Result)
	case ReplyComparison:
		r.printComparison(reply.Results)
	}
	return true
}

func (r *REPL) printResult(res orchestration.EvaluationResult) {
	text := FormatResultValue(res.Result, r.session.OutputBase())
	if r.session.OutputBase() == 16 && res.Result.Op != bigint.OpCompare {
		text = hexLiteral(text)
	}
	if len(text) > TruncationLimit {
		text = text[:DisplayEdges] + "..." + text[len(text)-DisplayEdges:] + " (truncated)"
	}
	fmt.Fprintf(r.out, "  %s = %s%s%s  %s[%s, %s]%s\n",
		res.Result.Op, ui.ColorGreen(), text, ui.ColorReset(),
		ui.ColorGrey(), res.Engine, displayDuration(res.Duration), ui.ColorReset())
}

func (r *REPL) printComparison(results []orchestration.EvaluationResult) {
	fmt.Fprintf(r.out, "%s─────────────────────────────────────────────%s\n", ui.ColorCyan(), ui.ColorReset())
	var first string
	var agreed *orchestration.EvaluationResult
	for i, res := range results {
		if res.Err != nil {
			fmt.Fprintf(r.out, "  %s%-8s%s: %sError - %v%s\n",
				ui.ColorYellow(), res.Engine, ui.ColorReset(), ui.ColorRed(), res.Err, ui.ColorReset())
			continue
		}
		value := res.Result.String()
		if first == "" {
			first = value
			agreed = &results[i]
		}
		status := ui.ColorGreen() + "✓" + ui.ColorReset()
		if value != first {
			status = ui.ColorRed() + "✗ INCONSISTENT" + ui.ColorReset()
		}
		fmt.Fprintf(r.out, "  %s%-8s%s: %s%12s%s %s\n",
			ui.ColorYellow(), res.Engine, ui.ColorReset(),
			ui.ColorCyan(), displayDuration(res.Duration), ui.ColorReset(), status)
	}
	fmt.Fprintf(r.out, "%s─────────────────────────────────────────────%s\n", ui.ColorCyan(), ui.ColorReset())
	if agreed != nil {
		r.printResult(*agreed)
	}
}

func hexLiteral(text string) string {
	if neg, ok := strings.CutPrefix(text, "-"); ok {
		return "-0x" + neg
	}
	return "0x" + text
}
