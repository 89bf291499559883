package cli

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/agbru/dhcalc/internal/bigint"
	"github.com/agbru/dhcalc/internal/orchestration"
)

// LastResultToken stands for the previous result in an interactive command.
const LastResultToken = "$"

// SessionConfig holds the settings of an interactive session.
type SessionConfig struct {
	// DefaultEngine is the engine used first; "" or "all" picks the first
	// available one.
	DefaultEngine string
	// Engines are the available engines, in priority order.
	Engines []bigint.EngineName
	// Factory builds one facade per engine.
	Factory orchestration.EngineFactory
	// Timeout bounds each evaluation.
	Timeout time.Duration
	// MaxBits is the operand and pow result size guard.
	MaxBits int
	// Base is the input base of operands.
	Base int
	// HexOutput displays results in hexadecimal.
	HexOutput bool
}

// ReplyKind classifies the outcome of a session command.
type ReplyKind int

const (
	// ReplyNone means nothing to display (blank line).
	ReplyNone ReplyKind = iota
	// ReplyResult carries a single evaluation.
	ReplyResult
	// ReplyComparison carries one evaluation per engine.
	ReplyComparison
	// ReplyMessage carries informational text.
	ReplyMessage
	// ReplyError carries a usage or evaluation error.
	ReplyError
	// ReplyHelp asks the front end to show its help.
	ReplyHelp
	// ReplyExit ends the session.
	ReplyExit
)

// Reply is the outcome of Session.Execute, rendered by the REPL or the TUI.
type Reply struct {
	Kind    ReplyKind
	Result  orchestration.EvaluationResult
	Results []orchestration.EvaluationResult
	Message string
	Err     error
}

// Session evaluates interactive commands against a current engine and keeps
// the last result for reuse as $.
//
// Grammar, one command per line:
//
//	<op> <operand>...     evaluate on the current engine
//	all <op> <operand>... evaluate on every engine and compare
//	engine <name>         switch engine
//	engines               list engines
//	hex                   toggle hexadecimal output
//	status                show settings
//	help | exit
type Session struct {
	config  SessionConfig
	current bigint.EngineName
	facades map[bigint.EngineName]*bigint.Math
	last    *bigint.Result
}

// NewSession creates a session on the configured default engine.
func NewSession(config SessionConfig) *Session {
	current := bigint.EngineName(config.DefaultEngine)
	if current == "" || current == "all" || !slices.Contains(config.Engines, current) {
		if len(config.Engines) > 0 {
			current = config.Engines[0]
		}
	}
	return &Session{
		config:  config,
		current: current,
		facades: make(map[bigint.EngineName]*bigint.Math),
	}
}

// Engine returns the current engine.
func (s *Session) Engine() bigint.EngineName { return s.current }

// Config returns the session settings.
func (s *Session) Config() SessionConfig { return s.config }

// OutputBase returns the base results are displayed in.
func (s *Session) OutputBase() int {
	if s.config.HexOutput {
		return 16
	}
	return 10
}

// Last returns the previous successful result, if any.
func (s *Session) Last() (bigint.Result, bool) {
	if s.last == nil {
		return bigint.Result{}, false
	}
	return *s.last, true
}

// Execute runs one command line.
func (s *Session) Execute(ctx context.Context, line string) Reply {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return Reply{Kind: ReplyNone}
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "engine", "e":
		return s.cmdEngine(args)
	case "engines", "ls":
		return Reply{Kind: ReplyMessage, Message: s.engineList()}
	case "hex":
		s.config.HexOutput = !s.config.HexOutput
		status := "disabled"
		if s.config.HexOutput {
			status = "enabled"
		}
		return Reply{Kind: ReplyMessage, Message: "Hexadecimal display: " + status}
	case "status", "st":
		return Reply{Kind: ReplyMessage, Message: s.status()}
	case "help", "h", "?":
		return Reply{Kind: ReplyHelp}
	case "exit", "quit", "q":
		return Reply{Kind: ReplyExit}
	case "all":
		if len(args) == 0 {
			return usage("all <op> <operand>...")
		}
		return s.compare(ctx, args[0], args[1:])
	default:
		if _, ok := bigint.ParseOp(cmd); !ok {
			return Reply{Kind: ReplyError, Err: fmt.Errorf("unknown command: %s (type help to see available commands)", cmd)}
		}
		return s.evaluate(ctx, cmd, args)
	}
}

func usage(u string) Reply {
	return Reply{Kind: ReplyError, Err: fmt.Errorf("usage: %s", u)}
}

func (s *Session) cmdEngine(args []string) Reply {
	if len(args) == 0 {
		return usage("engine <name> (" + s.engineNames() + ")")
	}
	name, ok := bigint.ParseEngineName(args[0])
	if !ok || !slices.Contains(s.config.Engines, name) {
		return Reply{Kind: ReplyError, Err: fmt.Errorf("engine %q is not available (available: %s)", args[0], s.engineNames())}
	}
	s.current = name
	return Reply{Kind: ReplyMessage, Message: "Engine changed to: " + string(name)}
}

func (s *Session) engineNames() string {
	names := make([]string, len(s.config.Engines))
	for i, e := range s.config.Engines {
		names[i] = string(e)
	}
	return strings.Join(names, ", ")
}

func (s *Session) engineList() string {
	var b strings.Builder
	b.WriteString("Available engines:")
	for _, e := range s.config.Engines {
		marker := "  "
		if e == s.current {
			marker = "► "
		}
		fmt.Fprintf(&b, "\n%s%s", marker, e)
	}
	return b.String()
}

func (s *Session) status() string {
	hex := "no"
	if s.config.HexOutput {
		hex = "yes"
	}
	last := "none"
	if s.last != nil {
		last = FormatResultValue(*s.last, s.OutputBase())
	}
	return fmt.Sprintf("Engine:      %s\nTimeout:     %s\nInput base:  %d\nMax bits:    %d\nHexadecimal: %s\nLast ($):    %s",
		s.current, s.config.Timeout, s.config.Base, s.config.MaxBits, hex, last)
}

// request substitutes $ and builds the orchestration request.
func (s *Session) request(op string, operands []string) (orchestration.Request, error) {
	resolved := make([]string, len(operands))
	for i, o := range operands {
		if o != LastResultToken {
			resolved[i] = o
			continue
		}
		if s.last == nil || s.last.Op == bigint.OpCompare {
			return orchestration.Request{}, fmt.Errorf("%s has no value: evaluate an arithmetic operation first", LastResultToken)
		}
		base := s.config.Base
		if base == 0 {
			base = 10
		}
		resolved[i] = s.last.Value.Text(base)
	}
	return orchestration.Request{
		Op:       op,
		Operands: resolved,
		Base:     s.config.Base,
		MaxBits:  s.config.MaxBits,
		Timeout:  s.config.Timeout,
	}, nil
}

func (s *Session) facade(name bigint.EngineName) (*bigint.Math, error) {
	if m, ok := s.facades[name]; ok {
		return m, nil
	}
	m, err := s.config.Factory(name)
	if err != nil {
		return nil, err
	}
	s.facades[name] = m
	return m, nil
}

func (s *Session) evaluate(ctx context.Context, op string, operands []string) Reply {
	req, err := s.request(op, operands)
	if err != nil {
		return Reply{Kind: ReplyError, Err: err}
	}
	m, err := s.facade(s.current)
	if err != nil {
		return Reply{Kind: ReplyError, Err: err}
	}

	start := time.Now()
	res, err := orchestration.Evaluate(ctx, m, req)
	evaluation := orchestration.EvaluationResult{Engine: s.current, Result: res, Duration: time.Since(start), Err: err}
	if err != nil {
		return Reply{Kind: ReplyError, Result: evaluation, Err: err}
	}
	s.remember(res)
	return Reply{Kind: ReplyResult, Result: evaluation}
}

func (s *Session) compare(ctx context.Context, op string, operands []string) Reply {
	req, err := s.request(op, operands)
	if err != nil {
		return Reply{Kind: ReplyError, Err: err}
	}
	results := orchestration.ExecuteAcrossEngines(ctx, s.config.Engines, s.config.Factory, req,
		orchestration.NullProgressReporter{}, io.Discard)
	for _, r := range results {
		if r.Err == nil {
			s.remember(r.Result)
			break
		}
	}
	return Reply{Kind: ReplyComparison, Results: results}
}

func (s *Session) remember(res bigint.Result) {
	if res.Op != bigint.OpCompare {
		s.last = &res
	}
}
