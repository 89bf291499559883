package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/dhcalc/internal/bigint"
	"github.com/agbru/dhcalc/internal/cli"
	apperrors "github.com/agbru/dhcalc/internal/errors"
	"github.com/agbru/dhcalc/internal/format"
	"github.com/agbru/dhcalc/internal/orchestration"
)

// Layout constants for the dashboard.
const (
	headerHeight        = 1
	inputHeight         = 3
	footerHeight        = 1
	minBodyHeight       = 6
	StatsPanelWidth     = 34
	durationHistorySize = 28
	maxLogEntries       = 500
	valueEdges          = 20
)

type entryKind int

const (
	entryCommand entryKind = iota
	entryResult
	entryInfo
	entryError
)

type logEntry struct {
	kind entryKind
	text string
}

// evalDoneMsg carries the reply of a command run off the UI goroutine.
type evalDoneMsg struct {
	reply cli.Reply
}

// Model is the root bubbletea model of the dashboard.
type Model struct {
	ctx     context.Context
	session *cli.Session
	version string
	keymap  KeyMap
	input   textinput.Model

	log       []logEntry
	history   []string
	histIdx   int
	durations *RingBuffer
	evals     int
	failures  int
	total     time.Duration
	busy      bool

	width  int
	height int
}

// NewModel creates the dashboard model for a session.
func NewModel(ctx context.Context, session *cli.Session, version string) Model {
	ti := textinput.New()
	ti.Prompt = "dh> "
	ti.Placeholder = "powmod 5 6 23"
	ti.CharLimit = 0
	ti.Focus()

	return Model{
		ctx:       ctx,
		session:   session,
		version:   version,
		keymap:    DefaultKeyMap(),
		input:     ti,
		durations: NewRingBuffer(durationHistorySize),
		log:       []logEntry{{kind: entryInfo, text: "Type help for the list of commands."}},
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-8, 10)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case evalDoneMsg:
		m.busy = false
		if msg.reply.Kind == cli.ReplyExit {
			return m, tea.Quit
		}
		m.record(msg.reply)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Submit):
		line := strings.TrimSpace(m.input.Value())
		if line == "" || m.busy {
			return m, nil
		}
		m.history = append(m.history, line)
		m.histIdx = len(m.history)
		m.input.Reset()
		m.append(logEntry{kind: entryCommand, text: line})
		m.busy = true
		return m, executeCmd(m.ctx, m.session, line)

	case key.Matches(msg, m.keymap.Clear):
		m.log = nil
		return m, nil

	case key.Matches(msg, m.keymap.Prev):
		if m.histIdx > 0 {
			m.histIdx--
			m.input.SetValue(m.history[m.histIdx])
			m.input.CursorEnd()
		}
		return m, nil

	case key.Matches(msg, m.keymap.Next):
		if m.histIdx < len(m.history)-1 {
			m.histIdx++
			m.input.SetValue(m.history[m.histIdx])
			m.input.CursorEnd()
		} else {
			m.histIdx = len(m.history)
			m.input.Reset()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// executeCmd runs a command on the session. The model sets busy while it
// runs so the session is never used concurrently.
func executeCmd(ctx context.Context, session *cli.Session, line string) tea.Cmd {
	return func() tea.Msg {
		return evalDoneMsg{reply: session.Execute(ctx, line)}
	}
}

func (m *Model) append(entries ...logEntry) {
	m.log = append(m.log, entries...)
	if over := len(m.log) - maxLogEntries; over > 0 {
		m.log = m.log[over:]
	}
}

// record turns a reply into log entries and updates the statistics.
func (m *Model) record(reply cli.Reply) {
	switch reply.Kind {
	case cli.ReplyNone:
	case cli.ReplyHelp:
		for _, l := range cli.HelpLines() {
			m.append(logEntry{kind: entryInfo, text: fmt.Sprintf("%-22s %s", l[0], l[1])})
		}
	case cli.ReplyMessage:
		for _, l := range strings.Split(reply.Message, "\n") {
			m.append(logEntry{kind: entryInfo, text: l})
		}
	case cli.ReplyError:
		m.failures++
		m.append(logEntry{kind: entryError, text: "✗ " + reply.Err.Error()})
	case cli.ReplyResult:
		m.observe(reply.Result)
		m.append(logEntry{kind: entryResult, text: m.describe(reply.Result)})
	case cli.ReplyComparison:
		var first string
		for _, r := range reply.Results {
			if r.Err != nil {
				m.failures++
				m.append(logEntry{kind: entryError, text: fmt.Sprintf("✗ %s: %v", r.Engine, r.Err)})
				continue
			}
			m.observe(r)
			text := m.describe(r)
			if first == "" {
				first = r.Result.String()
			} else if r.Result.String() != first {
				text += "  ✗ INCONSISTENT"
			}
			m.append(logEntry{kind: entryResult, text: text})
		}
	}
}

func (m *Model) observe(r orchestration.EvaluationResult) {
	m.evals++
	m.total += r.Duration
	m.durations.Push(float64(r.Duration))
}

func (m *Model) describe(r orchestration.EvaluationResult) string {
	text := cli.FormatResultValue(r.Result, m.session.OutputBase())
	if r.Result.Op != bigint.OpCompare {
		text = format.Truncate(text, valueEdges)
	}
	return fmt.Sprintf("%s = %s  [%s, %s]", r.Result.Op, text, r.Engine, format.FormatExecutionDuration(r.Duration))
}

// View renders the entire dashboard.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	bodyHeight := max(m.height-headerHeight-inputHeight-footerHeight, minBodyHeight)
	statsWidth := min(StatsPanelWidth, m.width/2)
	logWidth := m.width - statsWidth

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderLog(logWidth, bodyHeight),
		m.renderStats(statsWidth, bodyHeight))

	input := panelStyle.Width(m.width - 2).Render(m.input.View())

	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), body, input, m.renderFooter())
}

func (m Model) renderHeader() string {
	status := successStyle.Render("ready")
	if m.busy {
		status = valueStyle.Render("evaluating…")
	}
	return fmt.Sprintf("%s %s  engine %s  %s",
		titleStyle.Render("dhcalc"), dimStyle.Render(m.version),
		commandStyle.Render(string(m.session.Engine())), status)
}

func (m Model) renderLog(width, height int) string {
	inner := height - 2
	start := max(len(m.log)-inner, 0)
	lines := make([]string, 0, inner)
	for _, e := range m.log[start:] {
		text := e.text
		if limit := width - 4; limit > 1 && lipgloss.Width(text) > limit {
			text = string([]rune(text)[:limit-1]) + "…"
		}
		switch e.kind {
		case entryCommand:
			lines = append(lines, commandStyle.Render("› "+text))
		case entryResult:
			lines = append(lines, valueStyle.Render(text))
		case entryError:
			lines = append(lines, errorStyle.Render(text))
		default:
			lines = append(lines, dimStyle.Render(text))
		}
	}
	return panelStyle.Width(width - 2).Height(inner).Render(strings.Join(lines, "\n"))
}

func (m Model) renderStats(width, height int) string {
	mean := "-"
	if m.evals > 0 {
		mean = format.FormatExecutionDuration(m.total / time.Duration(m.evals))
	}
	last := "-"
	if samples := m.durations.Slice(); len(samples) > 0 {
		last = format.FormatExecutionDuration(time.Duration(samples[len(samples)-1]))
	}
	lastValue := "none"
	if r, ok := m.session.Last(); ok {
		lastValue = format.Fingerprint(r.Value.Text(10))
	}

	row := func(label, value string) string {
		return metricLabel.Render(fmt.Sprintf("%-12s", label)) + metricValue.Render(value)
	}
	lines := []string{
		titleStyle.Render("Statistics"),
		row("evaluations", fmt.Sprint(m.evals)),
		row("failures", fmt.Sprint(m.failures)),
		row("last", last),
		row("mean", mean),
		row("$ digest", lastValue),
		"",
		sparklineStyle.Render(RenderSparkline(m.durations.Slice())),
	}
	return panelStyle.Width(width - 2).Height(height - 2).Render(strings.Join(lines, "\n"))
}

func (m Model) renderFooter() string {
	parts := make([]string, 0, len(m.keymap.ShortHelp()))
	for _, b := range m.keymap.ShortHelp() {
		h := b.Help()
		parts = append(parts, footerKeyStyle.Render(h.Key)+" "+footerDescStyle.Render(h.Desc))
	}
	return strings.Join(parts, "  ")
}

// Run is the public entry point for the TUI mode. It runs the program until
// the user quits or ctx is canceled.
func Run(ctx context.Context, config cli.SessionConfig, version string) int {
	initTUIStyles()

	model := NewModel(ctx, cli.NewSession(config), version)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return apperrors.ExitErrorCanceled
		}
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}
