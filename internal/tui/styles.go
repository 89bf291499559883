package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/dhcalc/internal/ui"
)

// Style variables for the dashboard, rebuilt from the ui theme by
// initTUIStyles.
var (
	panelStyle      lipgloss.Style
	titleStyle      lipgloss.Style
	dimStyle        lipgloss.Style
	commandStyle    lipgloss.Style
	valueStyle      lipgloss.Style
	successStyle    lipgloss.Style
	errorStyle      lipgloss.Style
	metricLabel     lipgloss.Style
	metricValue     lipgloss.Style
	sparklineStyle  lipgloss.Style
	footerKeyStyle  lipgloss.Style
	footerDescStyle lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all styles from the current ui theme. Run calls it
// again after the application has chosen a theme.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text).
		Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	dimStyle = lipgloss.NewStyle().Foreground(t.Dim)
	commandStyle = lipgloss.NewStyle().Foreground(t.Accent)
	valueStyle = lipgloss.NewStyle().Foreground(t.Value)
	successStyle = lipgloss.NewStyle().Foreground(t.Success)
	errorStyle = lipgloss.NewStyle().Foreground(t.Error)
	metricLabel = lipgloss.NewStyle().Foreground(t.Dim)
	metricValue = lipgloss.NewStyle().Bold(true).Foreground(t.Text)
	sparklineStyle = lipgloss.NewStyle().Foreground(t.Accent)
	footerKeyStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	footerDescStyle = lipgloss.NewStyle().Foreground(t.Dim)
}
