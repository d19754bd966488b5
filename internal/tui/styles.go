package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/hexcalc/internal/ui"
)

// Style variables for the TUI dashboard.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle       lipgloss.Style
	titleStyle       lipgloss.Style
	elapsedStyle     lipgloss.Style
	bitsStyle        lipgloss.Style
	attemptsStyle    lipgloss.Style
	statusRunStyle   lipgloss.Style
	statusFoundStyle lipgloss.Style
	statusErrStyle   lipgloss.Style
	sysmonStyle      lipgloss.Style
	footerStyle      lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all TUI styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	elapsedStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	bitsStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	attemptsStyle = lipgloss.NewStyle().
		Foreground(t.Text)

	statusRunStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	statusFoundStyle = lipgloss.NewStyle().
		Foreground(t.Success).
		Bold(true)

	statusErrStyle = lipgloss.NewStyle().
		Foreground(t.Error).
		Bold(true)

	sysmonStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	footerStyle = lipgloss.NewStyle().
		Foreground(t.Dim)
}
