package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/hexcalc/internal/config"
	apperrors "github.com/agbru/hexcalc/internal/errors"
	"github.com/agbru/hexcalc/internal/format"
	"github.com/agbru/hexcalc/internal/search"
	"github.com/agbru/hexcalc/internal/sysmon"
)

// searchRow is the display state of one brute-force search.
type searchRow struct {
	bits     int
	attempts uint64
	found    bool
	duration time.Duration
	err      error
}

// TickMsg drives the elapsed-time display and system stat sampling.
type TickMsg time.Time

// SysStatsMsg carries a system-wide CPU and memory sample.
type SysStatsMsg struct {
	sysmon.Stats
}

// Model is the root bubbletea model for the search dashboard.
type Model struct {
	rows    []searchRow
	keymap  KeyMap
	version string

	width  int
	height int

	started  time.Time
	elapsed  time.Duration
	sys      SysStatsMsg
	done     bool
	exitCode int

	ctx    context.Context
	cancel context.CancelFunc
	ref    *programRef
	runner func(context.Context, search.ProgressReporter) []search.Result
}

// NewModel creates a new dashboard model. The runner callback executes the
// searches; it is invoked once from Init and its results are delivered back
// as a ResultsMsg.
func NewModel(parentCtx context.Context, cfg config.AppConfig, version string,
	runner func(context.Context, search.ProgressReporter) []search.Result) Model {

	rows := make([]searchRow, len(cfg.BitLengths))
	for i, bits := range cfg.BitLengths {
		rows[i] = searchRow{bits: bits}
	}

	ctx, cancel := context.WithCancel(parentCtx)

	return Model{
		rows:     rows,
		keymap:   DefaultKeyMap(),
		version:  version,
		started:  time.Now(),
		exitCode: apperrors.ExitSuccess,
		ctx:      ctx,
		cancel:   cancel,
		ref:      &programRef{},
		runner:   runner,
	}
}

// Init starts the search goroutine and the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(startSearchCmd(m.ref, m.ctx, m.runner), tickCmd(), sampleSysStatsCmd())
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.Quit) {
			m.cancel()
			if !m.done {
				m.exitCode = apperrors.ExitErrorCanceled
			}
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case SearchUpdateMsg:
		u := msg.Update
		if u.Index >= 0 && u.Index < len(m.rows) {
			m.rows[u.Index].attempts = u.Attempts
			if u.Found {
				m.rows[u.Index].found = true
				m.rows[u.Index].duration = time.Since(m.started)
			}
		}

	case ResultsMsg:
		for i, res := range msg.Results {
			if i >= len(m.rows) {
				break
			}
			m.rows[i].attempts = res.Attempts
			m.rows[i].found = res.Err == nil
			m.rows[i].duration = res.Duration
			m.rows[i].err = res.Err
		}
		m.done = true
		m.exitCode = exitCodeFor(msg.Results)

	case TickMsg:
		if !m.done {
			m.elapsed = time.Since(m.started)
			return m, tea.Batch(tickCmd(), sampleSysStatsCmd())
		}

	case SysStatsMsg:
		m.sys = msg
	}

	return m, nil
}

// View renders the dashboard: a title line, one row per search, a system
// stats line, and a footer with the key bindings.
func (m Model) View() string {
	var b strings.Builder

	title := titleStyle.Render("hexcalc key search")
	if m.version != "" {
		title += sysmonStyle.Render(" " + m.version)
	}
	b.WriteString(title)
	b.WriteString("  ")
	b.WriteString(elapsedStyle.Render(format.Duration(m.elapsed)))
	b.WriteString("\n\n")

	for _, row := range m.rows {
		b.WriteString(m.renderRow(row))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(sysmonStyle.Render(m.sys.String()))
	b.WriteString("\n")

	if m.done {
		b.WriteString(footerStyle.Render("done, press q to exit"))
	} else {
		b.WriteString(footerStyle.Render("q quit"))
	}
	b.WriteString("\n")

	return panelStyle.Render(b.String())
}

func (m Model) renderRow(row searchRow) string {
	bits := bitsStyle.Render(fmt.Sprintf("%4d-bit", row.bits))
	attempts := attemptsStyle.Render(fmt.Sprintf("%15s attempts", format.Attempts(row.attempts)))

	var status string
	switch {
	case row.err != nil:
		status = statusErrStyle.Render(fmt.Sprintf("✗ %v", row.err))
	case row.found:
		status = statusFoundStyle.Render(fmt.Sprintf("✓ found in %s", format.Duration(row.duration)))
	default:
		status = statusRunStyle.Render("searching")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, bits, "  ", attempts, "  ", status)
}

// exitCodeFor maps a result set to a process exit code.
func exitCodeFor(results []search.Result) int {
	for _, res := range results {
		if res.Err == nil {
			continue
		}
		if apperrors.IsContextError(res.Err) {
			return apperrors.ExitErrorTimeout
		}
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// Run is the public entry point for the TUI mode.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(ctx context.Context, cfg config.AppConfig, searcher *search.Searcher, version string) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	runner := func(ctx context.Context, reporter search.ProgressReporter) []search.Result {
		return searcher.Run(ctx, cfg.BitLengths, reporter, io.Discard)
	}
	model := NewModel(ctx, cfg, version, runner)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	// Inject the program reference before running so bridge goroutines can Send.
	model.ref.SetProgram(p)

	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}

	if m, ok := finalModel.(Model); ok {
		m.cancel()
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// startSearchCmd returns a tea.Cmd that launches the searches and reports
// the results back to the program.
func startSearchCmd(ref *programRef, ctx context.Context,
	runner func(context.Context, search.ProgressReporter) []search.Result) tea.Cmd {
	return func() tea.Msg {
		reporter := &TUIProgressReporter{ref: ref}
		results := runner(ctx, reporter)
		return ResultsMsg{Results: results}
	}
}

// tickCmd returns a command that sends a TickMsg after 500ms.
func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleSysStatsCmd reads system-wide CPU and memory stats.
func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		return SysStatsMsg{Stats: sysmon.Sample()}
	}
}
