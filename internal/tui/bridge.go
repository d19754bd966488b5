package tui

import (
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/hexcalc/internal/search"
)

// programRef is a shared reference to the tea.Program.
// Because bubbletea copies the model on every Update, we need a pointer
// that survives copies so the bridge goroutines can send messages.
type programRef struct {
	mu      sync.RWMutex
	program *tea.Program
}

// SetProgram sets the tea.Program reference (thread-safe).
func (r *programRef) SetProgram(p *tea.Program) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

// Send sends a message to the bubbletea program (thread-safe).
func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// SearchUpdateMsg carries one search progress update into the TUI.
type SearchUpdateMsg struct {
	Update search.Update
}

// ProgressDoneMsg signals that the update channel has been closed.
type ProgressDoneMsg struct{}

// ResultsMsg carries the final search results into the TUI.
type ResultsMsg struct {
	Results []search.Result
}

// TUIProgressReporter implements search.ProgressReporter.
// It drains the update channel and forwards updates as bubbletea messages.
type TUIProgressReporter struct {
	ref *programRef
}

// Verify interface compliance.
var _ search.ProgressReporter = (*TUIProgressReporter)(nil)

// DisplayProgress drains the update channel and sends SearchUpdateMsg to the TUI.
func (t *TUIProgressReporter) DisplayProgress(wg *sync.WaitGroup, updates <-chan search.Update, _ int, _ io.Writer) {
	defer wg.Done()

	for u := range updates {
		t.ref.Send(SearchUpdateMsg{Update: u})
	}
	t.ref.Send(ProgressDoneMsg{})
}
