package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type tickMsg struct {
	gen int
}

// Ticker is a session.TickSource backed by tea.Tick. Each Start or Stop bumps
// a generation number; ticks from an older generation are dropped, so a
// stopped session never sees a late tick.
type Ticker struct {
	interval time.Duration
	gen      int
	running  bool
	pending  bool
}

// NewTicker returns a Ticker firing every interval.
func NewTicker(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = time.Second
	}
	return &Ticker{interval: interval}
}

// Start implements session.TickSource.
func (t *Ticker) Start() {
	t.gen++
	t.running = true
	t.pending = true
}

// Stop implements session.TickSource.
func (t *Ticker) Stop() {
	t.gen++
	t.running = false
	t.pending = false
}

// cmd returns the first tick of a freshly started generation.
func (t *Ticker) cmd() tea.Cmd {
	if !t.pending {
		return nil
	}
	t.pending = false
	return t.schedule()
}

func (t *Ticker) accepts(msg tickMsg) bool {
	return t.running && msg.gen == t.gen
}

// next schedules the following tick if msg's generation is still live.
func (t *Ticker) next(msg tickMsg) tea.Cmd {
	if !t.accepts(msg) {
		return nil
	}
	return t.schedule()
}

func (t *Ticker) schedule() tea.Cmd {
	gen := t.gen
	return tea.Tick(t.interval, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}
