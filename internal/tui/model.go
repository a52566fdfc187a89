// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/sakura/internal/model"
	"github.com/verte-zerg/sakura/internal/session"
	"github.com/verte-zerg/sakura/internal/theme"
)

const (
	appTitle      = "Cherry Blossom Typing Practice"
	maxTextLines  = 6
	minTextWidth  = 20
	contentFactor = 0.70
)

// ThemeStore persists the theme flag.
type ThemeStore interface {
	SetTheme(ctx context.Context, t model.Theme) error
}

type keyMap struct {
	Start key.Binding
	Stop  key.Binding
	Theme key.Binding
	Quit  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Stop, k.Theme, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultKeys() keyMap {
	return keyMap{
		Start: key.NewBinding(key.WithKeys("ctrl+s", "enter"), key.WithHelp("ctrl+s/enter", "start")),
		Stop:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "stop/close")),
		Theme: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "theme")),
		Quit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// Model implements the Bubble Tea typing UI and presents controller snapshots.
type Model struct {
	ctrl   *session.Controller
	ticker *Ticker
	themes ThemeStore
	log    *slog.Logger

	theme   model.Theme
	palette theme.Palette
	bar     progress.Model
	help    help.Model
	keys    keyMap

	width  int
	height int

	snap      model.Session
	modal     string
	showModal bool

	unsubscribe func()
}

// NewModel subscribes a typing UI to ctrl. ticker must be the TickSource the
// controller was built with.
func NewModel(ctrl *session.Controller, ticker *Ticker, themes ThemeStore, initial model.Theme, logger *slog.Logger) *Model {
	if logger == nil {
		logger = slog.Default()
	}
	m := &Model{
		ctrl:   ctrl,
		ticker: ticker,
		themes: themes,
		log:    logger,
		help:   help.New(),
		keys:   defaultKeys(),
	}
	m.applyTheme(initial)
	m.unsubscribe = ctrl.Subscribe(m)
	return m
}

// Present implements session.Presenter.
func (m *Model) Present(s model.Session) {
	wasActive := m.snap.Status == model.StatusActive
	m.snap = s
	if wasActive && s.Status == model.StatusEnded {
		m.modal = endMessage(s.EndReason)
		m.showModal = true
	}
}

// Snapshot returns the last presented session.
func (m *Model) Snapshot() model.Session {
	return m.snap
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = m.contentWidth()
		m.help.Width = msg.Width
		return m, nil
	case tickMsg:
		if !m.ticker.accepts(msg) {
			return m, nil
		}
		m.ctrl.Tick()
		return m, m.ticker.next(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.shutdown()
		return m, tea.Quit
	}
	if m.showModal {
		if key.Matches(msg, m.keys.Stop) {
			m.showModal = false
		}
		return m, nil
	}
	if key.Matches(msg, m.keys.Theme) {
		m.toggleTheme()
		return m, nil
	}

	if m.snap.Active() {
		switch {
		case key.Matches(msg, m.keys.Stop):
			m.ctrl.Stop()
		case msg.Type == tea.KeyBackspace || msg.Type == tea.KeyDelete:
			m.handleBackspace()
		case msg.Type == tea.KeySpace:
			m.handleRunes([]rune{' '})
		case msg.Type == tea.KeyRunes:
			m.handleRunes(msg.Runes)
		}
		return m, m.ticker.cmd()
	}

	if key.Matches(msg, m.keys.Start) {
		m.ctrl.Start()
		return m, m.ticker.cmd()
	}
	return m, nil
}

func (m *Model) handleBackspace() {
	typed := []rune(m.snap.Typed)
	if len(typed) == 0 {
		return
	}
	m.ctrl.Submit(string(typed[:len(typed)-1]))
}

func (m *Model) handleRunes(runes []rune) {
	m.ctrl.Submit(m.snap.Typed + string(runes))
}

func (m *Model) toggleTheme() {
	next := theme.Toggle(m.theme)
	m.applyTheme(next)
	if m.themes == nil {
		return
	}
	if err := m.themes.SetTheme(context.Background(), next); err != nil {
		m.log.Warn("failed to save theme", "theme", string(next), "err", err)
	}
}

func (m *Model) applyTheme(t model.Theme) {
	m.palette = theme.For(t)
	m.theme = m.palette.Name
	width := m.bar.Width
	m.bar = progress.New(
		progress.WithSolidFill(m.palette.BarFull),
		progress.WithoutPercentage(),
	)
	m.bar.EmptyColor = m.palette.BarEmpty
	if width > 0 {
		m.bar.Width = width
	}
}

func (m *Model) shutdown() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
	m.ctrl.Close()
}

// View implements tea.Model.
func (m *Model) View() string {
	width := m.contentWidth()
	sections := []string{
		m.renderTitle(),
		m.renderHeader(),
		m.renderBar(),
	}
	if m.showModal {
		sections = append(sections, m.renderModal())
	} else {
		sections = append(sections, m.renderText(width))
	}
	sections = append(sections, m.renderStatus(), m.help.View(m.keys))
	content := lipgloss.NewStyle().Width(width).Render(strings.Join(sections, "\n\n"))
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) contentWidth() int {
	if m.width == 0 {
		return 60
	}
	w := int(float64(m.width) * contentFactor)
	if w < minTextWidth {
		w = minTextWidth
	}
	return w
}

func (m *Model) renderTitle() string {
	title := m.palette.Title.Render(appTitle)
	if m.snap.Title != "" {
		title += "  " + m.palette.Label.Render(m.snap.Title)
	}
	return title
}

func (m *Model) renderHeader() string {
	cells := []string{
		m.cell("Current Score", fmt.Sprintf("%d", m.snap.Score)),
		m.cell("High Score", fmt.Sprintf("%d", m.snap.HighScore)),
		m.cell("WPM", fmt.Sprintf("%d", m.snap.WPM)),
		m.cell("Accuracy", fmt.Sprintf("%d%%", m.snap.Accuracy)),
	}
	if m.snap.Mode == model.ModeWords {
		cells = append(cells, m.cell("Level", fmt.Sprintf("%d", m.snap.Level)))
	}
	cells = append(cells, m.cell("Time", fmt.Sprintf("%ds", m.snap.SecondsRemaining)))
	return strings.Join(cells, "   ")
}

func (m *Model) cell(label, value string) string {
	return m.palette.Label.Render(label) + " " + m.palette.Value.Render(value)
}

func (m *Model) renderBar() string {
	return m.bar.ViewAs(timeFraction(m.snap))
}

func (m *Model) renderText(width int) string {
	if m.snap.Target == "" {
		return m.palette.Pending.Render("Press ctrl+s to start typing...")
	}
	target := []rune(m.snap.Target)
	typed := []rune(m.snap.Typed)
	cursor := -1
	if m.snap.Active() && len(typed) < len(target) {
		cursor = len(typed)
	}
	styled := buildStyledRunes(target, typed, cursor, m.palette)
	return clipLines(wrapStyledRunes(styled, width), maxTextLines)
}

func (m *Model) renderModal() string {
	body := strings.Join([]string{
		m.palette.Title.Render("Notification"),
		m.modal,
		m.palette.Label.Render("Press ESC to close this message"),
	}, "\n\n")
	return m.palette.Modal.Render(body)
}

func (m *Model) renderStatus() string {
	if m.snap.Active() {
		return m.palette.Footer.Render("In Progress (Stop: Esc)")
	}
	return m.palette.Footer.Render("Start (Ctrl+S or Enter) · Type as fast as you can to improve your typing skills!")
}

func timeFraction(s model.Session) float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.SecondsRemaining) / float64(s.Duration)
}

func endMessage(reason model.EndReason) string {
	switch reason {
	case model.EndTimeout:
		return "Typing practice has ended!"
	case model.EndComplete:
		return "You've completed the typing practice!"
	case model.EndStopped:
		return "Game has been stopped."
	default:
		return ""
	}
}
