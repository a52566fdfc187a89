// Package theme maps the persisted theme flag to terminal styles.
package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/sakura/internal/model"
)

// Palette is the set of styles used by the typing view.
type Palette struct {
	Name      model.Theme
	Title     lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Correct   lipgloss.Style
	Incorrect lipgloss.Style
	Pending   lipgloss.Style
	Cursor    lipgloss.Style
	Footer    lipgloss.Style
	Modal     lipgloss.Style
	BarFull   string
	BarEmpty  string
}

// For returns the palette of t. Unknown values fall back to light.
func For(t model.Theme) Palette {
	if t == model.ThemeDark {
		return dark
	}
	return light
}

// Toggle returns the other theme.
func Toggle(t model.Theme) model.Theme {
	if t == model.ThemeDark {
		return model.ThemeLight
	}
	return model.ThemeDark
}

// Parse validates a theme name.
func Parse(name string) (model.Theme, error) {
	switch model.Theme(strings.ToLower(strings.TrimSpace(name))) {
	case model.ThemeLight:
		return model.ThemeLight, nil
	case model.ThemeDark:
		return model.ThemeDark, nil
	default:
		return "", fmt.Errorf("unknown theme %q (want light or dark)", name)
	}
}

var light = newPalette(model.ThemeLight, palette{
	accent:    "#DB2777",
	label:     "#6B7280",
	text:      "#111827",
	correct:   "#16A34A",
	incorrect: "#DC2626",
	pending:   "#9CA3AF",
	border:    "#F9A8D4",
	barEmpty:  "#E5E7EB",
})

var dark = newPalette(model.ThemeDark, palette{
	accent:    "#F472B6",
	label:     "#9CA3AF",
	text:      "#F3F4F6",
	correct:   "#4ADE80",
	incorrect: "#F87171",
	pending:   "#6B7280",
	border:    "#BE185D",
	barEmpty:  "#374151",
})

type palette struct {
	accent, label, text, correct, incorrect, pending, border, barEmpty string
}

func newPalette(name model.Theme, p palette) Palette {
	pending := lipgloss.NewStyle().Foreground(lipgloss.Color(p.pending))
	return Palette{
		Name:      name,
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.accent)).Bold(true),
		Label:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.label)),
		Value:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.accent)).Bold(true),
		Correct:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.correct)),
		Incorrect: lipgloss.NewStyle().Foreground(lipgloss.Color(p.incorrect)),
		Pending:   pending,
		Cursor:    pending.Underline(true),
		Footer:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.label)),
		Modal: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.text)).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color(p.border)).
			Padding(1, 2),
		BarFull:  p.accent,
		BarEmpty: p.barEmpty,
	}
}
