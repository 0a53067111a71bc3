// Package styles renders linkpeek's terminal output with lipgloss.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette holds the hex colors a Theme derives its styles from.
type Palette struct {
	Text    string
	Muted   string
	Accent  string
	Border  string
	Ink     string // text drawn on accent backgrounds
	Error   string
	Warning string
	Success string
}

// NightPalette is the default palette, tuned for dark terminals.
var NightPalette = Palette{
	Text:    "#e6e6e6",
	Muted:   "#8a8f98",
	Accent:  "#7aa2f7",
	Border:  "#3b4048",
	Ink:     "#16161e",
	Error:   "#f7768e",
	Warning: "#e0af68",
	Success: "#9ece6a",
}

// Theme is the set of styles every renderer draws with.
type Theme struct {
	Text    lipgloss.Color
	Accent  lipgloss.Color
	Border  lipgloss.Color
	Error   lipgloss.Color
	Success lipgloss.Color

	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style
	Badge        lipgloss.Style
	HelpKey      lipgloss.Style
	HelpDesc     lipgloss.Style
	Box          lipgloss.Style
	BoxHeader    lipgloss.Style
}

// NewTheme builds the default theme.
func NewTheme() *Theme {
	return NewThemeFromPalette(NightPalette)
}

func NewThemeFromPalette(p Palette) *Theme {
	fg := func(hex string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	}

	t := &Theme{
		Text:    lipgloss.Color(p.Text),
		Accent:  lipgloss.Color(p.Accent),
		Border:  lipgloss.Color(p.Border),
		Error:   lipgloss.Color(p.Error),
		Success: lipgloss.Color(p.Success),

		Normal:       fg(p.Text),
		Subtle:       fg(p.Muted),
		Title:        fg(p.Text).Bold(true),
		Subtitle:     fg(p.Muted).Bold(true),
		Highlight:    fg(p.Accent).Bold(true),
		ErrorStyle:   fg(p.Error),
		WarningStyle: fg(p.Warning),
		SuccessStyle: fg(p.Success),
		HelpKey:      fg(p.Accent),
		HelpDesc:     fg(p.Muted),
	}
	t.Badge = lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.Ink)).
		Background(t.Accent).
		Padding(0, 1)
	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)
	t.BoxHeader = t.Title.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(t.Border).
		MarginBottom(1)
	return t
}

// EventStyle colors a preview event kind in traces and history.
func (t *Theme) EventStyle(kind string) lipgloss.Style {
	switch kind {
	case "shown", "ready", "loaded":
		return t.SuccessStyle
	case "failed":
		return t.ErrorStyle
	case "cancelled", "closed":
		return t.WarningStyle
	}
	return t.Normal
}
