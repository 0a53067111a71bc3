package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/linkpeek/internal/infrastructure/host"
)

// SettingsRenderer renders a recorded settings tab.
type SettingsRenderer struct {
	theme *Theme
}

// NewSettingsRenderer creates a settings renderer.
func NewSettingsRenderer(theme *Theme) *SettingsRenderer {
	return &SettingsRenderer{theme: theme}
}

// Render lists every widget with its current value.
func (r *SettingsRenderer) Render(widgets []host.Widget) string {
	var sb strings.Builder
	for _, w := range widgets {
		switch w.Kind {
		case host.WidgetHeading:
			sb.WriteString("\n  " + r.theme.Title.Render(w.Name) + "\n\n")
		case host.WidgetToggle:
			icon := IconCheckboxEmpty
			if w.Value == "true" {
				icon = IconCheckboxChecked
			}
			sb.WriteString(r.line(lipgloss.NewStyle().Foreground(r.theme.Accent).Render(icon), w))
		default:
			sb.WriteString(r.line(r.theme.Subtle.Render(IconCursor), w))
		}
	}
	return sb.String()
}

func (r *SettingsRenderer) line(icon string, w host.Widget) string {
	value := r.theme.Highlight.Render(w.Value)
	if len(w.Options) > 0 {
		var opts []string
		for _, o := range w.Options {
			opts = append(opts, o.Value)
		}
		value += r.theme.Subtle.Render(" (" + strings.Join(opts, "|") + ")")
	}
	return fmt.Sprintf("  %s %s %s\n      %s\n",
		icon,
		r.theme.Normal.Width(20).Render(w.Name),
		value,
		r.theme.Subtle.Render(w.Desc),
	)
}

// RenderUpdated confirms a changed setting.
func (r *SettingsRenderer) RenderUpdated(name, value string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("  %s %s = %s\n", iconStyle.Render(IconCheck), r.theme.Normal.Render(name), r.theme.Highlight.Render(value))
}
