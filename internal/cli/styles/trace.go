package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/linkpeek/internal/bootstrap"
)

// TraceRenderer renders a simulation trace as a timeline.
type TraceRenderer struct {
	theme *Theme
}

// NewTraceRenderer creates a trace renderer.
func NewTraceRenderer(theme *Theme) *TraceRenderer {
	return &TraceRenderer{theme: theme}
}

// Render renders every entry on its own line.
func (r *TraceRenderer) Render(entries []bootstrap.TraceEntry) string {
	if len(entries) == 0 {
		return r.theme.Subtle.Render("  (empty trace)")
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, r.RenderEntry(e))
	}
	return strings.Join(lines, "\n")
}

// RenderEntry renders one trace line.
func (r *TraceRenderer) RenderEntry(e bootstrap.TraceEntry) string {
	offset := r.theme.Subtle.Width(9).Align(lipgloss.Right).Render(FormatDuration(e.Offset))

	if e.Source == bootstrap.SourceStep {
		icon := IconPointer
		if strings.HasPrefix(e.Kind, "key") {
			icon = IconKeyboard
		}
		return fmt.Sprintf("%s  %s %s %s",
			offset,
			r.theme.Subtle.Render(icon),
			r.theme.Subtitle.Width(11).Render(e.Kind),
			r.theme.Subtle.Render(e.Detail),
		)
	}

	kind := r.theme.EventStyle(e.Kind).Width(11).Render(e.Kind)
	var detail []string
	if e.PreviewID != "" {
		detail = append(detail, r.theme.Subtle.Render(shortID(e.PreviewID)))
	}
	if e.URL != "" {
		detail = append(detail, r.theme.Normal.Render(e.URL))
	}
	if e.Placement != nil {
		side := "below"
		if e.Placement.PlacedAbove {
			side = "above"
		}
		detail = append(detail, r.theme.Subtle.Render(e.Placement.Rect.String()+" "+side))
	}
	if e.Reason != "" {
		detail = append(detail, r.theme.WarningStyle.Render(string(e.Reason)))
	}
	if e.Err != "" {
		detail = append(detail, r.theme.ErrorStyle.Render(e.Err))
	}
	return fmt.Sprintf("%s  %s %s %s",
		offset,
		r.theme.Highlight.Render(IconEye),
		kind,
		strings.Join(detail, " "),
	)
}

// RenderSummary renders a one-line count of preview events.
func (r *TraceRenderer) RenderSummary(entries []bootstrap.TraceEntry) string {
	counts := map[string]int{}
	for _, e := range entries {
		if e.Source == bootstrap.SourcePreview {
			counts[e.Kind]++
		}
	}
	return fmt.Sprintf("  %s shown, %s ready, %s failed, %s closed",
		r.theme.Highlight.Render(fmt.Sprint(counts["shown"])),
		r.theme.SuccessStyle.Render(fmt.Sprint(counts["ready"])),
		r.theme.ErrorStyle.Render(fmt.Sprint(counts["failed"])),
		r.theme.Subtle.Render(fmt.Sprint(counts["closed"])),
	)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
