package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/linkpeek/internal/domain/build"
)

// AboutDetails is the runtime part of the version screen.
type AboutDetails struct {
	Engine       string
	ConfigPath   string
	DatabasePath string
}

// AboutRenderer renders the version screen: a small preview-panel glyph
// next to build and runtime facts.
type AboutRenderer struct {
	theme *Theme
}

func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

func (r *AboutRenderer) Render(info build.Info, details AboutDetails) string {
	glyph := lipgloss.NewStyle().
		Foreground(r.theme.Accent).
		MarginLeft(2).
		MarginTop(1).
		Render("┌───┐\n│ ▔ │\n└─┬─┘\n  ↖")

	version := info.Version
	if info.Dev() {
		version += r.theme.Subtle.Render(" (development build)")
	}

	rows := [][3]string{
		{IconVersion, "version", version},
		{IconGitBranch, "commit", info.Commit},
		{IconCalendar, "built", info.BuildDate},
		{IconGo, "go", info.GoVersion},
		{IconEye, "engine", details.Engine},
		{IconConfig, "config", details.ConfigPath},
		{IconDatabase, "database", details.DatabasePath},
	}

	icon := lipgloss.NewStyle().Foreground(r.theme.Accent)
	key := r.theme.Subtle.Width(9)
	lines := make([]string, 0, len(rows)+2)
	for _, row := range rows {
		if row[2] == "" {
			continue
		}
		lines = append(lines, icon.Render(row[0])+" "+key.Render(row[1])+r.theme.Highlight.Render(row[2]))
	}
	lines = append(lines, "", icon.Render(IconGithub)+" "+r.theme.Subtle.Render(build.RepoURL))

	return lipgloss.JoinHorizontal(lipgloss.Top, glyph, "   ", strings.Join(lines, "\n"))
}
