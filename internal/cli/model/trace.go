// Package model holds the bubbletea models behind interactive commands.
package model

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/linkpeek/internal/bootstrap"
	"github.com/bnema/linkpeek/internal/cli/styles"
)

const (
	headerHeight = 2
	footerHeight = 2
)

type traceKeyMap struct {
	Quit key.Binding
	Top  key.Binding
	End  key.Binding
}

var traceKeys = traceKeyMap{
	Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	Top:  key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
	End:  key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
}

// TraceModel shows a simulation trace in a scrollable viewport.
type TraceModel struct {
	title    string
	entries  []bootstrap.TraceEntry
	theme    *styles.Theme
	renderer *styles.TraceRenderer

	view  viewport.Model
	ready bool
}

// NewTraceModel creates a trace viewer.
func NewTraceModel(theme *styles.Theme, title string, entries []bootstrap.TraceEntry) TraceModel {
	return TraceModel{
		title:    title,
		entries:  entries,
		theme:    theme,
		renderer: styles.NewTraceRenderer(theme),
	}
}

// Init implements tea.Model.
func (m TraceModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m TraceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		bodyHeight := max(msg.Height-headerHeight-footerHeight, 1)
		if !m.ready {
			m.view = viewport.New(msg.Width, bodyHeight)
			m.ready = true
		} else {
			m.view.Width = msg.Width
			m.view.Height = bodyHeight
		}
		m.view.SetContent(m.renderer.Render(m.entries))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, traceKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, traceKeys.Top):
			m.view.GotoTop()
			return m, nil
		case key.Matches(msg, traceKeys.End):
			m.view.GotoBottom()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m TraceModel) View() string {
	if !m.ready {
		return "\n  Loading trace..."
	}
	header := m.theme.BoxHeader.Width(m.view.Width).Render(m.title)
	footer := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderer.RenderSummary(m.entries),
		m.theme.Subtle.Render(fmt.Sprintf("   %3.0f%%  ", m.view.ScrollPercent()*100)),
		m.theme.HelpKey.Render("q"), m.theme.HelpDesc.Render(" quit  "),
		m.theme.HelpKey.Render("g/G"), m.theme.HelpDesc.Render(" top/bottom"),
	)
	return lipgloss.JoinVertical(lipgloss.Left, header, m.view.View(), footer)
}
