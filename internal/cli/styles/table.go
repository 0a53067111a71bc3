package styles

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/linkpeek/internal/domain/entity"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Cell.
		Foreground(theme.Text)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// HistoryTableColumns returns columns for the preview journal table.
func HistoryTableColumns() []table.Column {
	return []table.Column{
		{Title: "Shown", Width: 10},
		{Title: "URL", Width: 48},
		{Title: "Outcome", Width: 8},
		{Title: "Open for", Width: 9},
		{Title: "Closed by", Width: 17},
	}
}

// HistoryRow converts a journal record to a table row.
func HistoryRow(rec *entity.PreviewRecord) table.Row {
	openFor := "open"
	if rec.ClosedAt != nil {
		openFor = FormatDuration(rec.Duration())
	}
	reason := string(rec.Reason)
	if reason == "" {
		reason = "-"
	}
	return table.Row{RelativeTime(rec.ShownAt), rec.URL, string(rec.Outcome), openFor, reason}
}
