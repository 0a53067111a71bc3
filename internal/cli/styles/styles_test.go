package styles_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/linkpeek/internal/bootstrap"
	"github.com/bnema/linkpeek/internal/cli/styles"
	"github.com/bnema/linkpeek/internal/domain/build"
	"github.com/bnema/linkpeek/internal/domain/entity"
	"github.com/bnema/linkpeek/internal/infrastructure/host"
)

func TestTraceRenderer(t *testing.T) {
	r := styles.NewTraceRenderer(styles.NewTheme())
	entries := []bootstrap.TraceEntry{
		{Offset: 0, Source: bootstrap.SourceStep, Kind: "key_down", Detail: "Alt"},
		{
			Offset: 500 * time.Millisecond, Source: bootstrap.SourcePreview, Kind: "shown",
			PreviewID: "0f1e2d3c-aaaa", URL: "https://example.com",
			Placement: &entity.Placement{Rect: entity.Rect{Left: 10, Top: 40, Width: 800, Height: 600}},
		},
		{Offset: 2 * time.Second, Source: bootstrap.SourcePreview, Kind: "closed", Reason: entity.DismissEscape},
	}

	out := r.Render(entries)
	assert.Contains(t, out, "key_down")
	assert.Contains(t, out, "500ms")
	assert.Contains(t, out, "0f1e2d3c")
	assert.NotContains(t, out, "0f1e2d3c-aaaa")
	assert.Contains(t, out, "(10,40 800x600) below")
	assert.Contains(t, out, "escape")

	summary := r.RenderSummary(entries)
	assert.Contains(t, summary, "shown")
	assert.Contains(t, r.Render(nil), "empty trace")
}

func TestBoundsRenderer(t *testing.T) {
	r := styles.NewBoundsRenderer(styles.NewTheme())
	p := entity.Placement{Rect: entity.Rect{Left: 5, Top: 20, Width: 300, Height: 200}, PlacedAbove: true}

	assert.Equal(t, "5,20,300,200 above", r.RenderPlain(p))
	out := r.Render(entity.Rect{Left: 5, Top: 230, Width: 40, Height: 18}, entity.Size{Width: 400, Height: 300}, p)
	assert.Contains(t, out, "400x300")
	assert.Contains(t, out, "above")
}

func TestSettingsRenderer(t *testing.T) {
	r := styles.NewSettingsRenderer(styles.NewTheme())
	out := r.Render([]host.Widget{
		{Kind: host.WidgetHeading, Name: "Link preview"},
		{Kind: host.WidgetToggle, Name: "Require modifier", Value: "false"},
		{Kind: host.WidgetText, Name: "Hover delay", Value: "500", Desc: "Milliseconds"},
	})
	assert.Contains(t, out, "Link preview")
	assert.Contains(t, out, "Hover delay")
	assert.Contains(t, out, "500")
}

func TestHistoryRow(t *testing.T) {
	shown := time.Now().Add(-2 * time.Hour)
	closed := shown.Add(1500 * time.Millisecond)
	row := styles.HistoryRow(&entity.PreviewRecord{
		URL: "https://go.dev", ShownAt: shown, ClosedAt: &closed,
		Outcome: entity.OutcomeLoaded, Reason: entity.DismissGraceExpired,
	})
	require.Len(t, row, 5)
	assert.Equal(t, "2h ago", row[0])
	assert.Equal(t, "1.5s", row[3])
	assert.Equal(t, "grace_expired", row[4])

	open := styles.HistoryRow(&entity.PreviewRecord{URL: "https://go.dev", ShownAt: time.Now(), Outcome: entity.OutcomePending})
	assert.Equal(t, "open", open[3])
	assert.Equal(t, "-", open[4])
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "650ms", styles.FormatDuration(650*time.Millisecond))
	assert.Equal(t, "42s", styles.FormatDuration(42400*time.Millisecond))
}

func TestAboutRenderer(t *testing.T) {
	r := styles.NewAboutRenderer(styles.NewTheme())
	out := r.Render(
		build.Info{Version: "dev", Commit: "abc1234", GoVersion: "go1.25.3"},
		styles.AboutDetails{Engine: "probe", DatabasePath: "/tmp/linkpeek.sqlite"},
	)

	assert.Contains(t, out, "development build")
	assert.Contains(t, out, "probe")
	assert.Contains(t, out, "/tmp/linkpeek.sqlite")
	assert.Contains(t, out, build.RepoURL)
	assert.NotContains(t, out, "config", "empty rows are omitted")
}
