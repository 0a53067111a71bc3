package styles

import (
	"fmt"
	"time"

	"github.com/bnema/linkpeek/internal/domain/entity"
)

// OutcomeBadge renders a preview load outcome.
func (t *Theme) OutcomeBadge(o entity.PreviewOutcome) string {
	switch o {
	case entity.OutcomeLoaded:
		return t.Badge.Background(t.Success).Render(string(o))
	case entity.OutcomeFailed:
		return t.Badge.Background(t.Error).Render(string(o))
	}
	return t.BadgeMuted.Render(string(o))
}

// DurationBadge renders how long a preview stayed open.
func (t *Theme) DurationBadge(d time.Duration) string {
	if d <= 0 {
		return t.BadgeMuted.Render("open")
	}
	return t.BadgeMuted.Render(FormatDuration(d))
}

// FormatDuration renders d with millisecond precision below ten seconds.
func FormatDuration(d time.Duration) string {
	if d < 10*time.Second {
		return d.Round(time.Millisecond).String()
	}
	return d.Round(time.Second).String()
}

// RelativeTime formats a time as a human-readable relative string.
func RelativeTime(tm time.Time) string {
	return relativeTimeAt(tm, time.Now())
}

func relativeTimeAt(tm, now time.Time) string {
	diff := now.Sub(tm)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return tm.Format("2006-01-02")
	}
}
