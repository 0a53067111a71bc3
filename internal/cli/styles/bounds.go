package styles

import (
	"fmt"
	"strings"

	"github.com/bnema/linkpeek/internal/domain/entity"
)

// BoundsRenderer renders a computed preview placement.
type BoundsRenderer struct {
	theme *Theme
}

// NewBoundsRenderer creates a bounds renderer.
func NewBoundsRenderer(theme *Theme) *BoundsRenderer {
	return &BoundsRenderer{theme: theme}
}

// Render shows the anchor, the viewport and the resulting panel rect.
func (r *BoundsRenderer) Render(anchor entity.Rect, viewport entity.Size, p entity.Placement) string {
	key := r.theme.Subtle.Width(10)
	val := r.theme.Normal

	side := "below"
	if p.PlacedAbove {
		side = "above"
	}

	lines := []string{
		r.theme.Title.Render("Preview placement"),
		"",
		key.Render("anchor") + val.Render(anchor.String()),
		key.Render("viewport") + val.Render(fmt.Sprintf("%gx%g", viewport.Width, viewport.Height)),
		key.Render("panel") + r.theme.Highlight.Render(p.Rect.String()),
		key.Render("side") + r.theme.Badge.Render(side),
	}
	return r.theme.Box.Render(strings.Join(lines, "\n"))
}

// RenderPlain renders the placement as "left,top,width,height above|below".
func (r *BoundsRenderer) RenderPlain(p entity.Placement) string {
	side := "below"
	if p.PlacedAbove {
		side = "above"
	}
	return fmt.Sprintf("%g,%g,%g,%g %s", p.Left, p.Top, p.Width, p.Height, side)
}
