package component

import "github.com/bnema/linkpeek/internal/domain/entity"

// PreviewEdgeMargin is the gap kept between a preview and the viewport edges
// and between a preview and its anchor.
const PreviewEdgeMargin = 5.0

// ComputePreviewBounds places a preview of at most maxW x maxH next to anchor.
// The panel goes below the anchor unless below is too short and above is
// roomier. The result always lies inside the viewport minus the margin.
func ComputePreviewBounds(anchor entity.Rect, viewport entity.Size, maxW, maxH float64) entity.Placement {
	const m = PreviewEdgeMargin

	effW := max(0, min(maxW, viewport.Width-2*m))
	effH := max(0, min(maxH, viewport.Height-2*m))

	spaceBelow := viewport.Height - anchor.Bottom() - m
	spaceAbove := anchor.Top - m
	above := spaceBelow < effH && spaceAbove > spaceBelow

	var top float64
	if above {
		top = max(m, anchor.Top-effH-m)
	} else {
		top = min(anchor.Bottom()+m, viewport.Height-effH-m)
	}
	// Anchors scrolled out of view would otherwise push the panel off screen.
	top = max(m, min(top, viewport.Height-effH-m))

	left := anchor.Left
	if left+effW > viewport.Width-m {
		left = viewport.Width - effW - m
	}
	left = max(m, left)

	return entity.Placement{
		Rect:        entity.Rect{Left: left, Top: top, Width: effW, Height: effH},
		PlacedAbove: above,
	}
}
