package component

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/linkpeek/internal/domain/entity"
)

var desktop = entity.Size{Width: 1280, Height: 800}

func TestComputePreviewBounds_BelowWhenRoomy(t *testing.T) {
	anchor := entity.Rect{Left: 100, Top: 50, Width: 80, Height: 20}

	got := ComputePreviewBounds(anchor, desktop, 800, 600)

	assert.False(t, got.PlacedAbove)
	assert.Equal(t, entity.Rect{Left: 100, Top: 75, Width: 800, Height: 600}, got.Rect)
}

func TestComputePreviewBounds_AboveNearBottom(t *testing.T) {
	anchor := entity.Rect{Left: 100, Top: 700, Width: 80, Height: 20}

	got := ComputePreviewBounds(anchor, desktop, 800, 600)

	assert.True(t, got.PlacedAbove)
	assert.Equal(t, 95.0, got.Top)
	assert.Equal(t, 600.0, got.Height)
}

func TestComputePreviewBounds_EqualSpaceBelowStaysBelow(t *testing.T) {
	// spaceBelow = 800 - 195 - 5 = 600, exactly the effective height.
	anchor := entity.Rect{Left: 10, Top: 175, Width: 40, Height: 20}

	got := ComputePreviewBounds(anchor, desktop, 800, 600)

	assert.False(t, got.PlacedAbove)
	assert.Equal(t, 195.0, got.Top)
}

func TestComputePreviewBounds_BelowWhenAboveIsSmaller(t *testing.T) {
	// Neither side fits; below has more room so the panel stays below.
	viewport := entity.Size{Width: 1280, Height: 500}
	anchor := entity.Rect{Left: 10, Top: 100, Width: 40, Height: 20}

	got := ComputePreviewBounds(anchor, viewport, 800, 600)

	assert.False(t, got.PlacedAbove)
	assert.Equal(t, 490.0, got.Height)
	assert.Equal(t, 5.0, got.Top)
}

func TestComputePreviewBounds_ClampsRightEdge(t *testing.T) {
	anchor := entity.Rect{Left: 1200, Top: 50, Width: 60, Height: 20}

	got := ComputePreviewBounds(anchor, desktop, 800, 600)

	assert.Equal(t, 1280.0-800-5, got.Left)
	assert.Equal(t, 1275.0, got.Right())
}

func TestComputePreviewBounds_ClampsLeftEdge(t *testing.T) {
	anchor := entity.Rect{Left: -30, Top: 50, Width: 60, Height: 20}

	got := ComputePreviewBounds(anchor, desktop, 400, 300)

	assert.Equal(t, 5.0, got.Left)
}

func TestComputePreviewBounds_NarrowViewportShrinksPanel(t *testing.T) {
	viewport := entity.Size{Width: 300, Height: 200}
	anchor := entity.Rect{Left: 20, Top: 20, Width: 60, Height: 20}

	got := ComputePreviewBounds(anchor, viewport, 800, 600)

	assert.Equal(t, 290.0, got.Width)
	assert.Equal(t, 190.0, got.Height)
	assert.Equal(t, 5.0, got.Left)
	assert.Equal(t, 5.0, got.Top)
}

func TestComputePreviewBounds_DegenerateViewport(t *testing.T) {
	got := ComputePreviewBounds(entity.Rect{Left: 1, Top: 1, Width: 1, Height: 1}, entity.Size{Width: 4, Height: 4}, 800, 600)

	assert.Equal(t, 0.0, got.Width)
	assert.Equal(t, 0.0, got.Height)
}

func TestComputePreviewBounds_AnchorScrolledOutOfView(t *testing.T) {
	below := ComputePreviewBounds(entity.Rect{Left: 10, Top: 2000, Width: 50, Height: 20}, desktop, 400, 300)
	above := ComputePreviewBounds(entity.Rect{Left: 10, Top: -900, Width: 50, Height: 20}, desktop, 400, 300)

	assert.True(t, below.PlacedAbove)
	assert.Equal(t, 495.0, below.Top)
	assert.False(t, above.PlacedAbove)
	assert.Equal(t, 5.0, above.Top)
}

func TestComputePreviewBounds_Containment(t *testing.T) {
	const m = PreviewEdgeMargin
	rng := rand.New(rand.NewPCG(42, 7))

	for i := 0; i < 5000; i++ {
		viewport := entity.Size{
			Width:  2*m + rng.Float64()*2000,
			Height: 2*m + rng.Float64()*1400,
		}
		anchor := entity.Rect{
			Left:   rng.Float64()*viewport.Width*1.2 - viewport.Width*0.1,
			Top:    rng.Float64()*viewport.Height*1.2 - viewport.Height*0.1,
			Width:  rng.Float64() * 200,
			Height: 1 + rng.Float64()*40,
		}
		maxW := 1 + rng.Float64()*1500
		maxH := 1 + rng.Float64()*1000

		got := ComputePreviewBounds(anchor, viewport, maxW, maxH)

		require.GreaterOrEqual(t, got.Left, m, "case %d", i)
		require.GreaterOrEqual(t, got.Top, m, "case %d", i)
		require.LessOrEqual(t, got.Right(), viewport.Width-m+1e-9, "case %d", i)
		require.LessOrEqual(t, got.Bottom(), viewport.Height-m+1e-9, "case %d", i)
		require.LessOrEqual(t, got.Width, maxW, "case %d", i)
		require.LessOrEqual(t, got.Height, maxH, "case %d", i)
	}
}

func TestComputePreviewBounds_Deterministic(t *testing.T) {
	anchor := entity.Rect{Left: 300, Top: 400, Width: 90, Height: 18}
	assert.Equal(t,
		ComputePreviewBounds(anchor, desktop, 640, 480),
		ComputePreviewBounds(anchor, desktop, 640, 480))
}
