package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Contains(t *testing.T) {
	r := Rect{Left: 10, Top: 20, Width: 100, Height: 50}

	assert.True(t, r.Contains(Point{X: 10, Y: 20}), "top-left edge is inside")
	assert.True(t, r.Contains(Point{X: 110, Y: 70}), "bottom-right edge is inside")
	assert.True(t, r.Contains(Point{X: 60, Y: 45}))
	assert.False(t, r.Contains(Point{X: 9, Y: 45}))
	assert.False(t, r.Contains(Point{X: 60, Y: 71}))
}

func TestRect_EmptyContainsNothing(t *testing.T) {
	r := Rect{Left: 10, Top: 10}
	assert.True(t, r.IsZero())
	assert.False(t, r.Contains(Point{X: 10, Y: 10}))
}

func TestRect_Union(t *testing.T) {
	a := Rect{Left: 0, Top: 0, Width: 10, Height: 10}
	b := Rect{Left: 20, Top: 5, Width: 10, Height: 10}

	u := a.Union(b)
	assert.Equal(t, Rect{Left: 0, Top: 0, Width: 30, Height: 15}, u)
	assert.Equal(t, a, a.Union(Rect{}))
	assert.Equal(t, b, Rect{}.Union(b))
}
