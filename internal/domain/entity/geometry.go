// Package entity defines domain entities for linkpeek.
package entity

import "fmt"

// Point is a position in logical pixels relative to a document viewport.
type Point struct {
	X, Y float64
}

// Size is a width/height pair in logical pixels.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle in viewport coordinates.
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.Left + r.Width
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Top + r.Height
}

// IsZero reports whether the rectangle has no area.
func (r Rect) IsZero() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether p lies inside the rectangle, edges included.
// Empty rectangles contain nothing.
func (r Rect) Contains(p Point) bool {
	if r.IsZero() {
		return false
	}
	return p.X >= r.Left && p.X <= r.Right() && p.Y >= r.Top && p.Y <= r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.Left + r.Width/2, Y: r.Top + r.Height/2}
}

// Union returns the smallest rectangle covering both r and o.
// Empty rectangles are ignored.
func (r Rect) Union(o Rect) Rect {
	if r.IsZero() {
		return o
	}
	if o.IsZero() {
		return r
	}
	left := min(r.Left, o.Left)
	top := min(r.Top, o.Top)
	right := max(r.Right(), o.Right())
	bottom := max(r.Bottom(), o.Bottom())
	return Rect{Left: left, Top: top, Width: right - left, Height: bottom - top}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.Left, r.Top, r.Width, r.Height)
}

// Placement is the computed on-screen rectangle for a preview panel.
type Placement struct {
	Rect
	// PlacedAbove is true when the panel sits above its anchor.
	PlacedAbove bool
}
