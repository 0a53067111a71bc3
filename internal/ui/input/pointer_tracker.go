package input

import (
	"github.com/bnema/linkpeek/internal/application/port"
	"github.com/bnema/linkpeek/internal/domain/entity"
)

// PointerTracker remembers where the pointer was last seen.
// The preview router is its only writer; readers must expect the position
// to change between loop turns.
type PointerTracker struct {
	point  entity.Point
	window port.Window
	known  bool
}

// NewPointerTracker creates a tracker with no known position.
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{}
}

// Record stores p as the latest position inside win.
func (t *PointerTracker) Record(win port.Window, p entity.Point) {
	t.point = p
	t.window = win
	t.known = true
}

// LastPointer returns the last recorded position.
func (t *PointerTracker) LastPointer() (entity.Point, bool) {
	return t.point, t.known
}

// Window returns the window the pointer was last seen in.
func (t *PointerTracker) Window() port.Window {
	return t.window
}
