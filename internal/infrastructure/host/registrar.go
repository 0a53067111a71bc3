package host

import (
	"sync"

	"github.com/bnema/linkpeek/internal/application/port"
)

type windowListeners struct {
	over, move []func(port.PointerEvent)
	down, up   []func(port.KeyEvent)
}

// Registrar keeps the listeners of one plugin. Clear removes all of them,
// which is what the host does when the plugin unloads.
type Registrar struct {
	mu      sync.Mutex
	windows map[string]*windowListeners
	onOpen  []func(port.Window)
}

var _ port.EventRegistrar = (*Registrar)(nil)

// NewRegistrar creates an empty registrar.
func NewRegistrar() *Registrar {
	return &Registrar{windows: make(map[string]*windowListeners)}
}

func (r *Registrar) listeners(win port.Window) *windowListeners {
	l, ok := r.windows[win.ID()]
	if !ok {
		l = &windowListeners{}
		r.windows[win.ID()] = l
	}
	return l
}

func (r *Registrar) OnPointerOver(win port.Window, fn func(port.PointerEvent)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l := r.listeners(win)
	l.over = append(l.over, fn)
}

func (r *Registrar) OnPointerMove(win port.Window, fn func(port.PointerEvent)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l := r.listeners(win)
	l.move = append(l.move, fn)
}

func (r *Registrar) OnKeyDown(win port.Window, fn func(port.KeyEvent)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l := r.listeners(win)
	l.down = append(l.down, fn)
}

func (r *Registrar) OnKeyUp(win port.Window, fn func(port.KeyEvent)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l := r.listeners(win)
	l.up = append(l.up, fn)
}

func (r *Registrar) OnWindowOpen(fn func(port.Window)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onOpen = append(r.onOpen, fn)
}

// Clear removes every registered listener.
func (r *Registrar) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.windows = make(map[string]*windowListeners)
	r.onOpen = nil
}

// ListenerCount returns the number of listeners across all windows.
func (r *Registrar) ListenerCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := len(r.onOpen)
	for _, l := range r.windows {
		n += len(l.over) + len(l.move) + len(l.down) + len(l.up)
	}
	return n
}

func (r *Registrar) snapshot(winID string) windowListeners {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.windows[winID]
	if !ok {
		return windowListeners{}
	}
	return windowListeners{
		over: append([]func(port.PointerEvent){}, l.over...),
		move: append([]func(port.PointerEvent){}, l.move...),
		down: append([]func(port.KeyEvent){}, l.down...),
		up:   append([]func(port.KeyEvent){}, l.up...),
	}
}

func (r *Registrar) windowOpened(win port.Window) {
	r.mu.Lock()
	fns := append([]func(port.Window){}, r.onOpen...)
	r.mu.Unlock()
	for _, fn := range fns {
		fn(win)
	}
}

func (r *Registrar) dispatchOver(winID string, ev port.PointerEvent) {
	for _, fn := range r.snapshot(winID).over {
		fn(ev)
	}
}

func (r *Registrar) dispatchMove(winID string, ev port.PointerEvent) {
	for _, fn := range r.snapshot(winID).move {
		fn(ev)
	}
}

func (r *Registrar) dispatchKeyDown(winID string, ev port.KeyEvent) {
	for _, fn := range r.snapshot(winID).down {
		fn(ev)
	}
}

func (r *Registrar) dispatchKeyUp(winID string, ev port.KeyEvent) {
	for _, fn := range r.snapshot(winID).up {
		fn(ev)
	}
}
