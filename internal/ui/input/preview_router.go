package input

import (
	"context"

	"github.com/bnema/linkpeek/internal/application/port"
	"github.com/bnema/linkpeek/internal/domain/entity"
	"github.com/bnema/linkpeek/internal/logging"
)

// EscapeKey is the KeyboardEvent.key name of the escape key.
const EscapeKey = "Escape"

// PreviewTarget receives the normalized input of the preview router.
type PreviewTarget interface {
	RequestPreview(ctx context.Context, cand port.LinkCandidate)
	PointerMoved(ctx context.Context, p entity.Point)
	Dismiss(ctx context.Context, reason entity.DismissReason)
}

// PreviewRouter turns raw pointer and keyboard events from every document
// window into preview requests, applying modifier gating.
type PreviewRouter struct {
	ctx      context.Context
	locator  port.LinkLocator
	target   PreviewTarget
	tracker  *PointerTracker
	settings func() entity.Settings

	subscribed map[string]bool
}

// NewPreviewRouter creates a router. settings is read on every event.
func NewPreviewRouter(
	ctx context.Context,
	locator port.LinkLocator,
	target PreviewTarget,
	tracker *PointerTracker,
	settings func() entity.Settings,
) *PreviewRouter {
	if tracker == nil {
		tracker = NewPointerTracker()
	}
	return &PreviewRouter{
		ctx:        logging.WithComponent(ctx, "router"),
		locator:    locator,
		target:     target,
		tracker:    tracker,
		settings:   settings,
		subscribed: make(map[string]bool),
	}
}

// Tracker returns the pointer tracker the router writes to.
func (r *PreviewRouter) Tracker() *PointerTracker {
	return r.tracker
}

// Attach subscribes to every open window and to windows opened later.
// Listeners go through the scoped registrar and are removed on unload.
func (r *PreviewRouter) Attach(workspace port.Workspace, registrar port.EventRegistrar) {
	for _, win := range workspace.Windows() {
		r.subscribe(registrar, win)
	}
	registrar.OnWindowOpen(func(win port.Window) {
		r.subscribe(registrar, win)
	})
}

func (r *PreviewRouter) subscribe(registrar port.EventRegistrar, win port.Window) {
	if win == nil || r.subscribed[win.ID()] {
		return
	}
	r.subscribed[win.ID()] = true

	registrar.OnPointerOver(win, func(ev port.PointerEvent) { r.HandlePointerOver(win, ev) })
	registrar.OnPointerMove(win, func(ev port.PointerEvent) { r.HandlePointerMove(win, ev) })
	registrar.OnKeyDown(win, func(ev port.KeyEvent) { r.HandleKeyDown(ev) })
	registrar.OnKeyUp(win, func(ev port.KeyEvent) { r.HandleKeyUp(ev) })

	logging.FromContext(r.ctx).Debug().Str("window_id", win.ID()).Msg("preview listeners attached")
}

// HandlePointerOver records the position and, unless the configured modifier
// is required and not held, asks for a preview of the link under the pointer.
func (r *PreviewRouter) HandlePointerOver(win port.Window, ev port.PointerEvent) {
	r.tracker.Record(win, ev.Point)

	s := r.settings()
	if s.RequireModifier && !ev.Modifiers.Has(s.ModifierKey) {
		return
	}
	cand, ok := r.locator.Locate(r.ctx, ev.Target, ev.RelatedTarget)
	if !ok {
		return
	}
	r.target.RequestPreview(r.ctx, cand)
}

// HandlePointerMove records the position and forwards it.
func (r *PreviewRouter) HandlePointerMove(win port.Window, ev port.PointerEvent) {
	r.tracker.Record(win, ev.Point)
	r.target.PointerMoved(r.ctx, ev.Point)
}

// HandleKeyDown dismisses on Escape. Pressing the required modifier while
// resting on a link starts the same delay as a qualifying hover.
func (r *PreviewRouter) HandleKeyDown(ev port.KeyEvent) {
	if ev.Key == EscapeKey {
		r.target.Dismiss(r.ctx, entity.DismissEscape)
		return
	}

	s := r.settings()
	if !s.RequireModifier || ev.Key != s.ModifierKey.DOMKey() {
		return
	}
	p, ok := r.tracker.LastPointer()
	win := r.tracker.Window()
	if !ok || win == nil || win.Document() == nil {
		return
	}
	el := win.Document().ElementFromPoint(p)
	if el == nil {
		return
	}
	cand, ok := r.locator.Locate(r.ctx, el, nil)
	if !ok {
		return
	}
	r.target.RequestPreview(r.ctx, cand)
}

// HandleKeyUp closes the preview when the required modifier is released and
// close-on-release is enabled, wherever the pointer is.
func (r *PreviewRouter) HandleKeyUp(ev port.KeyEvent) {
	s := r.settings()
	if !s.RequireModifier || !s.CloseOnRelease || ev.Key != s.ModifierKey.DOMKey() {
		return
	}
	r.target.Dismiss(r.ctx, entity.DismissModifierReleased)
}
