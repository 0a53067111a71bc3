package host

import (
	"context"
	"sync"

	"github.com/bnema/linkpeek/internal/application/port"
	"github.com/bnema/linkpeek/internal/domain/entity"
	"github.com/bnema/linkpeek/internal/infrastructure/htmldom"
	"github.com/bnema/linkpeek/internal/logging"
)

// Options configures a Host.
type Options struct {
	Scheduler port.Scheduler
	Data      port.PluginDataStore
	Panels    port.PanelRenderer
	Platform  entity.Platform
}

// Host is an in-process port.Host. Input is injected with the dispatch
// methods, which must run on the scheduler's loop.
type Host struct {
	ctx       context.Context
	opts      Options
	workspace *Workspace
	registrar *Registrar

	mu          sync.Mutex
	pages       []port.SettingsPage
	layoutReady bool
	readyFns    []func()
	hovered     map[string]port.Node
}

var _ port.Host = (*Host)(nil)

// New creates a host with an empty workspace.
func New(ctx context.Context, opts Options) *Host {
	return &Host{
		ctx:       logging.WithComponent(ctx, "host"),
		opts:      opts,
		workspace: NewWorkspace(),
		registrar: NewRegistrar(),
		hovered:   make(map[string]port.Node),
	}
}

func (h *Host) Workspace() port.Workspace      { return h.workspace }
func (h *Host) Registrar() port.EventRegistrar { return h.registrar }
func (h *Host) Data() port.PluginDataStore     { return h.opts.Data }
func (h *Host) Platform() entity.Platform      { return h.opts.Platform }
func (h *Host) Panels() port.PanelRenderer     { return h.opts.Panels }
func (h *Host) Scheduler() port.Scheduler      { return h.opts.Scheduler }
func (h *Host) SimWorkspace() *Workspace       { return h.workspace }
func (h *Host) SimRegistrar() *Registrar       { return h.registrar }

func (h *Host) AddSettingsTab(page port.SettingsPage) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pages = append(h.pages, page)
}

// SettingsPages returns the registered settings tabs.
func (h *Host) SettingsPages() []port.SettingsPage {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]port.SettingsPage(nil), h.pages...)
}

func (h *Host) OnLayoutReady(fn func()) {
	h.mu.Lock()
	if !h.layoutReady {
		h.readyFns = append(h.readyFns, fn)
		h.mu.Unlock()
		return
	}
	h.mu.Unlock()
	fn()
}

// MarkLayoutReady runs the deferred layout-ready callbacks once.
func (h *Host) MarkLayoutReady() {
	h.mu.Lock()
	if h.layoutReady {
		h.mu.Unlock()
		return
	}
	h.layoutReady = true
	fns := h.readyFns
	h.readyFns = nil
	h.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// Load runs the plugin's OnLoad.
func (h *Host) Load(ctx context.Context, plugin port.Lifecycle) error {
	return plugin.OnLoad(ctx)
}

// Unload runs the plugin's OnUnload and then drops every listener it
// registered.
func (h *Host) Unload(ctx context.Context, plugin port.Lifecycle) {
	plugin.OnUnload(ctx)
	h.registrar.Clear()
	logging.FromContext(h.ctx).Debug().Msg("plugin unloaded, listeners cleared")
}

// OpenWindow adds a window for doc and announces it to listeners.
func (h *Host) OpenWindow(id string, doc *htmldom.Document) *Window {
	win := NewWindow(id, doc)
	h.workspace.add(win)
	logging.FromContext(h.ctx).Debug().Str("window_id", id).Msg("window opened")
	h.registrar.windowOpened(win)
	return win
}

// MovePointer moves the pointer to p inside a window. Entering a new element
// fires pointer-over before pointer-move, with the previous element as the
// related target.
func (h *Host) MovePointer(winID string, p entity.Point, mods port.Modifiers) {
	win, ok := h.workspace.Window(winID)
	if !ok {
		return
	}
	var target port.Node
	if el := win.Document().ElementFromPoint(p); el != nil {
		target = el
	}

	h.mu.Lock()
	prev := h.hovered[winID]
	h.hovered[winID] = target
	h.mu.Unlock()

	if target != nil && target != prev {
		h.registrar.dispatchOver(winID, port.PointerEvent{
			Target:        target,
			RelatedTarget: prev,
			Point:         p,
			Modifiers:     mods,
		})
	}
	h.registrar.dispatchMove(winID, port.PointerEvent{
		Target:    target,
		Point:     p,
		Modifiers: mods,
	})
}

// PointerOver fires a pointer-over on target without moving through the
// layout, as a host does for synthetic hover.
func (h *Host) PointerOver(winID string, target, related port.Node, p entity.Point, mods port.Modifiers) {
	h.mu.Lock()
	h.hovered[winID] = target
	h.mu.Unlock()
	h.registrar.dispatchOver(winID, port.PointerEvent{
		Target:        target,
		RelatedTarget: related,
		Point:         p,
		Modifiers:     mods,
	})
}

// KeyDown delivers a key-down to the window.
func (h *Host) KeyDown(winID string, key string, mods port.Modifiers) {
	h.registrar.dispatchKeyDown(winID, port.KeyEvent{Key: key, Modifiers: mods})
}

// KeyUp delivers a key-up to the window.
func (h *Host) KeyUp(winID string, key string, mods port.Modifiers) {
	h.registrar.dispatchKeyUp(winID, port.KeyEvent{Key: key, Modifiers: mods})
}
