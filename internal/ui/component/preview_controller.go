package component

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bnema/linkpeek/internal/application/port"
	"github.com/bnema/linkpeek/internal/domain/entity"
	urlutil "github.com/bnema/linkpeek/internal/domain/url"
	"github.com/bnema/linkpeek/internal/logging"
)

const (
	// PreviewGracePeriod is how long a preview survives after the pointer
	// leaves both the origin link and the panel.
	PreviewGracePeriod = 300 * time.Millisecond
	// PreviewSettleDelay is the pause between embed load and marking ready.
	PreviewSettleDelay = 150 * time.Millisecond

	PreviewLoadingText = "Loading preview…"
	PreviewFailedText  = "Failed to load preview"

	githubDomain = "github.com"
)

// PointerReader exposes the last known pointer position.
type PointerReader interface {
	LastPointer() (entity.Point, bool)
}

// SettingsFunc returns the current settings snapshot.
type SettingsFunc func() entity.Settings

// PreviewControllerDeps are the collaborators of a PreviewController.
type PreviewControllerDeps struct {
	Scheduler port.Scheduler
	Panels    port.PanelRenderer
	Pointer   PointerReader
	Settings  SettingsFunc
	// NewID generates preview ids. Defaults to random UUIDs.
	NewID func() string
}

type pendingShow struct {
	candidate port.LinkCandidate
}

type activePreview struct {
	id        string
	url       string
	panel     port.Panel
	origin    port.Element
	placement entity.Placement
	shownAt   time.Time
	outcome   entity.PreviewOutcome
}

// ActivePreview is a read-only view of the current preview.
type ActivePreview struct {
	ID        string
	URL       string
	Origin    port.Element
	Panel     port.Panel
	Placement entity.Placement
	Outcome   entity.PreviewOutcome
	ShownAt   time.Time
}

// PreviewController owns the single floating preview, its show and hide
// timers and the embedded content load sequence.
// All methods must be called on the scheduler's loop.
type PreviewController struct {
	ctx       context.Context
	scheduler port.Scheduler
	panels    port.PanelRenderer
	pointer   PointerReader
	settings  SettingsFunc
	newID     func() string
	observers []port.PreviewObserver

	state   entity.PreviewState
	pending *pendingShow
	active  *activePreview

	showTimer   port.Timer
	hideTimer   port.Timer
	settleTimer port.Timer
	showGen     uint64
	hideGen     uint64
}

// NewPreviewController creates an idle controller.
func NewPreviewController(ctx context.Context, deps PreviewControllerDeps) *PreviewController {
	newID := deps.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	settings := deps.Settings
	if settings == nil {
		settings = func() entity.Settings { return entity.DefaultSettings(entity.Platform{}) }
	}
	return &PreviewController{
		ctx:       logging.WithComponent(ctx, "preview"),
		scheduler: deps.Scheduler,
		panels:    deps.Panels,
		pointer:   deps.Pointer,
		settings:  settings,
		newID:     newID,
		state:     entity.PreviewIdle,
	}
}

// AddObserver registers an observer for preview events.
func (c *PreviewController) AddObserver(o port.PreviewObserver) {
	if o != nil {
		c.observers = append(c.observers, o)
	}
}

// State returns the current lifecycle state.
func (c *PreviewController) State() entity.PreviewState {
	return c.state
}

// Active returns the current preview, if one is shown.
func (c *PreviewController) Active() (ActivePreview, bool) {
	if c.active == nil {
		return ActivePreview{}, false
	}
	a := c.active
	return ActivePreview{
		ID:        a.id,
		URL:       a.url,
		Origin:    a.origin,
		Panel:     a.panel,
		Placement: a.placement,
		Outcome:   a.outcome,
		ShownAt:   a.shownAt,
	}, true
}

// PendingURL returns the URL waiting for the show delay, if any.
func (c *PreviewController) PendingURL() (string, bool) {
	if c.pending == nil {
		return "", false
	}
	return c.pending.candidate.URL, true
}

// RequestPreview handles a qualifying hover over cand.
// Hovering the link that owns the visible preview only cancels its grace
// timer. Hovering the pending link again does nothing. Any other link
// replaces both and restarts the show delay.
func (c *PreviewController) RequestPreview(ctx context.Context, cand port.LinkCandidate) {
	if cand.Element == nil || cand.URL == "" {
		return
	}
	log := logging.FromContext(ctx)

	if c.active != nil && c.active.origin == cand.Element {
		c.cancelHide()
		if c.state == entity.PreviewHidePending {
			c.setState(ctx, entity.PreviewVisible)
		}
		return
	}
	if c.pending != nil && c.pending.candidate.Element == cand.Element {
		return
	}

	if c.active != nil {
		c.Dismiss(ctx, entity.DismissSuperseded)
	} else if c.pending != nil {
		c.cancelShow(ctx, entity.DismissSuperseded)
	}

	delay := time.Duration(max(0, c.settings().HoverDelayMs)) * time.Millisecond
	c.pending = &pendingShow{candidate: cand}
	c.showGen++
	gen := c.showGen
	c.showTimer = c.scheduler.AfterFunc(delay, func() { c.fireShow(gen) })
	c.setState(ctx, entity.PreviewShowPending)

	log.Debug().Str("url", cand.URL).Dur("delay", delay).Msg("preview scheduled")
	c.emit(port.PreviewEvent{Kind: port.PreviewEventScheduled, URL: cand.URL})
}

// PointerMoved re-evaluates the pointer against the pending link, or against
// the origin link and panel of the visible preview.
func (c *PreviewController) PointerMoved(ctx context.Context, p entity.Point) {
	switch c.state {
	case entity.PreviewShowPending:
		if !c.pending.candidate.Element.BoundingRect().Contains(p) {
			c.cancelShow(ctx, entity.DismissPointerLeft)
			c.setState(ctx, entity.PreviewIdle)
		}
	case entity.PreviewVisible, entity.PreviewHidePending:
		if c.pointerInside(p) {
			c.cancelHide()
			if c.state == entity.PreviewHidePending {
				c.setState(ctx, entity.PreviewVisible)
			}
			return
		}
		if c.hideTimer == nil {
			c.hideGen++
			gen := c.hideGen
			c.hideTimer = c.scheduler.AfterFunc(PreviewGracePeriod, func() { c.fireHide(gen) })
			c.setState(ctx, entity.PreviewHidePending)
		}
	}
}

// Dismiss tears down the preview and any pending show from any state.
func (c *PreviewController) Dismiss(ctx context.Context, reason entity.DismissReason) {
	log := logging.FromContext(ctx)

	c.cancelShow(ctx, reason)
	c.cancelHide()
	c.stopSettle()

	if a := c.active; a != nil {
		c.active = nil
		a.panel.Detach()
		log.Debug().
			Str("preview_id", a.id).
			Str("url", a.url).
			Str("reason", string(reason)).
			Msg("preview closed")
		c.emit(port.PreviewEvent{
			Kind:      port.PreviewEventClosed,
			PreviewID: a.id,
			URL:       a.url,
			Placement: a.placement,
			Reason:    reason,
		})
	}
	c.setState(ctx, entity.PreviewIdle)
}

func (c *PreviewController) fireShow(gen uint64) {
	if gen != c.showGen || c.state != entity.PreviewShowPending || c.pending == nil {
		return
	}
	ctx := c.ctx
	cand := c.pending.candidate
	c.pending = nil
	c.showTimer = nil

	doc := cand.Element.OwnerDocument()
	if doc == nil {
		c.setState(ctx, entity.PreviewIdle)
		return
	}
	s := c.settings()
	placement := ComputePreviewBounds(
		cand.Element.BoundingRect(),
		doc.Viewport(),
		float64(s.MaxPreviewWidth),
		float64(s.MaxPreviewHeight),
	)

	panel := c.panels.NewPanel(doc)
	panel.SetGeometry(placement.Rect)
	panel.AddClass(port.PanelClassLoading)
	panel.ShowIndicator(PreviewLoadingText)
	if urlutil.HostMatches(cand.URL, githubDomain) {
		panel.AddClass(port.PanelClassGitHubCrop)
	}

	a := &activePreview{
		id:        c.newID(),
		url:       cand.URL,
		panel:     panel,
		origin:    cand.Element,
		placement: placement,
		shownAt:   c.scheduler.Now(),
		outcome:   entity.OutcomePending,
	}
	c.active = a
	c.setState(ctx, entity.PreviewVisible)

	logging.FromContext(ctx).Info().
		Str("preview_id", a.id).
		Str("url", a.url).
		Stringer("rect", placement.Rect).
		Bool("above", placement.PlacedAbove).
		Msg("preview shown")
	c.emit(port.PreviewEvent{Kind: port.PreviewEventShown, PreviewID: a.id, URL: a.url, Placement: placement})

	id := a.id
	panel.Embed(a.url, port.EmbedCallbacks{
		OnLoad: func() {
			c.scheduler.Post(func() { c.embedLoaded(id) })
		},
		OnError: func(err error) {
			c.scheduler.Post(func() { c.embedFailed(id, err) })
		},
	})
}

func (c *PreviewController) embedLoaded(id string) {
	if c.active == nil || c.active.id != id || c.active.outcome != entity.OutcomePending {
		return
	}
	c.stopSettle()
	c.settleTimer = c.scheduler.AfterFunc(PreviewSettleDelay, func() {
		c.settleTimer = nil
		a := c.active
		if a == nil || a.id != id || a.outcome != entity.OutcomePending {
			return
		}
		a.outcome = entity.OutcomeLoaded
		a.panel.RemoveIndicator()
		a.panel.RemoveClass(port.PanelClassLoading)
		a.panel.AddClass(port.PanelClassLoaded)

		logging.FromContext(c.ctx).Debug().Str("preview_id", id).Str("url", a.url).Msg("preview ready")
		c.emit(port.PreviewEvent{Kind: port.PreviewEventReady, PreviewID: id, URL: a.url, Placement: a.placement})
	})
}

func (c *PreviewController) embedFailed(id string, err error) {
	a := c.active
	if a == nil || a.id != id || a.outcome != entity.OutcomePending {
		return
	}
	c.stopSettle()
	a.outcome = entity.OutcomeFailed
	a.panel.SetIndicatorText(PreviewFailedText)
	a.panel.RemoveClass(port.PanelClassLoading)
	a.panel.AddClass(port.PanelClassLoadFailed)

	logging.FromContext(c.ctx).Warn().Err(err).Str("preview_id", id).Str("url", a.url).Msg("preview failed to load")
	c.emit(port.PreviewEvent{Kind: port.PreviewEventFailed, PreviewID: id, URL: a.url, Placement: a.placement, Err: err})
}

func (c *PreviewController) fireHide(gen uint64) {
	if gen != c.hideGen || c.state != entity.PreviewHidePending {
		return
	}
	c.hideTimer = nil

	// Layout may have shifted since the timer was armed.
	if p, ok := c.lastPointer(); ok && c.pointerInside(p) {
		c.setState(c.ctx, entity.PreviewVisible)
		return
	}
	c.Dismiss(c.ctx, entity.DismissGraceExpired)
}

func (c *PreviewController) pointerInside(p entity.Point) bool {
	if c.active == nil {
		return false
	}
	return c.active.origin.BoundingRect().Contains(p) || c.active.panel.BoundingRect().Contains(p)
}

func (c *PreviewController) lastPointer() (entity.Point, bool) {
	if c.pointer == nil {
		return entity.Point{}, false
	}
	return c.pointer.LastPointer()
}

func (c *PreviewController) cancelShow(ctx context.Context, reason entity.DismissReason) {
	if c.showTimer != nil {
		c.showTimer.Stop()
		c.showTimer = nil
	}
	c.showGen++
	if c.pending == nil {
		return
	}
	url := c.pending.candidate.URL
	c.pending = nil
	logging.FromContext(ctx).Debug().Str("url", url).Str("reason", string(reason)).Msg("preview cancelled")
	c.emit(port.PreviewEvent{Kind: port.PreviewEventCancelled, URL: url, Reason: reason})
}

func (c *PreviewController) cancelHide() {
	if c.hideTimer != nil {
		c.hideTimer.Stop()
		c.hideTimer = nil
	}
	c.hideGen++
}

func (c *PreviewController) stopSettle() {
	if c.settleTimer != nil {
		c.settleTimer.Stop()
		c.settleTimer = nil
	}
}

func (c *PreviewController) setState(ctx context.Context, s entity.PreviewState) {
	if c.state == s {
		return
	}
	logging.FromContext(ctx).Trace().
		Str("from", string(c.state)).
		Str("state", string(s)).
		Msg("preview state")
	c.state = s
}

func (c *PreviewController) emit(ev port.PreviewEvent) {
	if ev.At.IsZero() {
		ev.At = c.scheduler.Now()
	}
	for _, o := range c.observers {
		o.PreviewChanged(ev)
	}
}
