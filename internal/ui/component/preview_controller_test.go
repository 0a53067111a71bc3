package component

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/linkpeek/internal/application/port"
	portmocks "github.com/bnema/linkpeek/internal/application/port/mocks"
	"github.com/bnema/linkpeek/internal/domain/entity"
	"github.com/bnema/linkpeek/internal/infrastructure/htmldom"
	"github.com/bnema/linkpeek/internal/ui/mainloop"
)

const controllerFixture = `<html><body>
<a id="a" href="https://example.com" data-rect="100,100,80,20">example</a>
<a id="b" href="https://github.com/bnema" data-rect="300,100,80,20">github</a>
<a id="c" href="https://c.test" data-rect="500,100,80,20">c</a>
</body></html>`

type fakePanel struct {
	geometry  entity.Rect
	classes   map[string]bool
	indicator string
	hasInd    bool
	url       string
	cb        port.EmbedCallbacks
	detached  int
}

func (p *fakePanel) SetGeometry(r entity.Rect)                { p.geometry = r }
func (p *fakePanel) AddClass(name string)                     { p.classes[name] = true }
func (p *fakePanel) RemoveClass(name string)                  { delete(p.classes, name) }
func (p *fakePanel) HasClass(name string) bool                { return p.classes[name] }
func (p *fakePanel) ShowIndicator(text string)                { p.indicator, p.hasInd = text, true }
func (p *fakePanel) SetIndicatorText(text string)             { p.indicator = text }
func (p *fakePanel) RemoveIndicator()                         { p.indicator, p.hasInd = "", false }
func (p *fakePanel) Embed(url string, cb port.EmbedCallbacks) { p.url, p.cb = url, cb }
func (p *fakePanel) Detach()                                  { p.detached++ }
func (p *fakePanel) BoundingRect() entity.Rect {
	if p.detached > 0 {
		return entity.Rect{}
	}
	return p.geometry
}

type fakeRenderer struct {
	panels []*fakePanel
}

func (r *fakeRenderer) NewPanel(port.Document) port.Panel {
	p := &fakePanel{classes: map[string]bool{}}
	r.panels = append(r.panels, p)
	return p
}

func (r *fakeRenderer) live() int {
	n := 0
	for _, p := range r.panels {
		if p.detached == 0 {
			n++
		}
	}
	return n
}

type fakePointer struct {
	p  entity.Point
	ok bool
}

func (f *fakePointer) LastPointer() (entity.Point, bool) { return f.p, f.ok }

type controllerHarness struct {
	ctx      context.Context
	loop     *mainloop.VirtualLoop
	doc      *htmldom.Document
	renderer *fakeRenderer
	pointer  *fakePointer
	settings entity.Settings
	events   []port.PreviewEvent
	ctrl     *PreviewController
}

func newControllerHarness(t *testing.T) *controllerHarness {
	t.Helper()
	doc, err := htmldom.ParseString(controllerFixture, htmldom.DefaultOptions())
	require.NoError(t, err)

	h := &controllerHarness{
		ctx:      context.Background(),
		loop:     mainloop.NewVirtualLoop(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)),
		doc:      doc,
		renderer: &fakeRenderer{},
		pointer:  &fakePointer{},
		settings: entity.DefaultSettings(entity.Platform{}),
	}
	ids := 0
	h.ctrl = NewPreviewController(h.ctx, PreviewControllerDeps{
		Scheduler: h.loop,
		Panels:    h.renderer,
		Pointer:   h.pointer,
		Settings:  func() entity.Settings { return h.settings },
		NewID: func() string {
			ids++
			return fmt.Sprintf("p%d", ids)
		},
	})
	h.ctrl.AddObserver(port.PreviewObserverFunc(func(ev port.PreviewEvent) {
		h.events = append(h.events, ev)
	}))
	return h
}

func (h *controllerHarness) candidate(id string) port.LinkCandidate {
	el := h.doc.MustQueryOne("#" + id)
	return port.LinkCandidate{Element: el, URL: el.Href()}
}

func (h *controllerHarness) hover(id string) {
	cand := h.candidate(id)
	h.pointer.p, h.pointer.ok = cand.Element.BoundingRect().Center(), true
	h.ctrl.RequestPreview(h.ctx, cand)
}

func (h *controllerHarness) move(p entity.Point) {
	h.pointer.p, h.pointer.ok = p, true
	h.ctrl.PointerMoved(h.ctx, p)
}

func (h *controllerHarness) count(kind port.PreviewEventKind) int {
	n := 0
	for _, ev := range h.events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

var outside = entity.Point{X: 1200, Y: 20}

func TestPreviewController_HoverShorterThanDelayCreatesNothing(t *testing.T) {
	h := newControllerHarness(t)

	h.hover("a")
	assert.Equal(t, entity.PreviewShowPending, h.ctrl.State())

	h.loop.Advance(400 * time.Millisecond)
	h.move(outside)
	assert.Equal(t, entity.PreviewIdle, h.ctrl.State())

	h.loop.Advance(2 * time.Second)
	assert.Empty(t, h.renderer.panels)
	assert.Equal(t, 1, h.count(port.PreviewEventCancelled))
	assert.Equal(t, entity.DismissPointerLeft, h.events[len(h.events)-1].Reason)
}

func TestPreviewController_HoverLongerThanDelayCreatesOnePanel(t *testing.T) {
	h := newControllerHarness(t)

	h.hover("a")
	h.loop.Advance(499 * time.Millisecond)
	assert.Empty(t, h.renderer.panels)

	// Moving inside the link keeps the pending show.
	h.move(entity.Point{X: 110, Y: 110})
	h.loop.Advance(101 * time.Millisecond)

	require.Len(t, h.renderer.panels, 1)
	assert.Equal(t, "https://example.com", h.renderer.panels[0].url)
	assert.Equal(t, entity.PreviewVisible, h.ctrl.State())

	active, ok := h.ctrl.Active()
	require.True(t, ok)
	assert.Equal(t, "p1", active.ID)
	assert.Equal(t, "https://example.com", active.URL)
	assert.Equal(t, 1, h.count(port.PreviewEventShown))
}

func TestPreviewController_ShowAppliesPlacementAndLoadingState(t *testing.T) {
	h := newControllerHarness(t)

	h.hover("a")
	h.loop.Advance(time.Second)

	require.Len(t, h.renderer.panels, 1)
	p := h.renderer.panels[0]
	assert.Equal(t, entity.Rect{Left: 100, Top: 125, Width: 800, Height: 600}, p.geometry)
	assert.True(t, p.HasClass(port.PanelClassLoading))
	assert.False(t, p.HasClass(port.PanelClassGitHubCrop))
	assert.True(t, p.hasInd)
	assert.Equal(t, PreviewLoadingText, p.indicator)
}

func TestPreviewController_GitHubCropHint(t *testing.T) {
	h := newControllerHarness(t)

	h.hover("b")
	h.loop.Advance(time.Second)

	require.Len(t, h.renderer.panels, 1)
	assert.True(t, h.renderer.panels[0].HasClass(port.PanelClassGitHubCrop))
}

func TestPreviewController_RehoverPendingDoesNotRestartDelay(t *testing.T) {
	h := newControllerHarness(t)

	h.hover("a")
	h.loop.Advance(300 * time.Millisecond)
	h.hover("a")
	h.loop.Advance(200 * time.Millisecond)

	assert.Len(t, h.renderer.panels, 1)
	assert.Equal(t, 1, h.count(port.PreviewEventScheduled))
}

func TestPreviewController_RehoverActiveNeverRecreates(t *testing.T) {
	h := newControllerHarness(t)

	h.hover("a")
	h.loop.Advance(time.Second)
	require.Len(t, h.renderer.panels, 1)

	h.move(outside)
	assert.Equal(t, entity.PreviewHidePending, h.ctrl.State())

	for i := 0; i < 5; i++ {
		h.hover("a")
		h.loop.Advance(100 * time.Millisecond)
	}

	assert.Equal(t, entity.PreviewVisible, h.ctrl.State())
	assert.Len(t, h.renderer.panels, 1)
	assert.Equal(t, 0, h.renderer.panels[0].detached)
	assert.Equal(t, 1, h.count(port.PreviewEventScheduled))
}

func TestPreviewController_GraceReentryIntoPanelSurvives(t *testing.T) {
	h := newControllerHarness(t)

	h.hover("a")
	h.loop.Advance(time.Second)

	h.move(outside)
	h.loop.Advance(200 * time.Millisecond)
	h.move(entity.Point{X: 400, Y: 400}) // inside the panel
	assert.Equal(t, entity.PreviewVisible, h.ctrl.State())

	h.loop.Advance(5 * time.Second)
	_, ok := h.ctrl.Active()
	assert.True(t, ok)
	assert.Equal(t, 0, h.count(port.PreviewEventClosed))
}

func TestPreviewController_GraceExpiryClosesExactlyOnce(t *testing.T) {
	h := newControllerHarness(t)

	h.hover("a")
	h.loop.Advance(time.Second)

	h.move(outside)
	h.move(entity.Point{X: 1210, Y: 30})
	h.loop.Advance(299 * time.Millisecond)
	_, ok := h.ctrl.Active()
	require.True(t, ok)

	h.loop.Advance(time.Millisecond)
	_, ok = h.ctrl.Active()
	assert.False(t, ok)
	assert.Equal(t, entity.PreviewIdle, h.ctrl.State())

	h.ctrl.Dismiss(h.ctx, entity.DismissEscape)
	h.loop.Advance(time.Second)

	assert.Equal(t, 1, h.renderer.panels[0].detached)
	assert.Equal(t, 1, h.count(port.PreviewEventClosed))
	assert.Equal(t, entity.DismissGraceExpired, h.events[len(h.events)-1].Reason)
}

func TestPreviewController_HideRechecksPointerAtFireTime(t *testing.T) {
	h := newControllerHarness(t)

	h.hover("a")
	h.loop.Advance(time.Second)
	h.move(outside)

	// The link moved under the resting pointer before the grace timer fired.
	require.NoError(t, h.doc.SetRect(h.doc.MustQueryOne("#a"), entity.Rect{Left: 1150, Top: 0, Width: 100, Height: 40}))
	h.loop.Advance(PreviewGracePeriod)

	assert.Equal(t, entity.PreviewVisible, h.ctrl.State())
	assert.Equal(t, 0, h.renderer.panels[0].detached)
}

func TestPreviewController_EmbedLoadSettlesIntoReady(t *testing.T) {
	h := newControllerHarness(t)

	h.hover("a")
	h.loop.Advance(time.Second)
	p := h.renderer.panels[0]

	p.cb.OnLoad()
	h.loop.RunPending()
	assert.True(t, p.HasClass(port.PanelClassLoading), "still settling")

	h.loop.Advance(PreviewSettleDelay)
	assert.False(t, p.HasClass(port.PanelClassLoading))
	assert.True(t, p.HasClass(port.PanelClassLoaded))
	assert.False(t, p.hasInd)

	active, _ := h.ctrl.Active()
	assert.Equal(t, entity.OutcomeLoaded, active.Outcome)
	assert.Equal(t, 1, h.count(port.PreviewEventReady))
}

func TestPreviewController_EmbedFailureKeepsPanelOpen(t *testing.T) {
	h := newControllerHarness(t)

	h.hover("a")
	h.loop.Advance(time.Second)
	p := h.renderer.panels[0]

	p.cb.OnError(errors.New("refused to frame"))
	h.loop.RunPending()

	assert.Equal(t, PreviewFailedText, p.indicator)
	assert.True(t, p.HasClass(port.PanelClassLoadFailed))
	assert.Equal(t, 0, p.detached)
	assert.Equal(t, entity.PreviewVisible, h.ctrl.State())
	assert.Equal(t, 1, h.count(port.PreviewEventFailed))

	// A late load after failure changes nothing.
	p.cb.OnLoad()
	h.loop.Advance(time.Second)
	assert.False(t, p.HasClass(port.PanelClassLoaded))
}

func TestPreviewController_StaleEmbedCallbackIgnored(t *testing.T) {
	h := newControllerHarness(t)

	h.hover("a")
	h.loop.Advance(time.Second)
	first := h.renderer.panels[0]

	h.hover("c")
	h.loop.Advance(time.Second)
	second := h.renderer.panels[1]

	first.cb.OnLoad()
	first.cb.OnError(errors.New("late"))
	h.loop.Advance(time.Second)

	assert.False(t, second.HasClass(port.PanelClassLoaded))
	assert.False(t, second.HasClass(port.PanelClassLoadFailed))
	assert.Equal(t, 0, h.count(port.PreviewEventReady))
}

func TestPreviewController_SettleCancelledByDismiss(t *testing.T) {
	h := newControllerHarness(t)

	h.hover("a")
	h.loop.Advance(time.Second)
	p := h.renderer.panels[0]

	p.cb.OnLoad()
	h.loop.RunPending()
	h.ctrl.Dismiss(h.ctx, entity.DismissEscape)
	h.loop.Advance(time.Second)

	assert.False(t, p.HasClass(port.PanelClassLoaded))
	assert.Equal(t, 0, h.loop.PendingTimers())
}

func TestPreviewController_NewLinkSupersedesActive(t *testing.T) {
	h := newControllerHarness(t)

	h.hover("a")
	h.loop.Advance(time.Second)

	h.hover("b")
	assert.Equal(t, 1, h.renderer.panels[0].detached)
	assert.Equal(t, entity.PreviewShowPending, h.ctrl.State())

	closed := h.events[len(h.events)-2]
	assert.Equal(t, port.PreviewEventClosed, closed.Kind)
	assert.Equal(t, entity.DismissSuperseded, closed.Reason)

	h.loop.Advance(time.Second)
	require.Len(t, h.renderer.panels, 2)
	assert.Equal(t, "https://github.com/bnema", h.renderer.panels[1].url)
}

func TestPreviewController_DismissFromShowPending(t *testing.T) {
	h := newControllerHarness(t)

	h.hover("a")
	h.ctrl.Dismiss(h.ctx, entity.DismissEscape)
	h.loop.Advance(time.Second)

	assert.Empty(t, h.renderer.panels)
	assert.Equal(t, entity.PreviewIdle, h.ctrl.State())
	assert.Equal(t, 0, h.loop.PendingTimers())
}

func TestPreviewController_ZeroDelayStillDeferred(t *testing.T) {
	h := newControllerHarness(t)
	h.settings.HoverDelayMs = 0

	h.hover("a")
	assert.Empty(t, h.renderer.panels)

	h.loop.Advance(0)
	assert.Len(t, h.renderer.panels, 1)
}

func TestPreviewController_AtMostOnePreview(t *testing.T) {
	h := newControllerHarness(t)
	rng := rand.New(rand.NewPCG(1, 2))
	links := []string{"a", "b", "c"}

	for i := 0; i < 2000; i++ {
		switch rng.IntN(5) {
		case 0, 1:
			h.hover(links[rng.IntN(len(links))])
		case 2:
			h.move(entity.Point{X: rng.Float64() * 1280, Y: rng.Float64() * 800})
		case 3:
			h.loop.Advance(time.Duration(rng.IntN(700)) * time.Millisecond)
		case 4:
			if len(h.renderer.panels) > 0 {
				p := h.renderer.panels[rng.IntN(len(h.renderer.panels))]
				if p.cb.OnLoad != nil {
					p.cb.OnLoad()
				}
			}
		}
		require.LessOrEqual(t, h.renderer.live(), 1, "step %d", i)

		_, active := h.ctrl.Active()
		assert.Equal(t, active, h.renderer.live() == 1, "step %d", i)
	}

	for _, p := range h.renderer.panels {
		assert.LessOrEqual(t, p.detached, 1)
	}
}

func TestPreviewController_DetachOnceWithMockPanel(t *testing.T) {
	doc, err := htmldom.ParseString(controllerFixture, htmldom.DefaultOptions())
	require.NoError(t, err)
	loop := mainloop.NewVirtualLoop(time.Unix(0, 0))

	panel := portmocks.NewMockPanel(t)
	panel.EXPECT().SetGeometry(mock.Anything).Once()
	panel.EXPECT().AddClass(port.PanelClassLoading).Once()
	panel.EXPECT().ShowIndicator(PreviewLoadingText).Once()
	panel.EXPECT().Embed("https://example.com", mock.Anything).Once()
	panel.EXPECT().Detach().Once()

	renderer := portmocks.NewMockPanelRenderer(t)
	renderer.EXPECT().NewPanel(doc).Return(panel).Once()

	ctrl := NewPreviewController(context.Background(), PreviewControllerDeps{
		Scheduler: loop,
		Panels:    renderer,
	})
	el := doc.MustQueryOne("#a")
	ctrl.RequestPreview(context.Background(), port.LinkCandidate{Element: el, URL: el.Href()})
	loop.Advance(time.Second)

	ctrl.Dismiss(context.Background(), entity.DismissTeardown)
	ctrl.Dismiss(context.Background(), entity.DismissTeardown)
}
