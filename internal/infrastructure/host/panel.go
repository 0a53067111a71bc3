package host

import (
	"context"
	"slices"
	"sync"

	"github.com/bnema/linkpeek/internal/application/port"
	"github.com/bnema/linkpeek/internal/domain/entity"
	"github.com/bnema/linkpeek/internal/infrastructure/htmldom"
	"github.com/bnema/linkpeek/internal/logging"
)

// PanelOverlayClass is the class of the overlay element a panel places in
// an htmldom document.
const PanelOverlayClass = "link-preview-panel"

// Panel is a floating preview element whose embedded view is loaded by an
// EmbedEngine on its own goroutine.
type Panel struct {
	ctx      context.Context
	renderer *PanelRenderer
	doc      port.Document
	overlay  *htmldom.Overlay

	mu        sync.Mutex
	rect      entity.Rect
	classes   []string
	indicator string
	hasInd    bool
	url       string
	cancel    context.CancelFunc
	detached  bool
}

var _ port.Panel = (*Panel)(nil)

func (p *Panel) SetGeometry(r entity.Rect) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rect = r
	if p.overlay != nil && !p.detached {
		p.overlay.SetRect(r)
	}
}

func (p *Panel) AddClass(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !slices.Contains(p.classes, name) {
		p.classes = append(p.classes, name)
	}
}

func (p *Panel) RemoveClass(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.classes = slices.DeleteFunc(p.classes, func(c string) bool { return c == name })
}

func (p *Panel) HasClass(name string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Contains(p.classes, name)
}

// Classes returns the class list in insertion order.
func (p *Panel) Classes() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.classes)
}

func (p *Panel) ShowIndicator(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.indicator, p.hasInd = text, true
}

func (p *Panel) SetIndicatorText(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.hasInd {
		p.indicator = text
	}
}

func (p *Panel) RemoveIndicator() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.indicator, p.hasInd = "", false
}

// Indicator returns the indicator text and whether it is shown.
func (p *Panel) Indicator() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.indicator, p.hasInd
}

// Embed starts the engine load. The callbacks run on the load goroutine and
// are skipped once the panel is detached.
func (p *Panel) Embed(url string, cb port.EmbedCallbacks) {
	p.mu.Lock()
	if p.detached {
		p.mu.Unlock()
		return
	}
	if p.cancel != nil {
		p.cancel()
	}
	ctx, cancel := context.WithCancel(logging.WithURL(p.ctx, url))
	p.url, p.cancel = url, cancel
	p.mu.Unlock()

	engine := p.renderer.engine
	p.renderer.wg.Add(1)
	go func() {
		defer p.renderer.wg.Done()
		err := engine.Load(ctx, url)
		if ctx.Err() != nil {
			logging.FromContext(ctx).Debug().Str("engine", engine.Name()).Msg("embed load abandoned")
			return
		}
		if err != nil {
			logging.FromContext(ctx).Debug().Err(err).Str("engine", engine.Name()).Msg("embed load failed")
			if cb.OnError != nil {
				cb.OnError(err)
			}
			return
		}
		if cb.OnLoad != nil {
			cb.OnLoad()
		}
	}()
}

// URL returns the embedded URL.
func (p *Panel) URL() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.url
}

func (p *Panel) BoundingRect() entity.Rect {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rect
}

func (p *Panel) Detach() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.detached {
		return
	}
	p.detached = true
	if p.overlay != nil {
		p.overlay.Remove()
	}
	if p.cancel != nil {
		p.cancel()
	}
}

// Detached reports whether the panel was removed from its document.
func (p *Panel) Detached() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.detached
}

// Document returns the document the panel was created in.
func (p *Panel) Document() port.Document { return p.doc }

// Element returns the panel's overlay element, or nil when the document is
// not an htmldom document.
func (p *Panel) Element() port.Element {
	if p.overlay == nil {
		return nil
	}
	return p.overlay.Element()
}

// PanelRenderer creates Panels and keeps track of them.
type PanelRenderer struct {
	ctx    context.Context
	engine port.EmbedEngine

	mu     sync.Mutex
	panels []*Panel
	wg     sync.WaitGroup
}

var _ port.PanelRenderer = (*PanelRenderer)(nil)

// NewPanelRenderer creates a renderer loading embeds with engine.
func NewPanelRenderer(ctx context.Context, engine port.EmbedEngine) *PanelRenderer {
	return &PanelRenderer{ctx: logging.WithComponent(ctx, "panel"), engine: engine}
}

func (r *PanelRenderer) NewPanel(doc port.Document) port.Panel {
	p := &Panel{ctx: r.ctx, renderer: r, doc: doc}
	if hd, ok := doc.(*htmldom.Document); ok {
		p.overlay = hd.AddOverlay(PanelOverlayClass)
	}
	r.mu.Lock()
	r.panels = append(r.panels, p)
	r.mu.Unlock()
	return p
}

// Panels returns every panel created so far.
func (r *PanelRenderer) Panels() []*Panel {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.panels)
}

// Attached returns the panels that are still in their document.
func (r *PanelRenderer) Attached() []*Panel {
	var out []*Panel
	for _, p := range r.Panels() {
		if !p.Detached() {
			out = append(out, p)
		}
	}
	return out
}

// Wait blocks until every embed goroutine returned.
func (r *PanelRenderer) Wait() {
	r.wg.Wait()
}
