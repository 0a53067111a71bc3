// Package htmldom adapts parsed HTML into the document ports used by the
// link locator and preview controller.
package htmldom

import (
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"

	"golang.org/x/net/html"

	"github.com/bnema/linkpeek/internal/application/port"
	"github.com/bnema/linkpeek/internal/domain/entity"
)

// Options control parsing and layout of a document.
type Options struct {
	// BaseURL resolves relative anchor targets. Empty leaves them unresolved.
	BaseURL string
	// Viewport is the visible area of the window showing the document.
	Viewport entity.Size
	// Layout tunes the flow layout.
	Layout LayoutOptions
}

// DefaultOptions returns a 1280x800 viewport with the default layout.
func DefaultOptions() Options {
	return Options{
		Viewport: entity.Size{Width: 1280, Height: 800},
		Layout:   DefaultLayoutOptions(),
	}
}

// Document is a parsed HTML document with a computed layout.
// It implements port.Document.
type Document struct {
	root *html.Node
	body *node
	base *url.URL
	opts Options

	mu       sync.RWMutex
	nodes    map[*html.Node]*node
	rects    map[*html.Node]entity.Rect
	viewport entity.Size
	scrollY  float64

	overlays     []*html.Node
	overlayRects map[*html.Node]entity.Rect
}

var _ port.Document = (*Document)(nil)

// Parse parses an HTML document and lays it out.
func Parse(r io.Reader, opts Options) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	d := &Document{
		root:         root,
		opts:         opts,
		nodes:        make(map[*html.Node]*node),
		viewport:     opts.Viewport,
		overlayRects: make(map[*html.Node]entity.Rect),
	}
	if opts.BaseURL != "" {
		base, err := url.Parse(opts.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("parse base url: %w", err)
		}
		d.base = base
	}

	if b := findElement(root, "body"); b != nil {
		d.body = d.wrap(b)
	}
	d.Relayout()
	return d, nil
}

// ParseString parses HTML from a string.
func ParseString(s string, opts Options) (*Document, error) {
	return Parse(strings.NewReader(s), opts)
}

// Body implements port.Document.
func (d *Document) Body() port.Element {
	if d.body == nil {
		return nil
	}
	return d.body
}

// Viewport implements port.Document.
func (d *Document) Viewport() entity.Size {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.viewport
}

// SetViewport resizes the viewport and reflows the document.
func (d *Document) SetViewport(size entity.Size) {
	d.mu.Lock()
	d.viewport = size
	d.mu.Unlock()
	d.Relayout()
}

// ScrollTo sets the vertical scroll offset. Rects move accordingly.
func (d *Document) ScrollTo(y float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.scrollY = max(0, y)
}

// ScrollY returns the vertical scroll offset.
func (d *Document) ScrollY() float64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.scrollY
}

// Relayout recomputes the rect of every element.
func (d *Document) Relayout() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rects = layoutDocument(d.root, d.viewport, d.opts.Layout)
}

// SetRect overrides the layout rect of el, in document coordinates.
// The override lasts until the next Relayout.
func (d *Document) SetRect(el port.Element, r entity.Rect) error {
	n, ok := el.(*node)
	if !ok || n.doc != d {
		return fmt.Errorf("element does not belong to this document")
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rects[n.n] = r
	return nil
}

// ElementFromPoint implements port.Document. Overlays are on top; below
// them it returns the deepest element whose rect contains p, preferring
// later siblings as the topmost.
func (d *Document) ElementFromPoint(p entity.Point) port.Element {
	d.mu.RLock()
	vp := d.viewport
	docPoint := entity.Point{X: p.X, Y: p.Y + d.scrollY}
	d.mu.RUnlock()

	if p.X < 0 || p.Y < 0 || p.X > vp.Width || p.Y > vp.Height {
		return nil
	}
	if o := d.overlayAt(p); o != nil {
		return d.wrap(o)
	}
	if d.body == nil {
		return nil
	}
	hit := d.hitTest(d.body.n, docPoint)
	if hit == nil {
		return nil
	}
	return d.wrap(hit)
}

func (d *Document) hitTest(n *html.Node, p entity.Point) *html.Node {
	for c := n.LastChild; c != nil; c = c.PrevSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if hit := d.hitTest(c, p); hit != nil {
			return hit
		}
	}
	d.mu.RLock()
	r, ok := d.rects[n]
	d.mu.RUnlock()
	if ok && r.Contains(p) {
		return n
	}
	return nil
}

// rectOf returns the viewport rect of n.
func (d *Document) rectOf(n *html.Node) entity.Rect {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if r, ok := d.overlayRects[n]; ok {
		return r
	}
	r, ok := d.rects[n]
	if !ok {
		return entity.Rect{}
	}
	r.Top -= d.scrollY
	return r
}

// wrap returns the stable node wrapper for n.
func (d *Document) wrap(n *html.Node) *node {
	d.mu.Lock()
	defer d.mu.Unlock()
	if w, ok := d.nodes[n]; ok {
		return w
	}
	w := &node{n: n, doc: d}
	d.nodes[n] = w
	return w
}

func (d *Document) resolveHref(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	ref, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	if d.base != nil {
		ref = d.base.ResolveReference(ref)
	}
	if !ref.IsAbs() {
		return ""
	}
	return ref.String()
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}
