package htmldom

import (
	"slices"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/bnema/linkpeek/internal/application/port"
	"github.com/bnema/linkpeek/internal/domain/entity"
)

// Overlay is a floating element stacked above the flow content, such as a
// preview panel. Its rect is in viewport coordinates and ignores scrolling.
// The element hangs off body without joining the flow, so layout and
// queries never see it.
type Overlay struct {
	doc *Document
	n   *html.Node
}

// AddOverlay creates an empty overlay div with the given class on top of
// every existing overlay.
func (d *Document) AddOverlay(class string) *Overlay {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Div,
		Data:     "div",
		Attr:     []html.Attribute{{Key: "class", Val: class}},
	}
	if d.body != nil {
		n.Parent = d.body.n
	}
	d.mu.Lock()
	d.overlays = append(d.overlays, n)
	d.overlayRects[n] = entity.Rect{}
	d.mu.Unlock()
	return &Overlay{doc: d, n: n}
}

// Element returns the overlay element.
func (o *Overlay) Element() port.Element { return o.doc.wrap(o.n) }

// SetRect moves the overlay.
func (o *Overlay) SetRect(r entity.Rect) {
	o.doc.mu.Lock()
	defer o.doc.mu.Unlock()
	if _, ok := o.doc.overlayRects[o.n]; ok {
		o.doc.overlayRects[o.n] = r
	}
}

// Remove takes the overlay out of hit testing.
func (o *Overlay) Remove() {
	o.doc.mu.Lock()
	defer o.doc.mu.Unlock()
	o.doc.overlays = slices.DeleteFunc(o.doc.overlays, func(n *html.Node) bool { return n == o.n })
	delete(o.doc.overlayRects, o.n)
}

// overlayAt returns the topmost overlay containing the viewport point p.
func (d *Document) overlayAt(p entity.Point) *html.Node {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for i := len(d.overlays) - 1; i >= 0; i-- {
		n := d.overlays[i]
		if d.overlayRects[n].Contains(p) {
			return n
		}
	}
	return nil
}
