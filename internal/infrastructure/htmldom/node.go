package htmldom

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/bnema/linkpeek/internal/application/port"
	"github.com/bnema/linkpeek/internal/domain/entity"
)

// node wraps an html.Node. Element nodes implement port.Element.
type node struct {
	n   *html.Node
	doc *Document
}

var _ port.Element = (*node)(nil)

func (w *node) ParentNode() port.Node {
	if w.n.Parent == nil || w.n.Parent.Type == html.DocumentNode {
		return nil
	}
	return w.doc.wrap(w.n.Parent)
}

func (w *node) Element() port.Element {
	if w.n.Type != html.ElementNode {
		return nil
	}
	return w
}

func (w *node) TagName() string {
	return strings.ToLower(w.n.Data)
}

func (w *node) Attr(name string) (string, bool) {
	for _, a := range w.n.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, name) {
			return a.Val, true
		}
	}
	return "", false
}

func (w *node) HasClass(name string) bool {
	classes, ok := w.Attr("class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(classes) {
		if c == name {
			return true
		}
	}
	return false
}

func (w *node) Href() string {
	if w.TagName() != "a" {
		return ""
	}
	raw, ok := w.Attr("href")
	if !ok {
		return ""
	}
	return w.doc.resolveHref(raw)
}

func (w *node) TextContent() string {
	var sb strings.Builder
	collectText(w.n, &sb)
	return sb.String()
}

func (w *node) Children() []port.Element {
	var out []port.Element
	for c := w.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, w.doc.wrap(c))
		}
	}
	return out
}

func (w *node) Contains(other port.Node) bool {
	for n := other; n != nil; n = n.ParentNode() {
		if o, ok := n.(*node); ok && o == w {
			return true
		}
	}
	return false
}

func (w *node) BoundingRect() entity.Rect {
	return w.doc.rectOf(w.n)
}

func (w *node) OwnerDocument() port.Document {
	return w.doc
}

// String renders a short description such as a.external-link.
func (w *node) String() string {
	if w.n.Type != html.ElementNode {
		return "#text"
	}
	s := w.TagName()
	if classes, ok := w.Attr("class"); ok {
		for _, c := range strings.Fields(classes) {
			s += "." + c
		}
	}
	return s
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}

// TextNodes returns the text node children of el, for pointer targets that
// land on text rather than on an element.
func TextNodes(el port.Element) []port.Node {
	w, ok := el.(*node)
	if !ok {
		return nil
	}
	var out []port.Node
	for c := w.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			out = append(out, w.doc.wrap(c))
		}
	}
	return out
}
