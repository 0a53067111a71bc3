package htmldom

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"

	"github.com/bnema/linkpeek/internal/domain/entity"
)

// LayoutOptions tune the monospace flow layout.
type LayoutOptions struct {
	CharWidth  float64
	LineHeight float64
	Padding    float64
}

// DefaultLayoutOptions returns 8x20 cells with 16px page padding.
func DefaultLayoutOptions() LayoutOptions {
	return LayoutOptions{CharWidth: 8, LineHeight: 20, Padding: 16}
}

// RectAttribute pins an element to an explicit "left,top,width,height" rect.
const RectAttribute = "data-rect"

var blockTags = map[string]bool{
	"html": true, "body": true, "div": true, "p": true, "section": true,
	"article": true, "main": true, "header": true, "footer": true, "nav": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"ul": true, "ol": true, "li": true, "blockquote": true, "pre": true,
	"table": true, "tr": true, "hr": true, "figure": true, "details": true,
}

var skippedTags = map[string]bool{
	"head": true, "script": true, "style": true, "template": true, "noscript": true,
}

type flow struct {
	opts        LayoutOptions
	left, right float64
	x, y        float64
	rects       map[*html.Node]entity.Rect
}

// layoutDocument assigns a document-coordinate rect to every element.
// Text wraps at word boundaries; inline elements get the union of their runs.
func layoutDocument(root *html.Node, viewport entity.Size, opts LayoutOptions) map[*html.Node]entity.Rect {
	if opts.CharWidth <= 0 || opts.LineHeight <= 0 {
		opts = DefaultLayoutOptions()
	}
	f := &flow{
		opts:  opts,
		left:  opts.Padding,
		right: max(opts.Padding+opts.CharWidth, viewport.Width-opts.Padding),
		x:     opts.Padding,
		y:     opts.Padding,
		rects: make(map[*html.Node]entity.Rect),
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		f.layout(c)
	}
	return f.rects
}

func (f *flow) newline() {
	f.x = f.left
	f.y += f.opts.LineHeight
}

// layout places n and returns the union of what it occupies.
func (f *flow) layout(n *html.Node) entity.Rect {
	switch n.Type {
	case html.TextNode:
		return f.text(n.Data)
	case html.ElementNode:
	default:
		return entity.Rect{}
	}

	tag := strings.ToLower(n.Data)
	if skippedTags[tag] {
		return entity.Rect{}
	}
	if tag == "br" {
		f.newline()
		return entity.Rect{}
	}

	block := blockTags[tag]
	if block && f.x > f.left {
		f.newline()
	}
	startY := f.y

	var used entity.Rect
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		used = used.Union(f.layout(c))
	}

	if block {
		if f.x > f.left {
			f.newline()
		}
		used = entity.Rect{Left: f.left, Top: startY, Width: f.right - f.left, Height: f.y - startY}
	}
	if pinned, ok := parseRectAttr(n); ok {
		used = pinned
	}
	f.rects[n] = used
	return used
}

func (f *flow) text(s string) entity.Rect {
	var used entity.Rect
	for _, word := range strings.Fields(s) {
		w := float64(utf8.RuneCountInString(word)) * f.opts.CharWidth
		if f.x > f.left && f.x+w > f.right {
			f.newline()
		}
		used = used.Union(entity.Rect{Left: f.x, Top: f.y, Width: w, Height: f.opts.LineHeight})
		f.x += w + f.opts.CharWidth
	}
	return used
}

func parseRectAttr(n *html.Node) (entity.Rect, bool) {
	for _, a := range n.Attr {
		if a.Key != RectAttribute {
			continue
		}
		r, err := ParseRect(a.Val)
		return r, err == nil
	}
	return entity.Rect{}, false
}

// ParseRect parses "left,top,width,height".
func ParseRect(s string) (entity.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return entity.Rect{}, &strconv.NumError{Func: "ParseRect", Num: s, Err: strconv.ErrSyntax}
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return entity.Rect{}, err
		}
		v[i] = f
	}
	return entity.Rect{Left: v[0], Top: v[1], Width: v[2], Height: v[3]}, nil
}
