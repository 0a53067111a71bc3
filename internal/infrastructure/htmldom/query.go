package htmldom

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"github.com/bnema/linkpeek/internal/application/port"
)

// Query returns the elements matching a CSS selector, in document order.
func (d *Document) Query(selector string) []port.Element {
	sel := goquery.NewDocumentFromNode(d.root).Find(selector)
	out := make([]port.Element, 0, sel.Length())
	for _, n := range sel.Nodes {
		out = append(out, d.wrap(n))
	}
	return out
}

// QueryOne returns the first element matching selector.
func (d *Document) QueryOne(selector string) (port.Element, error) {
	sel := goquery.NewDocumentFromNode(d.root).Find(selector).First()
	if sel.Length() == 0 {
		return nil, fmt.Errorf("no element matches %q", selector)
	}
	return d.wrap(sel.Nodes[0]), nil
}

// MustQueryOne is QueryOne for fixtures; it panics when nothing matches.
func (d *Document) MustQueryOne(selector string) port.Element {
	el, err := d.QueryOne(selector)
	if err != nil {
		panic(err)
	}
	return el
}

// OuterHTML renders el back to HTML.
func OuterHTML(el port.Element) (string, error) {
	w, ok := el.(*node)
	if !ok {
		return "", fmt.Errorf("element is not an htmldom node")
	}
	return goquery.OuterHtml(goquery.NewDocumentFromNode(w.n).Selection)
}
