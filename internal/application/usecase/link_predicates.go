package usecase

import (
	"strings"

	"github.com/bnema/linkpeek/internal/application/port"
)

// Editor surface classes emitted by the live-preview renderer.
const (
	EditorSurfaceClass   = "cm-editor"
	EditorLinkClass      = "cm-link"
	EditorUnderlineClass = "cm-underline"
	EditorURLClass       = "cm-url"
)

// LinkPredicate tests whether an element looks like a link.
type LinkPredicate struct {
	Name  string
	Match func(el port.Element) bool
}

// LinkPredicates is the ordered set of link shapes recognised on hover.
// Earlier entries take precedence when an ancestor walk could match several.
var LinkPredicates = []LinkPredicate{
	{Name: "external-anchor", Match: func(el port.Element) bool {
		return isAnchor(el) && el.HasClass(ExternalLinkClass)
	}},
	{Name: "http-anchor", Match: func(el port.Element) bool {
		if !isAnchor(el) {
			return false
		}
		href, ok := el.Attr("href")
		return ok && strings.HasPrefix(href, "http")
	}},
	{Name: "external-span", Match: func(el port.Element) bool {
		return strings.EqualFold(el.TagName(), "span") && el.HasClass(ExternalLinkClass)
	}},
	{Name: "editor-link", Match: func(el port.Element) bool {
		return el.HasClass(EditorLinkClass)
	}},
	{Name: "editor-underline", Match: func(el port.Element) bool {
		return el.HasClass(EditorUnderlineClass)
	}},
	{Name: "editor-url", Match: func(el port.Element) bool {
		return el.HasClass(EditorURLClass)
	}},
	{Name: "data-link", Match: func(el port.Element) bool {
		if _, ok := el.Attr("data-href"); ok {
			return true
		}
		_, ok := el.Attr("data-url")
		return ok
	}},
}

// MatchLinkPredicate returns the name of the first predicate el satisfies.
func MatchLinkPredicate(el port.Element) (string, bool) {
	if el == nil {
		return "", false
	}
	for _, p := range LinkPredicates {
		if p.Match(el) {
			return p.Name, true
		}
	}
	return "", false
}

// InEditorSurface reports whether el sits inside a structured editing surface.
func InEditorSurface(el port.Element) bool {
	for n := port.Node(el); n != nil; n = n.ParentNode() {
		if e := n.Element(); e != nil && e.HasClass(EditorSurfaceClass) {
			return true
		}
	}
	return false
}
