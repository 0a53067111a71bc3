package usecase

import (
	"strings"

	"github.com/bnema/linkpeek/internal/application/port"
	urlutil "github.com/bnema/linkpeek/internal/domain/url"
)

// ExternalLinkClass marks rendered external links in the reading view.
const ExternalLinkClass = "external-link"

// urlAttributes are checked in order when the element is not a native link.
var urlAttributes = []string{
	"link-destination",
	"data-href",
	"data-url",
	"href",
	"aria-label",
	"title",
}

// ExtractURL returns the absolute http(s) URL an element points to.
// The native hyperlink target wins, then link-carrying attributes, then the
// nearest anchor or external-link ancestor, then the element's own text.
func ExtractURL(el port.Element) (string, bool) {
	if el == nil {
		return "", false
	}

	if isAnchor(el) {
		if href := el.Href(); href != "" {
			return href, true
		}
	}

	for _, name := range urlAttributes {
		value, ok := el.Attr(name)
		if !ok {
			continue
		}
		if u, ok := urlutil.NormalizeHTTP(value); ok {
			return u, true
		}
	}

	if u, ok := urlFromAncestors(el); ok {
		return u, true
	}

	return urlutil.NormalizeHTTP(el.TextContent())
}

// urlFromAncestors walks up to the body looking for an anchor or an
// external-link container.
func urlFromAncestors(el port.Element) (string, bool) {
	var body port.Element
	if doc := el.OwnerDocument(); doc != nil {
		body = doc.Body()
	}

	for n := el.ParentNode(); n != nil; n = n.ParentNode() {
		parent := n.Element()
		if parent == nil {
			continue
		}
		if body != nil && parent == body {
			return "", false
		}
		if isAnchor(parent) {
			if href := parent.Href(); href != "" {
				return href, true
			}
			return "", false
		}
		if parent.HasClass(ExternalLinkClass) {
			return firstDescendantHref(parent)
		}
	}
	return "", false
}

func firstDescendantHref(root port.Element) (string, bool) {
	for _, child := range root.Children() {
		if isAnchor(child) {
			if href := child.Href(); href != "" {
				return href, true
			}
		}
		if href, ok := firstDescendantHref(child); ok {
			return href, true
		}
	}
	return "", false
}

func isAnchor(el port.Element) bool {
	return strings.EqualFold(el.TagName(), "a")
}
