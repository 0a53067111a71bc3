package port

import "github.com/bnema/linkpeek/internal/domain/entity"

// Node is any node of a rendered document tree.
// Text and comment nodes return nil from Element.
type Node interface {
	// ParentNode returns the parent node, or nil at the document root.
	ParentNode() Node
	// Element returns the node as an element, or nil for non-element nodes.
	Element() Element
}

// Element is an element node of a rendered document.
// Implementations must be identity-stable: the same underlying element is
// always represented by the same Element value, so == comparisons work.
type Element interface {
	Node

	// TagName returns the lower-case tag name.
	TagName() string
	// Attr returns the raw attribute value.
	Attr(name string) (string, bool)
	// HasClass reports whether the class list contains name.
	HasClass(name string) bool
	// Href returns the resolved absolute target of a native hyperlink,
	// or "" when the element is not an anchor or has no resolvable target.
	Href() string
	// TextContent returns the concatenated rendered text of the subtree.
	TextContent() string
	// Children returns the child elements in document order.
	Children() []Element
	// Contains reports whether other is this element or one of its descendants.
	Contains(other Node) bool
	// BoundingRect returns the live layout rectangle in viewport coordinates.
	BoundingRect() entity.Rect
	// OwnerDocument returns the document the element belongs to.
	OwnerDocument() Document
}

// Document is a rendered document surface inside a host window.
type Document interface {
	// Body returns the body element, the upper bound for ancestor walks.
	Body() Element
	// ElementFromPoint returns the topmost element at p, or nil.
	ElementFromPoint(p entity.Point) Element
	// Viewport returns the visible area size.
	Viewport() entity.Size
}
