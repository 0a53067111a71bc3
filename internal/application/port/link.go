package port

import "context"

// LinkCandidate is a link-like element with its resolved absolute URL.
// It is produced per hover event and never persisted.
type LinkCandidate struct {
	Element Element
	URL     string
}

// LinkLocator resolves pointer targets into link candidates.
type LinkLocator interface {
	Locate(ctx context.Context, target, related Node) (LinkCandidate, bool)
}
