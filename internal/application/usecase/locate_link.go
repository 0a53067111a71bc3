package usecase

import (
	"context"

	"github.com/bnema/linkpeek/internal/application/port"
	"github.com/bnema/linkpeek/internal/logging"
)

// LocateLinkUseCase resolves pointer targets into link candidates.
// It implements port.LinkLocator.
type LocateLinkUseCase struct {
	workspace port.Workspace
	scanner   *LinkScanner
}

var _ port.LinkLocator = (*LocateLinkUseCase)(nil)

// NewLocateLinkUseCase creates a new LocateLinkUseCase.
// workspace may be nil, in which case text-based resolution is skipped.
func NewLocateLinkUseCase(workspace port.Workspace, scanner *LinkScanner) *LocateLinkUseCase {
	if scanner == nil {
		scanner = NewLinkScanner(nil)
	}
	return &LocateLinkUseCase{
		workspace: workspace,
		scanner:   scanner,
	}
}

// Locate walks from target up to the document root and returns the first
// link-like element with a resolvable URL. A related node inside the matched
// element means the pointer moved within the same link and yields nothing.
func (uc *LocateLinkUseCase) Locate(ctx context.Context, target, related port.Node) (port.LinkCandidate, bool) {
	log := logging.FromContext(ctx)

	el, shape := findLinkElement(target)
	if el == nil {
		return port.LinkCandidate{}, false
	}

	if related != nil && el.Contains(related) {
		return port.LinkCandidate{}, false
	}

	if InEditorSurface(el) {
		if u, ok := uc.resolveFromEditorText(el); ok {
			log.Debug().Str("url", u).Str("shape", shape).Msg("link resolved from editor text")
			return port.LinkCandidate{Element: el, URL: u}, true
		}
	}

	u, ok := ExtractURL(el)
	if !ok {
		log.Debug().Str("shape", shape).Msg("link-like element without URL")
		return port.LinkCandidate{}, false
	}
	log.Debug().Str("url", u).Str("shape", shape).Msg("link resolved")
	return port.LinkCandidate{Element: el, URL: u}, true
}

func (uc *LocateLinkUseCase) resolveFromEditorText(el port.Element) (string, bool) {
	if uc.workspace == nil {
		return "", false
	}
	editor, ok := uc.workspace.ActiveEditor()
	if !ok || editor == nil || editor.Mode() != port.EditorModeLivePreview {
		return "", false
	}
	return MatchLinkLabel(uc.scanner.Scan(editor.Text()), el.TextContent())
}

func findLinkElement(target port.Node) (port.Element, string) {
	for n := target; n != nil; n = n.ParentNode() {
		el := n.Element()
		if el == nil {
			continue
		}
		if shape, ok := MatchLinkPredicate(el); ok {
			return el, shape
		}
	}
	return nil, ""
}
