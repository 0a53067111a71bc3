package port

import (
	"context"

	"github.com/bnema/linkpeek/internal/domain/entity"
)

// Panel state classes interpreted by the presentation layer.
const (
	PanelClassLoading    = "loading"
	PanelClassLoaded     = "loaded"
	PanelClassLoadFailed = "load-failed"
	PanelClassGitHubCrop = "github-style-crop"
)

// EmbedCallbacks receives the outcome of an embedded content load.
// Callbacks may be invoked from any goroutine.
type EmbedCallbacks struct {
	OnLoad  func()
	OnError func(err error)
}

// Panel is the floating preview element. The controller exclusively owns it.
type Panel interface {
	// SetGeometry applies the inline placement rectangle.
	SetGeometry(r entity.Rect)
	AddClass(name string)
	RemoveClass(name string)
	HasClass(name string) bool

	// ShowIndicator shows the loading indicator with text.
	ShowIndicator(text string)
	// SetIndicatorText replaces the indicator text.
	SetIndicatorText(text string)
	// RemoveIndicator removes the indicator element.
	RemoveIndicator()

	// Embed starts loading url into the sandboxed embedded view.
	Embed(url string, cb EmbedCallbacks)

	// BoundingRect returns the live rectangle of the panel.
	BoundingRect() entity.Rect

	// Detach removes the panel from its document and releases the embed.
	Detach()
}

// PanelRenderer creates panels inside a document.
type PanelRenderer interface {
	NewPanel(doc Document) Panel
}

// EmbedEngine renders a URL in an isolated browsing surface.
// Load blocks until the content finished loading or failed; the failure
// reason is opaque to callers.
type EmbedEngine interface {
	Load(ctx context.Context, url string) error
	Name() string
}
