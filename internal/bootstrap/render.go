package bootstrap

import (
	"fmt"
	"strings"

	"github.com/bnema/linkpeek/internal/application/port"
	"github.com/bnema/linkpeek/internal/domain/entity"
	"github.com/bnema/linkpeek/internal/infrastructure/config"
	"github.com/bnema/linkpeek/internal/infrastructure/htmldom"
	"github.com/bnema/linkpeek/internal/infrastructure/markdown"
)

// VaultBaseURL resolves relative links of rendered notes.
const VaultBaseURL = "app://vault/"

// DocumentMode selects how a note is rendered into a window.
type DocumentMode string

const (
	ModeReading DocumentMode = "reading"
	ModeLive    DocumentMode = "live"
)

// ParseDocumentMode parses a --mode value.
func ParseDocumentMode(s string) (DocumentMode, error) {
	switch DocumentMode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeReading, "":
		return ModeReading, nil
	case ModeLive, "live_preview", "live-preview":
		return ModeLive, nil
	}
	return "", fmt.Errorf("unknown document mode %q (want reading or live)", s)
}

// EditorMode returns the editor mode matching the rendering.
func (m DocumentMode) EditorMode() port.EditorMode {
	if m == ModeLive {
		return port.EditorModeLivePreview
	}
	return port.EditorModeSource
}

// Renderer turns markdown into laid-out documents.
type Renderer struct {
	reading *markdown.ReadingRenderer
	opts    htmldom.Options
}

// NewRenderer builds a renderer using the simulation viewport and cell size.
func NewRenderer(sim config.SimulationConfig) *Renderer {
	opts := htmldom.DefaultOptions()
	opts.BaseURL = VaultBaseURL
	if sim.ViewportWidth > 0 && sim.ViewportHeight > 0 {
		opts.Viewport = entity.Size{Width: sim.ViewportWidth, Height: sim.ViewportHeight}
	}
	if sim.CharWidth > 0 {
		opts.Layout.CharWidth = sim.CharWidth
	}
	if sim.LineHeight > 0 {
		opts.Layout.LineHeight = sim.LineHeight
	}
	return &Renderer{reading: markdown.NewReadingRenderer(), opts: opts}
}

// Render renders src in mode.
func (r *Renderer) Render(src string, mode DocumentMode) (*htmldom.Document, error) {
	var out string
	switch mode {
	case ModeLive:
		out = markdown.RenderLivePreview(src)
	default:
		var err error
		out, err = r.reading.Render([]byte(src))
		if err != nil {
			return nil, fmt.Errorf("render markdown: %w", err)
		}
	}
	doc, err := htmldom.ParseString(out, r.opts)
	if err != nil {
		return nil, fmt.Errorf("parse rendered note: %w", err)
	}
	return doc, nil
}
