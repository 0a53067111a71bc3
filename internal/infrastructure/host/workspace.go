// Package host is an in-process host for the preview plugin: windows
// showing rendered documents, a scoped event registrar, a recording
// settings toolkit and panels backed by an embed engine.
package host

import (
	"sync"

	"github.com/bnema/linkpeek/internal/application/port"
	"github.com/bnema/linkpeek/internal/infrastructure/htmldom"
)

// Window is a host window showing one document.
type Window struct {
	id string

	mu  sync.RWMutex
	doc *htmldom.Document
}

var _ port.Window = (*Window)(nil)

// NewWindow creates a window around doc.
func NewWindow(id string, doc *htmldom.Document) *Window {
	return &Window{id: id, doc: doc}
}

func (w *Window) ID() string { return w.id }

func (w *Window) Document() port.Document { return w.HTMLDocument() }

// HTMLDocument returns the concrete document, for selectors and scrolling.
func (w *Window) HTMLDocument() *htmldom.Document {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.doc
}

// SetDocument swaps the displayed document, as after a re-render.
// Elements of the previous document keep their identity but are no longer
// reachable through hit testing.
func (w *Window) SetDocument(doc *htmldom.Document) {
	w.mu.Lock()
	w.doc = doc
	w.mu.Unlock()
}

// Editor is the active editing surface backed by the markdown source.
type Editor struct {
	mu   sync.RWMutex
	text string
	mode port.EditorMode
}

var _ port.Editor = (*Editor)(nil)

// NewEditor creates an editor holding text.
func NewEditor(text string, mode port.EditorMode) *Editor {
	return &Editor{text: text, mode: mode}
}

func (e *Editor) Text() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.text
}

func (e *Editor) Mode() port.EditorMode {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.mode
}

// SetText replaces the document text.
func (e *Editor) SetText(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.text = text
}

// Workspace holds the open windows and the active editor.
type Workspace struct {
	mu      sync.RWMutex
	windows []*Window
	editor  *Editor
}

var _ port.Workspace = (*Workspace)(nil)

// NewWorkspace creates an empty workspace.
func NewWorkspace() *Workspace {
	return &Workspace{}
}

func (w *Workspace) Windows() []port.Window {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]port.Window, 0, len(w.windows))
	for _, win := range w.windows {
		out = append(out, win)
	}
	return out
}

func (w *Workspace) ActiveEditor() (port.Editor, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.editor == nil {
		return nil, false
	}
	return w.editor, true
}

// SetActiveEditor focuses e. Passing nil clears the focus.
func (w *Workspace) SetActiveEditor(e *Editor) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.editor = e
}

// Window returns the open window with id.
func (w *Workspace) Window(id string) (*Window, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, win := range w.windows {
		if win.id == id {
			return win, true
		}
	}
	return nil, false
}

func (w *Workspace) add(win *Window) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.windows = append(w.windows, win)
}
