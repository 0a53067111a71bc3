package port

import (
	"context"

	"github.com/bnema/linkpeek/internal/domain/entity"
)

// Modifiers is the set of modifier keys held during an input event.
type Modifiers struct {
	Ctrl, Meta, Alt, Shift bool
}

// Has reports whether key is held.
func (m Modifiers) Has(key entity.ModifierKey) bool {
	switch key {
	case entity.ModifierCtrl:
		return m.Ctrl
	case entity.ModifierMeta:
		return m.Meta
	case entity.ModifierAlt:
		return m.Alt
	case entity.ModifierShift:
		return m.Shift
	}
	return false
}

// PointerEvent is a pointer-over or pointer-move event.
type PointerEvent struct {
	Target        Node
	RelatedTarget Node
	Point         entity.Point
	Modifiers     Modifiers
}

// KeyEvent is a key-down or key-up event. Key uses KeyboardEvent.key names.
type KeyEvent struct {
	Key       string
	Modifiers Modifiers
}

// Window is a host window showing one document surface.
type Window interface {
	ID() string
	Document() Document
}

// EditorMode tells how the active editor renders markup.
type EditorMode string

const (
	EditorModeSource      EditorMode = "source"
	EditorModeLivePreview EditorMode = "live_preview"
)

// Editor is the structured editing surface of the workspace.
type Editor interface {
	// Text returns the full underlying document text.
	Text() string
	Mode() EditorMode
}

// Workspace gives access to open windows and the active editor.
type Workspace interface {
	Windows() []Window
	// ActiveEditor returns the focused editor, if any.
	ActiveEditor() (Editor, bool)
}

// EventRegistrar registers listeners scoped to the extension lifetime.
// Everything registered is removed automatically when the extension unloads.
type EventRegistrar interface {
	OnPointerOver(win Window, fn func(PointerEvent))
	OnPointerMove(win Window, fn func(PointerEvent))
	OnKeyDown(win Window, fn func(KeyEvent))
	OnKeyUp(win Window, fn func(KeyEvent))
	// OnWindowOpen is called for every window opened after registration.
	OnWindowOpen(fn func(Window))
}

// PluginDataStore loads and saves the extension's configuration blob.
// LoadData returns nil data when nothing has been saved yet.
type PluginDataStore interface {
	LoadData(ctx context.Context) ([]byte, error)
	SaveData(ctx context.Context, data []byte) error
}

// Host is what the embedding application offers the extension.
type Host interface {
	Workspace() Workspace
	Registrar() EventRegistrar
	Data() PluginDataStore
	Platform() entity.Platform
	Panels() PanelRenderer
	Scheduler() Scheduler
	AddSettingsTab(page SettingsPage)
	// OnLayoutReady runs fn once the workspace is ready (immediately if it already is).
	OnLayoutReady(fn func())
}
