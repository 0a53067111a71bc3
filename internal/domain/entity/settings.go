package entity

import (
	"fmt"
	"strings"
)

// ModifierKey identifies the key that gates previews when RequireModifier is on.
type ModifierKey string

const (
	ModifierCtrl  ModifierKey = "ctrl"
	ModifierMeta  ModifierKey = "meta"
	ModifierAlt   ModifierKey = "alt"
	ModifierShift ModifierKey = "shift"
)

// ModifierKeys lists the accepted modifier keys in display order.
func ModifierKeys() []ModifierKey {
	return []ModifierKey{ModifierCtrl, ModifierMeta, ModifierAlt, ModifierShift}
}

// ParseModifierKey parses a modifier name. Common aliases are accepted.
func ParseModifierKey(s string) (ModifierKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ctrl", "control":
		return ModifierCtrl, nil
	case "meta", "cmd", "command", "super":
		return ModifierMeta, nil
	case "alt", "option":
		return ModifierAlt, nil
	case "shift":
		return ModifierShift, nil
	}
	return "", fmt.Errorf("unknown modifier key %q", s)
}

// DOMKey returns the KeyboardEvent.key value produced by this modifier.
func (m ModifierKey) DOMKey() string {
	switch m {
	case ModifierCtrl:
		return "Control"
	case ModifierMeta:
		return "Meta"
	case ModifierAlt:
		return "Alt"
	case ModifierShift:
		return "Shift"
	}
	return ""
}

// Label returns a human readable name.
func (m ModifierKey) Label() string {
	switch m {
	case ModifierCtrl:
		return "Ctrl"
	case ModifierMeta:
		return "Cmd / Meta"
	case ModifierAlt:
		return "Alt / Option"
	case ModifierShift:
		return "Shift"
	}
	return string(m)
}

// Platform describes the host platform. Only used to pick defaults.
type Platform struct {
	IsMacOS bool
}

// Settings default values.
const (
	DefaultHoverDelayMs       = 500
	DefaultMaxPreviewWidthPx  = 800
	DefaultMaxPreviewHeightPx = 600
)

// Settings is the user configuration of the preview extension.
// Values are treated as immutable snapshots; callers replace them wholesale.
type Settings struct {
	HoverDelayMs     int
	MaxPreviewWidth  int
	MaxPreviewHeight int
	RequireModifier  bool
	ModifierKey      ModifierKey
	CloseOnRelease   bool
}

// DefaultModifierKey returns the platform's primary modifier.
func DefaultModifierKey(p Platform) ModifierKey {
	if p.IsMacOS {
		return ModifierMeta
	}
	return ModifierCtrl
}

// DefaultSettings returns the defaults for a platform.
func DefaultSettings(p Platform) Settings {
	return Settings{
		HoverDelayMs:     DefaultHoverDelayMs,
		MaxPreviewWidth:  DefaultMaxPreviewWidthPx,
		MaxPreviewHeight: DefaultMaxPreviewHeightPx,
		RequireModifier:  false,
		ModifierKey:      DefaultModifierKey(p),
		CloseOnRelease:   true,
	}
}

// Normalize replaces out-of-range fields with platform defaults.
func (s Settings) Normalize(p Platform) Settings {
	def := DefaultSettings(p)
	if s.HoverDelayMs < 0 {
		s.HoverDelayMs = def.HoverDelayMs
	}
	if s.MaxPreviewWidth <= 0 {
		s.MaxPreviewWidth = def.MaxPreviewWidth
	}
	if s.MaxPreviewHeight <= 0 {
		s.MaxPreviewHeight = def.MaxPreviewHeight
	}
	if _, err := ParseModifierKey(string(s.ModifierKey)); err != nil {
		s.ModifierKey = def.ModifierKey
	}
	return s
}

// Validate returns the list of invalid fields, empty when valid.
func (s Settings) Validate() []string {
	var problems []string
	if s.HoverDelayMs < 0 {
		problems = append(problems, "hoverDelay must be non-negative")
	}
	if s.MaxPreviewWidth <= 0 {
		problems = append(problems, "maxPreviewWidth must be positive")
	}
	if s.MaxPreviewHeight <= 0 {
		problems = append(problems, "maxPreviewHeight must be positive")
	}
	if _, err := ParseModifierKey(string(s.ModifierKey)); err != nil {
		problems = append(problems, "modifierKey must be one of ctrl, meta, alt, shift")
	}
	return problems
}
