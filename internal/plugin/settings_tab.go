package plugin

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/linkpeek/internal/application/port"
	"github.com/bnema/linkpeek/internal/domain/entity"
)

// Setting names shown on the tab.
const (
	SettingHoverDelay      = "Hover delay"
	SettingMaxWidth        = "Max preview width"
	SettingMaxHeight       = "Max preview height"
	SettingRequireModifier = "Require modifier"
	SettingModifierKey     = "Modifier key"
	SettingCloseOnRelease  = "Close on release"
)

var settingNamesByKey = map[string]string{
	keyHoverDelay:       SettingHoverDelay,
	keyMaxPreviewWidth:  SettingMaxWidth,
	keyMaxPreviewHeight: SettingMaxHeight,
	keyRequireModifier:  SettingRequireModifier,
	keyModifierKey:      SettingModifierKey,
	keyCloseOnRelease:   SettingCloseOnRelease,
}

// SettingName maps a blob key such as "hoverDelay" to the settings tab
// control that edits it. Control names are returned unchanged.
func SettingName(key string) (string, bool) {
	if name, ok := settingNamesByKey[key]; ok {
		return name, true
	}
	for _, name := range settingNamesByKey {
		if strings.EqualFold(name, key) {
			return name, true
		}
	}
	return "", false
}

// SettingsTab renders the plugin settings with the host's widgets.
type SettingsTab struct {
	ctx   context.Context
	store *SettingsStore
}

var _ port.SettingsPage = (*SettingsTab)(nil)

// NewSettingsTab creates the tab for store.
func NewSettingsTab(ctx context.Context, store *SettingsStore) *SettingsTab {
	return &SettingsTab{ctx: ctx, store: store}
}

func (t *SettingsTab) ID() string    { return PluginID }
func (t *SettingsTab) Title() string { return "Link preview" }

// Display renders one widget per setting. Every change is validated, saved
// and applied to the live snapshot.
func (t *SettingsTab) Display(ui port.SettingsUI) {
	s := t.store.Current()

	ui.Heading("Link preview")

	ui.Text(SettingHoverDelay,
		"Milliseconds the pointer must rest on a link before the preview opens.",
		strconv.Itoa(entity.DefaultHoverDelayMs),
		strconv.Itoa(s.HoverDelayMs),
		t.intSetter(SettingHoverDelay, 0, func(s *entity.Settings, v int) { s.HoverDelayMs = v }))

	ui.Text(SettingMaxWidth,
		"Maximum width of the preview panel in pixels.",
		strconv.Itoa(entity.DefaultMaxPreviewWidthPx),
		strconv.Itoa(s.MaxPreviewWidth),
		t.intSetter(SettingMaxWidth, 1, func(s *entity.Settings, v int) { s.MaxPreviewWidth = v }))

	ui.Text(SettingMaxHeight,
		"Maximum height of the preview panel in pixels.",
		strconv.Itoa(entity.DefaultMaxPreviewHeightPx),
		strconv.Itoa(s.MaxPreviewHeight),
		t.intSetter(SettingMaxHeight, 1, func(s *entity.Settings, v int) { s.MaxPreviewHeight = v }))

	ui.Toggle(SettingRequireModifier,
		"Only show previews while the modifier key is held.",
		s.RequireModifier,
		func(v bool) error {
			return t.store.Update(t.ctx, func(s *entity.Settings) { s.RequireModifier = v })
		})

	options := make([]port.DropdownOption, 0, len(entity.ModifierKeys()))
	for _, k := range entity.ModifierKeys() {
		options = append(options, port.DropdownOption{Value: string(k), Label: k.Label()})
	}
	ui.Dropdown(SettingModifierKey,
		"Key that must be held when the modifier is required.",
		options,
		string(s.ModifierKey),
		func(v string) error {
			key, err := entity.ParseModifierKey(v)
			if err != nil {
				return err
			}
			return t.store.Update(t.ctx, func(s *entity.Settings) { s.ModifierKey = key })
		})

	ui.Toggle(SettingCloseOnRelease,
		"Close the preview as soon as the modifier key is released.",
		s.CloseOnRelease,
		func(v bool) error {
			return t.store.Update(t.ctx, func(s *entity.Settings) { s.CloseOnRelease = v })
		})
}

func (t *SettingsTab) intSetter(name string, minimum int, apply func(*entity.Settings, int)) func(string) error {
	return func(raw string) error {
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("%s must be a whole number", strings.ToLower(name))
		}
		if v < minimum {
			return fmt.Errorf("%s must be at least %d", strings.ToLower(name), minimum)
		}
		return t.store.Update(t.ctx, func(s *entity.Settings) { apply(s, v) })
	}
}
