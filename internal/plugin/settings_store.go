package plugin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/bnema/linkpeek/internal/application/port"
	"github.com/bnema/linkpeek/internal/domain/entity"
	"github.com/bnema/linkpeek/internal/logging"
)

// Blob keys of the persisted settings.
const (
	keyHoverDelay       = "hoverDelay"
	keyMaxPreviewWidth  = "maxPreviewWidth"
	keyMaxPreviewHeight = "maxPreviewHeight"
	keyRequireModifier  = "requireModifier"
	keyModifierKey      = "modifierKey"
	keyCloseOnRelease   = "closeOnRelease"
)

// settingsBlob is the flat JSON document saved through the host.
type settingsBlob struct {
	HoverDelay       int    `json:"hoverDelay" jsonschema:"minimum=0,default=500" jsonschema_description:"Milliseconds the pointer rests on a link before the preview opens"`
	MaxPreviewWidth  int    `json:"maxPreviewWidth" jsonschema:"minimum=1,default=800" jsonschema_description:"Maximum panel width in pixels"`
	MaxPreviewHeight int    `json:"maxPreviewHeight" jsonschema:"minimum=1,default=600" jsonschema_description:"Maximum panel height in pixels"`
	RequireModifier  bool   `json:"requireModifier" jsonschema:"default=false" jsonschema_description:"Only preview while the modifier key is held"`
	ModifierKey      string `json:"modifierKey" jsonschema:"enum=ctrl,enum=meta,enum=alt,enum=shift" jsonschema_description:"Modifier key gating previews; defaults to meta on macOS and ctrl elsewhere"`
	CloseOnRelease   bool   `json:"closeOnRelease" jsonschema:"default=true" jsonschema_description:"Close the preview when the modifier key is released"`
}

func blobFromSettings(s entity.Settings) settingsBlob {
	return settingsBlob{
		HoverDelay:       s.HoverDelayMs,
		MaxPreviewWidth:  s.MaxPreviewWidth,
		MaxPreviewHeight: s.MaxPreviewHeight,
		RequireModifier:  s.RequireModifier,
		ModifierKey:      string(s.ModifierKey),
		CloseOnRelease:   s.CloseOnRelease,
	}
}

// SettingsStore keeps the live settings snapshot and persists it through
// the host's plugin data store. Safe for concurrent use.
type SettingsStore struct {
	data     port.PluginDataStore
	platform entity.Platform

	mu      sync.RWMutex
	current entity.Settings
}

// NewSettingsStore creates a store holding the platform defaults.
func NewSettingsStore(data port.PluginDataStore, platform entity.Platform) *SettingsStore {
	return &SettingsStore{
		data:     data,
		platform: platform,
		current:  entity.DefaultSettings(platform),
	}
}

// Current returns the live snapshot.
func (s *SettingsStore) Current() entity.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Load reads the blob and replaces the snapshot. Missing, unknown or
// malformed fields take their default value.
func (s *SettingsStore) Load(ctx context.Context) (entity.Settings, error) {
	log := logging.FromContext(ctx)

	var raw []byte
	if s.data != nil {
		var err error
		raw, err = s.data.LoadData(ctx)
		if err != nil {
			return s.Current(), fmt.Errorf("load settings: %w", err)
		}
	}

	settings := DecodeSettings(raw, s.platform)
	if len(raw) > 0 {
		log.Debug().Int("bytes", len(raw)).Msg("settings loaded")
	}

	s.mu.Lock()
	s.current = settings
	s.mu.Unlock()
	return settings, nil
}

// DecodeSettings parses a blob field by field so one bad value does not
// discard the others.
func DecodeSettings(raw []byte, platform entity.Platform) entity.Settings {
	settings := entity.DefaultSettings(platform)
	if len(raw) == 0 {
		return settings
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return settings
	}

	decodeField(fields, keyHoverDelay, &settings.HoverDelayMs)
	decodeField(fields, keyMaxPreviewWidth, &settings.MaxPreviewWidth)
	decodeField(fields, keyMaxPreviewHeight, &settings.MaxPreviewHeight)
	decodeField(fields, keyRequireModifier, &settings.RequireModifier)
	decodeField(fields, keyCloseOnRelease, &settings.CloseOnRelease)

	var key string
	if decodeField(fields, keyModifierKey, &key) {
		if mk, err := entity.ParseModifierKey(key); err == nil {
			settings.ModifierKey = mk
		}
	}
	return settings.Normalize(platform)
}

func decodeField[T any](fields map[string]json.RawMessage, key string, dst *T) bool {
	raw, ok := fields[key]
	if !ok {
		return false
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	*dst = v
	return true
}

// EncodeSettings renders the blob for s.
func EncodeSettings(s entity.Settings) ([]byte, error) {
	return json.MarshalIndent(blobFromSettings(s), "", "  ")
}

// Update applies fn to a copy of the snapshot, validates it, saves it and
// only then makes it live.
func (s *SettingsStore) Update(ctx context.Context, fn func(*entity.Settings)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current
	fn(&next)
	if problems := next.Validate(); len(problems) > 0 {
		return errors.New("invalid settings: " + strings.Join(problems, "; "))
	}

	if s.data != nil {
		raw, err := EncodeSettings(next)
		if err != nil {
			return fmt.Errorf("encode settings: %w", err)
		}
		if err := s.data.SaveData(ctx, raw); err != nil {
			return fmt.Errorf("save settings: %w", err)
		}
	}

	s.current = next
	logging.FromContext(ctx).Debug().
		Int("hover_delay_ms", next.HoverDelayMs).
		Bool("require_modifier", next.RequireModifier).
		Str("modifier_key", string(next.ModifierKey)).
		Msg("settings updated")
	return nil
}
