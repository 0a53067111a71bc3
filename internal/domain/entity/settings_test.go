package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings_ModifierFollowsPlatform(t *testing.T) {
	assert.Equal(t, ModifierMeta, DefaultSettings(Platform{IsMacOS: true}).ModifierKey)
	assert.Equal(t, ModifierCtrl, DefaultSettings(Platform{}).ModifierKey)
}

func TestSettings_NormalizeReplacesInvalidFields(t *testing.T) {
	s := Settings{
		HoverDelayMs:     -1,
		MaxPreviewWidth:  0,
		MaxPreviewHeight: -20,
		ModifierKey:      "hyper",
		RequireModifier:  true,
	}

	got := s.Normalize(Platform{IsMacOS: true})

	assert.Equal(t, DefaultHoverDelayMs, got.HoverDelayMs)
	assert.Equal(t, DefaultMaxPreviewWidthPx, got.MaxPreviewWidth)
	assert.Equal(t, DefaultMaxPreviewHeightPx, got.MaxPreviewHeight)
	assert.Equal(t, ModifierMeta, got.ModifierKey)
	assert.True(t, got.RequireModifier, "valid fields are kept")
}

func TestSettings_ZeroDelayIsValid(t *testing.T) {
	s := DefaultSettings(Platform{})
	s.HoverDelayMs = 0

	assert.Empty(t, s.Validate())
	assert.Equal(t, 0, s.Normalize(Platform{}).HoverDelayMs)
}

func TestParseModifierKey(t *testing.T) {
	tests := []struct {
		in   string
		want ModifierKey
	}{
		{"ctrl", ModifierCtrl},
		{"Control", ModifierCtrl},
		{"cmd", ModifierMeta},
		{" META ", ModifierMeta},
		{"option", ModifierAlt},
		{"shift", ModifierShift},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseModifierKey(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseModifierKey("fn")
	require.Error(t, err)
}

func TestModifierKey_DOMKey(t *testing.T) {
	assert.Equal(t, "Control", ModifierCtrl.DOMKey())
	assert.Equal(t, "Meta", ModifierMeta.DOMKey())
	assert.Equal(t, "Alt", ModifierAlt.DOMKey())
	assert.Equal(t, "Shift", ModifierShift.DOMKey())
}
