package plugin

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	portmocks "github.com/bnema/linkpeek/internal/application/port/mocks"
	"github.com/bnema/linkpeek/internal/domain/entity"
	"github.com/bnema/linkpeek/internal/domain/repository/mocks"
)

func TestDecodeSettings(t *testing.T) {
	mac := entity.Platform{IsMacOS: true}
	linux := entity.Platform{}

	tests := []struct {
		name     string
		raw      string
		platform entity.Platform
		want     func(s *entity.Settings)
	}{
		{name: "empty blob", raw: "", platform: linux, want: func(*entity.Settings) {}},
		{name: "not json", raw: "{", platform: linux, want: func(*entity.Settings) {}},
		{
			name:     "platform default modifier",
			raw:      `{}`,
			platform: mac,
			want:     func(s *entity.Settings) { s.ModifierKey = entity.ModifierMeta },
		},
		{
			name:     "all fields",
			raw:      `{"hoverDelay":0,"maxPreviewWidth":640,"maxPreviewHeight":480,"requireModifier":true,"modifierKey":"shift","closeOnRelease":false}`,
			platform: linux,
			want: func(s *entity.Settings) {
				s.HoverDelayMs = 0
				s.MaxPreviewWidth = 640
				s.MaxPreviewHeight = 480
				s.RequireModifier = true
				s.ModifierKey = entity.ModifierShift
				s.CloseOnRelease = false
			},
		},
		{
			name:     "unknown keys ignored",
			raw:      `{"theme":"dark","hoverDelay":250}`,
			platform: linux,
			want:     func(s *entity.Settings) { s.HoverDelayMs = 250 },
		},
		{
			name:     "bad types fall back per field",
			raw:      `{"hoverDelay":"fast","maxPreviewWidth":700,"requireModifier":"yes"}`,
			platform: linux,
			want:     func(s *entity.Settings) { s.MaxPreviewWidth = 700 },
		},
		{
			name:     "out of range values fall back",
			raw:      `{"hoverDelay":-5,"maxPreviewHeight":0,"modifierKey":"hyper"}`,
			platform: mac,
			want:     func(s *entity.Settings) { s.ModifierKey = entity.ModifierMeta },
		},
		{
			name:     "modifier alias",
			raw:      `{"modifierKey":"cmd"}`,
			platform: linux,
			want:     func(s *entity.Settings) { s.ModifierKey = entity.ModifierMeta },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := entity.DefaultSettings(tt.platform)
			tt.want(&want)
			assert.Equal(t, want, DecodeSettings([]byte(tt.raw), tt.platform))
		})
	}
}

func TestEncodeSettings_RoundTrip(t *testing.T) {
	s := entity.DefaultSettings(entity.Platform{IsMacOS: true})
	s.HoverDelayMs = 42
	raw, err := EncodeSettings(s)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Len(t, fields, 6)
	assert.Equal(t, "meta", fields["modifierKey"])
	assert.Equal(t, s, DecodeSettings(raw, entity.Platform{}))
}

func TestSettingsStore_UpdateValidatesBeforeSaving(t *testing.T) {
	ctx := context.Background()
	data := &MemoryDataStore{}
	store := NewSettingsStore(data, entity.Platform{})

	err := store.Update(ctx, func(s *entity.Settings) { s.MaxPreviewWidth = 0 })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "maxPreviewWidth must be positive")
	saved, _ := data.LoadData(ctx)
	assert.Nil(t, saved)

	require.NoError(t, store.Update(ctx, func(s *entity.Settings) { s.RequireModifier = true }))
	assert.True(t, store.Current().RequireModifier)
}

func TestSettingsStore_SaveFailureKeepsSnapshot(t *testing.T) {
	diskFull := errors.New("disk full")
	data := portmocks.NewMockPluginDataStore(t)
	data.EXPECT().SaveData(mock.Anything, mock.Anything).Return(diskFull).Once()
	data.EXPECT().LoadData(mock.Anything).Return(nil, diskFull).Once()
	store := NewSettingsStore(data, entity.Platform{})

	err := store.Update(context.Background(), func(s *entity.Settings) { s.HoverDelayMs = 10 })
	require.Error(t, err)
	assert.Equal(t, entity.DefaultHoverDelayMs, store.Current().HoverDelayMs)

	_, err = store.Load(context.Background())
	assert.ErrorContains(t, err, "disk full")
}

func TestRepositoryDataStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPluginDataRepository(ctrl)
	store := NewRepositoryDataStore(repo, PluginID)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().Load(gomock.Any(), PluginID).Return(nil, nil),
		repo.EXPECT().Save(gomock.Any(), PluginID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, data []byte) error {
				assert.Contains(t, string(data), `"hoverDelay": 120`)
				return nil
			}),
	)

	settings := NewSettingsStore(store, entity.Platform{})
	loaded, err := settings.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultSettings(entity.Platform{}), loaded)

	require.NoError(t, settings.Update(ctx, func(s *entity.Settings) { s.HoverDelayMs = 120 }))
}

func TestSettingsSchema(t *testing.T) {
	raw, err := SettingsSchema()
	require.NoError(t, err)

	var schema struct {
		Title      string `json:"title"`
		Properties map[string]struct {
			Type    string `json:"type"`
			Enum    []any  `json:"enum"`
			Minimum *int   `json:"minimum"`
		} `json:"properties"`
		Required []string `json:"required"`
	}
	require.NoError(t, json.Unmarshal(raw, &schema))

	assert.Equal(t, "linkpeek settings", schema.Title)
	assert.Len(t, schema.Properties, 6)
	assert.Equal(t, "integer", schema.Properties["hoverDelay"].Type)
	require.NotNil(t, schema.Properties["hoverDelay"].Minimum)
	assert.Equal(t, 0, *schema.Properties["hoverDelay"].Minimum)
	assert.Equal(t, "boolean", schema.Properties["closeOnRelease"].Type)
	assert.ElementsMatch(t, []any{"ctrl", "meta", "alt", "shift"}, schema.Properties["modifierKey"].Enum)
	assert.Empty(t, schema.Required)
}

func TestSettingName(t *testing.T) {
	name, ok := SettingName("hoverDelay")
	assert.True(t, ok)
	assert.Equal(t, SettingHoverDelay, name)

	name, ok = SettingName("modifier KEY")
	assert.True(t, ok)
	assert.Equal(t, SettingModifierKey, name)

	_, ok = SettingName("theme")
	assert.False(t, ok)
}
