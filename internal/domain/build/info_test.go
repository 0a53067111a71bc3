package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo_String(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{name: "empty", info: Info{}, want: "unknown"},
		{name: "dev build", info: Info{Version: "dev", Commit: "unknown", GoVersion: "go1.25.3"}, want: "dev go1.25.3"},
		{
			name: "release",
			info: Info{Version: "v0.3.0", Commit: "0123456789abcdef", GoVersion: "go1.25.3"},
			want: "v0.3.0 (0123456) go1.25.3",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.String())
		})
	}
}

func TestInfo_Dev(t *testing.T) {
	assert.True(t, Info{}.Dev())
	assert.True(t, Info{Version: "dev"}.Dev())
	assert.False(t, Info{Version: "v1.0.0"}.Dev())
}
