// Package config loads the linkpeek application config (TOML) with viper.
package config

import (
	"runtime"
	"strings"
	"time"

	"github.com/bnema/linkpeek/internal/domain/entity"
)

const (
	dirPerm  = 0o750
	filePerm = 0o600
)

// Config is the application configuration. The plugin's own settings blob
// lives in the database, not here.
type Config struct {
	Logging    LoggingConfig    `mapstructure:"logging" toml:"logging"`
	Database   DatabaseConfig   `mapstructure:"database" toml:"database"`
	Simulation SimulationConfig `mapstructure:"simulation" toml:"simulation"`
}

// LoggingConfig configures zerolog output.
type LoggingConfig struct {
	Level         string `mapstructure:"level" toml:"level" comment:"trace, debug, info, warn, error or off"`
	Format        string `mapstructure:"format" toml:"format" comment:"console or json"`
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" comment:"also write json logs to log_dir"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir"`
}

// DatabaseConfig locates the SQLite database.
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path" comment:"empty means $XDG_DATA_HOME/linkpeek/linkpeek.sqlite"`
}

// PlatformOverride forces the platform used for settings defaults.
type PlatformOverride string

const (
	PlatformAuto  PlatformOverride = "auto"
	PlatformMacOS PlatformOverride = "macos"
	PlatformOther PlatformOverride = "other"
)

// SimulationConfig tunes the simulated host used by the CLI.
type SimulationConfig struct {
	ViewportWidth  float64          `mapstructure:"viewport_width" toml:"viewport_width"`
	ViewportHeight float64          `mapstructure:"viewport_height" toml:"viewport_height"`
	CharWidth      float64          `mapstructure:"char_width" toml:"char_width" comment:"flow layout metrics for rendered notes"`
	LineHeight     float64          `mapstructure:"line_height" toml:"line_height"`
	Engine         string           `mapstructure:"engine" toml:"engine" comment:"probe, chrome or offline"`
	ProbeTimeoutMs int              `mapstructure:"probe_timeout_ms" toml:"probe_timeout_ms"`
	ChromePath     string           `mapstructure:"chrome_path" toml:"chrome_path"`
	RefuseHosts    []string         `mapstructure:"refuse_hosts" toml:"refuse_hosts" comment:"hosts the offline engine refuses to embed"`
	Platform       PlatformOverride `mapstructure:"platform" toml:"platform" comment:"auto, macos or other; picks the default modifier key"`
}

// ProbeTimeout returns the embed load timeout.
func (s SimulationConfig) ProbeTimeout() time.Duration {
	return time.Duration(s.ProbeTimeoutMs) * time.Millisecond
}

// ResolvePlatform returns the platform descriptor, detecting it when the
// override is auto.
func (s SimulationConfig) ResolvePlatform() entity.Platform {
	switch PlatformOverride(strings.ToLower(string(s.Platform))) {
	case PlatformMacOS:
		return entity.Platform{IsMacOS: true}
	case PlatformOther:
		return entity.Platform{}
	}
	return entity.Platform{IsMacOS: runtime.GOOS == "darwin"}
}
