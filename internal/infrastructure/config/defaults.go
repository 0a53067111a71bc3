package config

import "github.com/bnema/linkpeek/internal/infrastructure/embed"

// Simulation defaults.
const (
	defaultViewportWidth  = 1280
	defaultViewportHeight = 800
	defaultCharWidth      = 8
	defaultLineHeight     = 20
	defaultProbeTimeoutMs = 10000
)

// DefaultConfig returns the built-in configuration.
// Database.Path and Logging.LogDir are filled from XDG paths on load.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:         "info",
			Format:        "console",
			EnableFileLog: false,
		},
		Simulation: SimulationConfig{
			ViewportWidth:  defaultViewportWidth,
			ViewportHeight: defaultViewportHeight,
			CharWidth:      defaultCharWidth,
			LineHeight:     defaultLineHeight,
			Engine:         embed.EngineProbe,
			ProbeTimeoutMs: defaultProbeTimeoutMs,
			RefuseHosts:    []string{},
			Platform:       PlatformAuto,
		},
	}
}

// setDefaults registers every default with viper so env overrides work for
// keys absent from the file.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)

	m.viper.SetDefault("database.path", defaults.Database.Path)

	m.viper.SetDefault("simulation.viewport_width", defaults.Simulation.ViewportWidth)
	m.viper.SetDefault("simulation.viewport_height", defaults.Simulation.ViewportHeight)
	m.viper.SetDefault("simulation.char_width", defaults.Simulation.CharWidth)
	m.viper.SetDefault("simulation.line_height", defaults.Simulation.LineHeight)
	m.viper.SetDefault("simulation.engine", defaults.Simulation.Engine)
	m.viper.SetDefault("simulation.probe_timeout_ms", defaults.Simulation.ProbeTimeoutMs)
	m.viper.SetDefault("simulation.chrome_path", defaults.Simulation.ChromePath)
	m.viper.SetDefault("simulation.refuse_hosts", defaults.Simulation.RefuseHosts)
	m.viper.SetDefault("simulation.platform", string(defaults.Simulation.Platform))
}
