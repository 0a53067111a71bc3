package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/bnema/linkpeek/internal/infrastructure/embed"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	configDir string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a manager reading from the XDG config directory and
// the current directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerForDir(configDir, ".")
}

// NewManagerForDir creates a manager that searches dirs in order. The first
// dir is where Save writes.
func NewManagerForDir(dirs ...string) (*Manager, error) {
	if len(dirs) == 0 {
		return nil, fmt.Errorf("at least one config directory is required")
	}
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	for _, dir := range dirs {
		v.AddConfigPath(dir)
	}

	// LINKPEEK_DATABASE_PATH, LINKPEEK_SIMULATION_ENGINE, ...
	v.SetEnvPrefix("LINKPEEK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "LINKPEEK_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind LINKPEEK_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "LINKPEEK_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind LINKPEEK_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		configDir: dirs[0],
	}, nil
}

// Load reads the config file and environment. A missing file is not an
// error: defaults apply until `linkpeek config init` writes one.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := fillPaths(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile = m.ConfigPath()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func fillPaths(config *Config) error {
	if config.Database.Path == "" {
		dbPath, err := GetDatabaseFile()
		if err != nil {
			return fmt.Errorf("failed to get database path: %w", err)
		}
		config.Database.Path = dbPath
	}
	if config.Logging.LogDir == "" {
		logDir, err := GetLogDir()
		if err != nil {
			return fmt.Errorf("failed to get log directory: %w", err)
		}
		config.Logging.LogDir = logDir
	}
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
	switch strings.ToLower(config.Logging.Format) {
	case "json":
		config.Logging.Format = "json"
	default:
		config.Logging.Format = "console"
	}

	config.Simulation.Engine = strings.ToLower(strings.TrimSpace(config.Simulation.Engine))
	if config.Simulation.Engine == "" {
		config.Simulation.Engine = embed.EngineProbe
	}

	switch PlatformOverride(strings.ToLower(string(config.Simulation.Platform))) {
	case PlatformMacOS:
		config.Simulation.Platform = PlatformMacOS
	case PlatformOther:
		config.Simulation.Platform = PlatformOther
	default:
		config.Simulation.Platform = PlatformAuto
	}

	hosts := config.Simulation.RefuseHosts[:0]
	for _, h := range config.Simulation.RefuseHosts {
		h = strings.ToLower(strings.TrimSpace(h))
		if h != "" && !slices.Contains(hosts, h) {
			hosts = append(hosts, h)
		}
	}
	config.Simulation.RefuseHosts = hosts
}

// Get returns a copy of the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	configCopy.Simulation.RefuseHosts = slices.Clone(m.config.Simulation.RefuseHosts)
	return &configCopy
}

// ConfigPath returns the file Save writes to.
func (m *Manager) ConfigPath() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(m.configDir, configName)
}

// Save validates cfg, writes it and makes it the live configuration.
func (m *Manager) Save(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.mu.Lock()
	path := m.ConfigPath()
	err := os.MkdirAll(filepath.Dir(path), dirPerm)
	if err == nil {
		err = WriteConfigOrdered(cfg, path)
	}
	m.mu.Unlock()
	if err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return m.reloadAndNotify()
}

// InitFile writes the default configuration unless a file already exists.
// It returns the path and whether a file was created.
func (m *Manager) InitFile() (string, bool, error) {
	path := filepath.Join(m.configDir, configName)
	if _, err := os.Stat(path); err == nil {
		return path, false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return path, false, err
	}
	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		return path, false, fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := WriteConfigOrdered(DefaultConfig(), path); err != nil {
		return path, false, err
	}
	return path, true, nil
}
