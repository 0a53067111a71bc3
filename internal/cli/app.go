// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/bnema/linkpeek/internal/cli/styles"
	"github.com/bnema/linkpeek/internal/domain/build"
	"github.com/bnema/linkpeek/internal/infrastructure/config"
	"github.com/bnema/linkpeek/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/linkpeek/internal/logging"
	"github.com/bnema/linkpeek/internal/plugin"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	// DB opens the database on first use, so commands that never touch it
	// do not create it.
	DB *sqlite.LazyDB

	ctx        context.Context
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies.
func NewApp() (*App, error) {
	mgr, cfg := loadConfig()

	logLevel := cfg.Logging.Level
	if envLevel := os.Getenv("LINKPEEK_LOG_LEVEL"); envLevel != "" {
		logLevel = envLevel
	}

	var out io.Writer = os.Stderr
	cleanup := func() {}
	if cfg.Logging.EnableFileLog && cfg.Logging.LogDir != "" {
		f, err := logging.OpenLogFile(cfg.Logging.LogDir)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out = zerolog.MultiLevelWriter(os.Stderr, f)
		cleanup = func() { _ = f.Close() }
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ParseLevel(logLevel)
	if cfg.Logging.Format == "json" {
		logCfg.Format = "json"
	}
	logCfg.TimeFormat = "15:04:05"
	logCfg.Output = out
	logger := logging.New(logCfg)
	ctx := logging.WithContext(context.Background(), logger)

	logger.Debug().Str("db_path", cfg.Database.Path).Msg("cli initialized")

	return &App{
		Config:     cfg,
		Manager:    mgr,
		Theme:      styles.NewTheme(),
		DB:         sqlite.NewLazyDB(cfg.Database.Path),
		ctx:        ctx,
		logCleanup: cleanup,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	var err error
	if a.DB != nil {
		err = a.DB.Close()
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return err
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// SettingsData returns the plugin's settings blob store in the database.
func (a *App) SettingsData() *plugin.RepositoryDataStore {
	return plugin.NewRepositoryDataStore(a.DB.PluginData(), plugin.PluginID)
}

// WatchConfig reloads the config file on change and applies the new log
// level to the running process.
func (a *App) WatchConfig() error {
	if a.Manager == nil {
		return nil
	}
	a.Manager.OnConfigChange(func(cfg *config.Config) {
		zerolog.SetGlobalLevel(logging.ParseLevel(cfg.Logging.Level))
		logging.FromContext(a.ctx).Info().Str("level", cfg.Logging.Level).Msg("config reloaded")
	})
	return a.Manager.Watch()
}

// loadConfig loads configuration from standard locations, falling back to
// defaults when the file is unreadable.
func loadConfig() (*config.Manager, *config.Config) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, defaultConfigWithPaths()
	}

	if err := mgr.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\nusing default configuration\n", err)
		return mgr, defaultConfigWithPaths()
	}

	return mgr, mgr.Get()
}

func defaultConfigWithPaths() *config.Config {
	cfg := config.DefaultConfig()
	if path, err := config.GetDatabaseFile(); err == nil {
		cfg.Database.Path = path
	}
	if dir, err := config.GetLogDir(); err == nil {
		cfg.Logging.LogDir = dir
	}
	return cfg
}
