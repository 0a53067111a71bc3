package config

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/linkpeek/internal/logging"
)

// Watch reloads the file whenever it is written and notifies OnConfigChange
// callbacks when the effective configuration differs. Calling it twice is a
// no-op.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}
	m.viper.OnConfigChange(m.handleFileEvent)
	m.viper.WatchConfig()
	m.watching = true
	return nil
}

// OnConfigChange registers fn. Callbacks run on the watcher goroutine.
func (m *Manager) OnConfigChange(fn func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, fn)
}

func (m *Manager) handleFileEvent(e fsnotify.Event) {
	if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
		return
	}
	log := logging.NewFromEnv()
	log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config file changed")

	if err := m.reloadAndNotify(); err != nil {
		// The previous configuration stays live.
		log.Warn().Err(err).Msg("config reload failed")
	}
}

// reloadAndNotify re-reads the file and runs the callbacks outside the lock,
// only when something changed. A Save followed by the watcher seeing the same
// write therefore notifies once.
func (m *Manager) reloadAndNotify() error {
	m.mu.Lock()
	prev := m.config
	if err := m.reload(); err != nil {
		m.mu.Unlock()
		return err
	}
	cur := m.config
	callbacks := slices.Clone(m.callbacks)
	m.mu.Unlock()

	if reflect.DeepEqual(prev, cur) {
		return nil
	}
	for _, fn := range callbacks {
		fn(cur)
	}
	return nil
}

// reload re-reads the file. The caller holds the write lock.
func (m *Manager) reload() error {
	if err := m.readConfigFile(); err != nil {
		return err
	}
	cfg, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := fillPaths(cfg); err != nil {
		return fmt.Errorf("resolve paths: %w", err)
	}
	normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	m.config = cfg
	return nil
}
