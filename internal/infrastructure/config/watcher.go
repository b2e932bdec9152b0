package config

import (
	"github.com/fsnotify/fsnotify"

	"github.com/bnema/fontkeeper/internal/logging"
)

// Watch reloads the configuration whenever config.toml changes on disk.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}

	m.viper.OnConfigChange(func(e fsnotify.Event) {
		log := logging.NewFromEnv()
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config change detected")

		m.mu.Lock()
		if err := m.reload(); err != nil {
			m.mu.Unlock()
			log.Warn().Err(err).Msg("failed to reload config")
			return
		}
		m.notifyCallbacksLocked()
	})
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

// OnConfigChange registers a callback run after every successful reload.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, callback)
}

// notifyCallbacksLocked releases m.mu before running callbacks.
func (m *Manager) notifyCallbacksLocked() {
	cfg := *m.config
	callbacks := append([]func(*Config){}, m.callbacks...)
	m.mu.Unlock()

	for _, callback := range callbacks {
		c := cfg
		callback(&c)
	}
}
