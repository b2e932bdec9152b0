package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager loads, watches and reloads the configuration.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	dirs      *XDGDirs
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a manager reading from the XDG config directory.
func NewManager() (*Manager, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerWithDirs(dirs)
}

// NewManagerWithDirs creates a manager rooted at explicit directories.
func NewManagerWithDirs(dirs *XDGDirs) (*Manager, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(dirs.ConfigHome)

	// FONTKEEPER_STORAGE_ROOT, FONTKEEPER_EXPOSURE_MODE, ...
	v.SetEnvPrefix("FONTKEEPER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "FONTKEEPER_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind FONTKEEPER_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "FONTKEEPER_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind FONTKEEPER_LOG_FORMAT: %w", err)
	}

	return &Manager{viper: v, dirs: dirs}, nil
}

// Load reads config.toml (writing the defaults and schema on first run),
// applies environment overrides and validates the result.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, dir := range []string{m.dirs.ConfigHome, m.dirs.DataHome, m.dirs.StateHome} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("failed to ensure directories: %w", err)
		}
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}
	return m.reload()
}

// reload re-reads viper state into m.config. Caller holds m.mu.
func (m *Manager) reload() error {
	cfg := &Config{}
	if err := m.viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(), err)
	}
	resolvePaths(cfg, m.dirs)
	normalizeConfig(cfg)

	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	m.config = cfg
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions",
			m.ConfigFile(), err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf("failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.dirs.ConfigHome, createErr)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

func (m *Manager) createDefaultConfig() error {
	if err := m.viper.SafeWriteConfigAs(m.ConfigFile()); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return GenerateSchemaFile(filepath.Join(m.dirs.ConfigHome, schemaFileName))
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return nil
	}
	cfg := *m.config
	return &cfg
}

// Dirs returns the directories the manager resolves paths against.
func (m *Manager) Dirs() XDGDirs {
	return *m.dirs
}

// ConfigFile returns the path of config.toml.
func (m *Manager) ConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(m.dirs.ConfigHome, configFileName)
}

// SetReadOnly persists the read-only flag.
func (m *Manager) SetReadOnly(readOnly bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.viper.Set("read_only", readOnly)
	if err := m.viper.WriteConfigAs(m.ConfigFile()); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	if !m.watching {
		return m.reload()
	}
	return nil
}

func normalizeConfig(cfg *Config) {
	switch ExposureMode(strings.ToLower(string(cfg.Exposure.Mode))) {
	case ExposureFetch:
		cfg.Exposure.Mode = ExposureFetch
	default:
		cfg.Exposure.Mode = ExposureDirect
	}
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))
	if !strings.HasSuffix(cfg.Exposure.PublicPrefix, "/") {
		cfg.Exposure.PublicPrefix += "/"
	}
	if !strings.HasSuffix(cfg.Exposure.PublicURLBase, "/") {
		cfg.Exposure.PublicURLBase += "/"
	}
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("read_only", defaults.ReadOnly)
	m.setLoggingDefaults(defaults)
	m.setStorageDefaults(defaults)
	m.setExposureDefaults(defaults)
	m.setHostDefaults(defaults)
	m.setFallbackDefaults(defaults)
	// database.path and output.stylesheet_path resolve at load time.
	m.viper.SetDefault("database.path", "")
	m.viper.SetDefault("output.stylesheet_path", "")
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
}

func (m *Manager) setStorageDefaults(defaults *Config) {
	m.viper.SetDefault("storage.root", defaults.Storage.Root)
	m.viper.SetDefault("storage.font_dir", defaults.Storage.FontDir)
	m.viper.SetDefault("storage.settings_key", defaults.Storage.SettingsKey)
}

func (m *Manager) setExposureDefaults(defaults *Config) {
	m.viper.SetDefault("exposure.mode", string(defaults.Exposure.Mode))
	m.viper.SetDefault("exposure.public_prefix", defaults.Exposure.PublicPrefix)
	m.viper.SetDefault("exposure.public_url_base", defaults.Exposure.PublicURLBase)
	m.viper.SetDefault("exposure.cache_size", defaults.Exposure.CacheSize)
}

func (m *Manager) setHostDefaults(defaults *Config) {
	h := defaults.Host
	m.viper.SetDefault("host.plugin_name", h.PluginName)
	m.viper.SetDefault("host.ui_family_property", h.UIFamilyProperty)
	m.viper.SetDefault("host.code_family_property", h.CodeFamilyProperty)
	m.viper.SetDefault("host.ui_size_property", h.UISizeProperty)
	m.viper.SetDefault("host.editor_size_property", h.EditorSizeProperty)
	m.viper.SetDefault("host.ui_size_fallback", h.UISizeFallback)
	m.viper.SetDefault("host.editor_size_fallback", h.EditorSizeFallback)
	m.viper.SetDefault("host.min_font_size", h.MinFontSize)
	m.viper.SetDefault("host.root_selectors", h.RootSelectors)
	m.viper.SetDefault("host.text_selectors", h.TextSelectors)
	m.viper.SetDefault("host.icon_classes", h.IconClasses)
	m.viper.SetDefault("host.base_size_attribute", h.BaseSizeAttribute)
	m.viper.SetDefault("host.base_size_property", h.BaseSizeProperty)
	m.viper.SetDefault("host.style_marker", h.StyleMarker)
	m.viper.SetDefault("host.legacy_style_markers", h.LegacyStyleMarkers)
}

func (m *Manager) setFallbackDefaults(defaults *Config) {
	m.viper.SetDefault("fallback.detect_system_fonts", defaults.Fallback.DetectSystemFonts)
	m.viper.SetDefault("fallback.stack", defaults.Fallback.Stack)
}
