// Package config loads fontkeeper's application configuration with viper.
package config

// Config is the root of config.toml.
type Config struct {
	// ReadOnly refuses management commands while still applying styles.
	ReadOnly bool           `mapstructure:"read_only" toml:"read_only" json:"read_only" jsonschema:"description=Refuse import/activate/remove/size commands"`
	Logging  LoggingConfig  `mapstructure:"logging" toml:"logging" json:"logging"`
	Database DatabaseConfig `mapstructure:"database" toml:"database" json:"database"`
	Storage  StorageConfig  `mapstructure:"storage" toml:"storage" json:"storage"`
	Exposure ExposureConfig `mapstructure:"exposure" toml:"exposure" json:"exposure"`
	Host     HostConfig     `mapstructure:"host" toml:"host" json:"host"`
	Fallback FallbackConfig `mapstructure:"fallback" toml:"fallback" json:"fallback"`
	Output   OutputConfig   `mapstructure:"output" toml:"output" json:"output"`
}

// LoggingConfig controls the zerolog logger.
type LoggingConfig struct {
	Level         string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format        string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1"`
	MaxBackups    int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
}

// DatabaseConfig locates the settings database.
type DatabaseConfig struct {
	// Path is resolved to the XDG data dir when empty.
	Path string `mapstructure:"path" toml:"path" json:"path"`
}

// StorageConfig describes where font binaries live.
type StorageConfig struct {
	// Root is the on-disk directory that host paths such as /data/... resolve under.
	Root string `mapstructure:"root" toml:"root" json:"root"`
	// FontDir is the host path imported fonts are written to.
	FontDir string `mapstructure:"font_dir" toml:"font_dir" json:"font_dir"`
	// SettingsKey names the persisted font settings entry.
	SettingsKey string `mapstructure:"settings_key" toml:"settings_key" json:"settings_key"`
}

// ExposureMode selects how font binaries are referenced from the stylesheet.
type ExposureMode string

const (
	// ExposureDirect maps storage paths to public URLs.
	ExposureDirect ExposureMode = "direct"
	// ExposureFetch reads bytes from storage and references them in memory.
	ExposureFetch ExposureMode = "fetch"
)

// ExposureConfig controls the asset loader.
type ExposureConfig struct {
	Mode          ExposureMode `mapstructure:"mode" toml:"mode" json:"mode" jsonschema:"enum=direct,enum=fetch"`
	PublicPrefix  string       `mapstructure:"public_prefix" toml:"public_prefix" json:"public_prefix"`
	PublicURLBase string       `mapstructure:"public_url_base" toml:"public_url_base" json:"public_url_base"`
	CacheSize     int          `mapstructure:"cache_size" toml:"cache_size" json:"cache_size" jsonschema:"minimum=1"`
}

// HostConfig names the host's CSS surface the engine overrides.
type HostConfig struct {
	PluginName         string   `mapstructure:"plugin_name" toml:"plugin_name" json:"plugin_name"`
	UIFamilyProperty   string   `mapstructure:"ui_family_property" toml:"ui_family_property" json:"ui_family_property"`
	CodeFamilyProperty string   `mapstructure:"code_family_property" toml:"code_family_property" json:"code_family_property"`
	UISizeProperty     string   `mapstructure:"ui_size_property" toml:"ui_size_property" json:"ui_size_property"`
	EditorSizeProperty string   `mapstructure:"editor_size_property" toml:"editor_size_property" json:"editor_size_property"`
	UISizeFallback     float64  `mapstructure:"ui_size_fallback" toml:"ui_size_fallback" json:"ui_size_fallback" jsonschema:"exclusiveMinimum=0"`
	EditorSizeFallback float64  `mapstructure:"editor_size_fallback" toml:"editor_size_fallback" json:"editor_size_fallback" jsonschema:"exclusiveMinimum=0"`
	MinFontSize        float64  `mapstructure:"min_font_size" toml:"min_font_size" json:"min_font_size" jsonschema:"minimum=1"`
	RootSelectors      []string `mapstructure:"root_selectors" toml:"root_selectors" json:"root_selectors"`
	TextSelectors      []string `mapstructure:"text_selectors" toml:"text_selectors" json:"text_selectors"`
	IconClasses        []string `mapstructure:"icon_classes" toml:"icon_classes" json:"icon_classes"`
	BaseSizeAttribute  string   `mapstructure:"base_size_attribute" toml:"base_size_attribute" json:"base_size_attribute"`
	BaseSizeProperty   string   `mapstructure:"base_size_property" toml:"base_size_property" json:"base_size_property"`
	StyleMarker        string   `mapstructure:"style_marker" toml:"style_marker" json:"style_marker"`
	LegacyStyleMarkers []string `mapstructure:"legacy_style_markers" toml:"legacy_style_markers" json:"legacy_style_markers"`
}

// FallbackConfig builds the font stack that follows the active family.
type FallbackConfig struct {
	// DetectSystemFonts inserts the best installed sans font (via fc-list) after the active family.
	DetectSystemFonts bool     `mapstructure:"detect_system_fonts" toml:"detect_system_fonts" json:"detect_system_fonts"`
	Stack             []string `mapstructure:"stack" toml:"stack" json:"stack"`
}

// OutputConfig controls the file-backed host document.
type OutputConfig struct {
	// StylesheetPath receives the composed CSS; empty resolves to the XDG data dir.
	StylesheetPath string `mapstructure:"stylesheet_path" toml:"stylesheet_path" json:"stylesheet_path"`
}
