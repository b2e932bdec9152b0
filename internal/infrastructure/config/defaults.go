package config

import (
	"path/filepath"

	"github.com/bnema/fontkeeper/internal/fontengine"
)

// DefaultConfig returns the built-in configuration. Paths left empty are
// resolved against the XDG directories at load time.
func DefaultConfig() *Config {
	profile := fontengine.DefaultHostProfile()
	return &Config{
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
		Storage: StorageConfig{
			FontDir:     "/data/public/" + appName + "/fonts",
			SettingsKey: "font-settings",
		},
		Exposure: ExposureConfig{
			Mode:          ExposureDirect,
			PublicPrefix:  "/data/public/",
			PublicURLBase: "/public/",
			CacheSize:     16,
		},
		Host: HostConfig{
			PluginName:         appName,
			UIFamilyProperty:   profile.UIFamilyProperty,
			CodeFamilyProperty: profile.CodeFamilyProperty,
			UISizeProperty:     profile.UISizeProperty,
			EditorSizeProperty: profile.EditorSizeProperty,
			UISizeFallback:     profile.UISizeFallback,
			EditorSizeFallback: profile.EditorSizeFallback,
			MinFontSize:        profile.MinFontSize,
			RootSelectors:      profile.RootSelectors,
			TextSelectors:      profile.TextSelectors,
			IconClasses:        profile.IconClasses,
			BaseSizeAttribute:  profile.BaseSizeAttribute,
			BaseSizeProperty:   profile.BaseSizeProperty,
			StyleMarker:        profile.StyleMarker,
			LegacyStyleMarkers: profile.LegacyStyleMarkers,
		},
		Fallback: FallbackConfig{
			Stack: profile.FallbackStack,
		},
	}
}

// resolvePaths fills empty path settings from the XDG directories.
func resolvePaths(cfg *Config, dirs *XDGDirs) {
	if cfg.Database.Path == "" {
		cfg.Database.Path = filepath.Join(dirs.DataHome, databaseName)
	}
	if cfg.Storage.Root == "" {
		cfg.Storage.Root = filepath.Join(dirs.DataHome, "storage")
	}
	if cfg.Output.StylesheetPath == "" {
		cfg.Output.StylesheetPath = filepath.Join(dirs.DataHome, stylesheetName)
	}
	if cfg.Logging.LogDir == "" {
		cfg.Logging.LogDir = filepath.Join(dirs.StateHome, "logs")
	}
}

// HostProfile converts the host and fallback sections for the font engine.
func (c *Config) HostProfile() fontengine.HostProfile {
	return fontengine.HostProfile{
		PluginName:         c.Host.PluginName,
		UIFamilyProperty:   c.Host.UIFamilyProperty,
		CodeFamilyProperty: c.Host.CodeFamilyProperty,
		UISizeProperty:     c.Host.UISizeProperty,
		EditorSizeProperty: c.Host.EditorSizeProperty,
		UISizeFallback:     c.Host.UISizeFallback,
		EditorSizeFallback: c.Host.EditorSizeFallback,
		MinFontSize:        c.Host.MinFontSize,
		RootSelectors:      c.Host.RootSelectors,
		TextSelectors:      c.Host.TextSelectors,
		IconClasses:        c.Host.IconClasses,
		BaseSizeAttribute:  c.Host.BaseSizeAttribute,
		BaseSizeProperty:   c.Host.BaseSizeProperty,
		StyleMarker:        c.Host.StyleMarker,
		LegacyStyleMarkers: c.Host.LegacyStyleMarkers,
		FallbackStack:      c.Fallback.Stack,
	}
}
