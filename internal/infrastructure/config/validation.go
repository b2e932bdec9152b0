package config

import (
	"fmt"
	"path"
	"strings"

	domainvalidation "github.com/bnema/fontkeeper/internal/domain/validation"
)

// validateConfig aggregates every problem into one error.
func validateConfig(cfg *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(cfg)...)
	validationErrors = append(validationErrors, validateStorage(cfg)...)
	validationErrors = append(validationErrors, validateExposure(cfg)...)
	validationErrors = append(validationErrors, validateHost(cfg)...)
	validationErrors = append(validationErrors, validateFallback(cfg)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateLogging(cfg *Config) []string {
	var errs []string
	switch cfg.Logging.Level {
	case "trace", "debug", "info", "warn", "warning", "error", "disabled", "off":
	default:
		errs = append(errs, fmt.Sprintf("logging.level %q is not a known level", cfg.Logging.Level))
	}
	switch cfg.Logging.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Sprintf("logging.format must be console or json, got %q", cfg.Logging.Format))
	}
	if cfg.Logging.MaxSizeMB < 1 {
		errs = append(errs, "logging.max_size_mb must be at least 1")
	}
	if cfg.Logging.MaxBackups < 0 {
		errs = append(errs, "logging.max_backups must be non-negative")
	}
	return errs
}

func validateStorage(cfg *Config) []string {
	var errs []string
	if !path.IsAbs(cfg.Storage.FontDir) {
		errs = append(errs, "storage.font_dir must be an absolute host path")
	}
	if strings.TrimSpace(cfg.Storage.SettingsKey) == "" {
		errs = append(errs, "storage.settings_key cannot be empty")
	}
	return errs
}

func validateExposure(cfg *Config) []string {
	var errs []string
	if cfg.Exposure.CacheSize < 1 {
		errs = append(errs, "exposure.cache_size must be at least 1")
	}
	if cfg.Exposure.Mode == ExposureDirect && !strings.HasPrefix(cfg.Storage.FontDir, cfg.Exposure.PublicPrefix) {
		errs = append(errs, fmt.Sprintf("storage.font_dir %q is not under exposure.public_prefix %q; fonts would not be reachable in direct mode",
			cfg.Storage.FontDir, cfg.Exposure.PublicPrefix))
	}
	return errs
}

func validateHost(cfg *Config) []string {
	var errs []string
	h := cfg.Host

	if strings.TrimSpace(h.PluginName) == "" {
		errs = append(errs, "host.plugin_name cannot be empty")
	}
	props := map[string]string{
		"host.ui_family_property":   h.UIFamilyProperty,
		"host.code_family_property": h.CodeFamilyProperty,
		"host.ui_size_property":     h.UISizeProperty,
		"host.editor_size_property": h.EditorSizeProperty,
		"host.base_size_property":   h.BaseSizeProperty,
	}
	for field, value := range props {
		errs = append(errs, domainvalidation.ValidateCustomProperty(field, value)...)
	}
	if h.UISizeFallback <= 0 || h.EditorSizeFallback <= 0 {
		errs = append(errs, "host size fallbacks must be positive")
	}
	if h.MinFontSize < 1 {
		errs = append(errs, "host.min_font_size must be at least 1")
	}
	if len(h.RootSelectors) == 0 {
		errs = append(errs, "host.root_selectors cannot be empty")
	}
	if strings.TrimSpace(h.BaseSizeAttribute) == "" || strings.TrimSpace(h.StyleMarker) == "" {
		errs = append(errs, "host marker attributes cannot be empty")
	}
	return errs
}

func validateFallback(cfg *Config) []string {
	var errs []string
	for i, family := range cfg.Fallback.Stack {
		errs = append(errs, domainvalidation.ValidateFontFamily(fmt.Sprintf("fallback.stack[%d]", i), family)...)
	}
	return errs
}
