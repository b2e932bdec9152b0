// Package fontengine applies installed fonts and a font size delta to a live
// host document. It owns the font catalog, resolves font assets, composes the
// stylesheet and tracks per-element base sizes.
package fontengine

// HostProfile names the parts of the host's CSS surface the engine touches.
type HostProfile struct {
	PluginName string

	UIFamilyProperty   string
	CodeFamilyProperty string
	UISizeProperty     string
	EditorSizeProperty string

	// Used when the host's size properties are unreadable or non-positive.
	UISizeFallback     float64
	EditorSizeFallback float64
	MinFontSize        float64

	RootSelectors []string
	TextSelectors []string
	IconClasses   []string

	BaseSizeAttribute string
	BaseSizeProperty  string

	StyleMarker        string
	LegacyStyleMarkers []string

	// FallbackStack follows the active family in the font stack.
	FallbackStack []string
}

// DefaultHostProfile returns the profile for the stock host theme.
func DefaultHostProfile() HostProfile {
	return HostProfile{
		PluginName:         "fontkeeper",
		UIFamilyProperty:   "--b3-font-family",
		CodeFamilyProperty: "--b3-font-family-code",
		UISizeProperty:     "--b3-font-size",
		EditorSizeProperty: "--b3-font-size-editor",
		UISizeFallback:     14,
		EditorSizeFallback: 16,
		MinFontSize:        8,
		RootSelectors: []string{
			":root",
			":root:lang(zh_CN)",
			":root:lang(zh_CHT)",
			":root:lang(en_US)",
			":root:lang(ja_JP)",
		},
		TextSelectors: []string{
			"body",
			"#layouts",
			".layout",
			".layout__center",
			".layout-tab-container",
			".b3-typography",
			".protyle",
			".protyle-title",
			".protyle-title__input",
			".protyle-wysiwyg [data-node-id]",
			".protyle-wysiwyg [data-node-id] *",
			".protyle-wysiwyg [data-node-id] code",
			".protyle-wysiwyg [data-node-id] .hljs",
			".code-block",
			".code-block code",
			".code-block .hljs",
			"#layouts *:not(.b3-icon):not(.fn__icon):not([class*='icon']):not(svg):not(svg *)",
			"code",
			"pre",
		},
		IconClasses:        []string{"b3-icon", "fn__icon"},
		BaseSizeAttribute:  "data-fm-font-size-base",
		BaseSizeProperty:   "--fm-base-font-size",
		StyleMarker:        "data-font-manager-injected",
		LegacyStyleMarkers: []string{"data-font-store-injected"},
		FallbackStack: []string{
			"Emojis Additional",
			"Emojis Reset",
			"BlinkMacSystemFont",
			"Helvetica",
			"PingFang SC",
			"Luxi Sans",
			"DejaVu Sans",
			"Hiragino Sans GB",
			"Source Han Sans SC",
			"arial",
			"Microsoft Yahei",
			"sans-serif",
			"emojis",
		},
	}
}

// StyleID is the id of the injected style element.
func (p HostProfile) StyleID() string {
	return "snippetCSS-" + p.PluginName
}

// styleMarkers lists every marker whose style elements belong to this engine
// or an earlier generation of it.
func (p HostProfile) styleMarkers() []string {
	return append([]string{p.StyleMarker}, p.LegacyStyleMarkers...)
}

// rootOverrideProperties are the inline root overrides earlier generations left behind.
func (p HostProfile) rootOverrideProperties() []string {
	return []string{p.UIFamilyProperty, p.CodeFamilyProperty, p.UISizeProperty, p.EditorSizeProperty}
}
