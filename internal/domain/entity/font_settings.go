package entity

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Font size delta bounds and the baseline of the legacy absolute-size slider.
const (
	FontSizeDeltaMin   = -24
	FontSizeDeltaMax   = 24
	LegacyBaseFontSize = 16
)

// Settings is the persisted font configuration of one installation.
type Settings struct {
	InstalledFonts []FontRecord `json:"installedFonts"`
	ActiveFont     string       `json:"activeFont"`
	FontSizeDelta  int          `json:"fontSizeDelta"`
}

// DefaultSettings returns an empty configuration using the host defaults.
func DefaultSettings() Settings {
	return Settings{InstalledFonts: []FontRecord{}}
}

// Clone returns a deep copy so snapshots can be handed to other goroutines.
func (s Settings) Clone() Settings {
	fonts := make([]FontRecord, len(s.InstalledFonts))
	copy(fonts, s.InstalledFonts)
	s.InstalledFonts = fonts
	return s
}

// FindByID returns the record with the given id.
func (s Settings) FindByID(id string) (FontRecord, bool) {
	for _, f := range s.InstalledFonts {
		if f.ID == id {
			return f, true
		}
	}
	return FontRecord{}, false
}

// FindByFamily returns the record with the given family.
func (s Settings) FindByFamily(family string) (FontRecord, bool) {
	for _, f := range s.InstalledFonts {
		if f.Family == family {
			return f, true
		}
	}
	return FontRecord{}, false
}

// Active resolves ActiveFont to its record. A dangling family counts as no active font.
func (s Settings) Active() (FontRecord, bool) {
	if s.ActiveFont == "" {
		return FontRecord{}, false
	}
	return s.FindByFamily(s.ActiveFont)
}

// ClampFontSizeDelta rounds v to the nearest integer, halves toward +Inf
// (-1.5 becomes -1), and constrains it to the supported delta range.
// Non-finite input yields 0.
func ClampFontSizeDelta(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	r := math.Floor(v + 0.5)
	if r < FontSizeDeltaMin {
		return FontSizeDeltaMin
	}
	if r > FontSizeDeltaMax {
		return FontSizeDeltaMax
	}
	return int(r)
}

// EncodeSettings serializes settings in the current persisted shape.
func EncodeSettings(s Settings) ([]byte, error) {
	if s.InstalledFonts == nil {
		s.InstalledFonts = []FontRecord{}
	}
	return json.Marshal(s)
}

// DecodeSettings parses any stored payload into a valid Settings value.
// Malformed JSON yields the defaults.
func DecodeSettings(data []byte) Settings {
	if len(bytes.TrimSpace(data)) == 0 {
		return DefaultSettings()
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return DefaultSettings()
	}
	return NormalizeSettings(raw)
}

// NormalizeSettings converts a decoded JSON value of any known shape into the
// current shape. Legacy shapes handled:
//   - globalFont/editorFont/codeFont instead of activeFont
//   - per-record "enabled" booleans instead of activeFont
//   - absolute fontSize (12-24 slider, baseline 16) instead of fontSizeDelta
//   - filePath instead of storagePath
//
// Records missing id, family or storage path are dropped as corrupt.
func NormalizeSettings(raw any) Settings {
	out := DefaultSettings()
	obj, ok := raw.(map[string]any)
	if !ok {
		return out
	}

	installed, _ := obj["installedFonts"].([]any)
	for _, item := range installed {
		rec := normalizeRecord(item)
		if rec.Valid() {
			out.InstalledFonts = append(out.InstalledFonts, rec)
		}
	}

	out.ActiveFont = migrateActiveFont(obj, installed)
	out.FontSizeDelta = migrateFontSizeDelta(obj)
	return out
}

func normalizeRecord(item any) FontRecord {
	m, ok := item.(map[string]any)
	if !ok {
		return FontRecord{}
	}
	rec := FontRecord{
		ID:      idString(m["id"]),
		Name:    stringOr(m["name"], ""),
		FileExt: stringOr(m["fileExt"], ""),
	}
	rec.Family = stringOr(m["family"], rec.Name)
	rec.StoragePath = stringOr(m["storagePath"], stringOr(m["filePath"], ""))
	if n, ok := number(m["fileSize"]); ok && n > 0 {
		rec.FileSize = int64(n)
	}
	if ts, ok := m["installedAt"].(string); ok {
		if t, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			rec.InstalledAt = t
		}
	}
	return rec
}

func migrateActiveFont(obj map[string]any, installed []any) string {
	if active := stringOr(obj["activeFont"], ""); active != "" {
		return active
	}
	for _, key := range []string{"globalFont", "editorFont", "codeFont"} {
		if legacy := stringOr(obj[key], ""); legacy != "" {
			return legacy
		}
	}
	for _, item := range installed {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if enabled, _ := m["enabled"].(bool); enabled {
			if family := stringOr(m["family"], ""); family != "" {
				return family
			}
		}
	}
	return ""
}

func migrateFontSizeDelta(obj map[string]any) int {
	raw, present := obj["fontSizeDelta"]
	if present && raw == nil {
		return 0
	}
	if delta, ok := number(raw); ok {
		return ClampFontSizeDelta(delta)
	}
	if legacy, ok := number(obj["fontSize"]); ok && legacy > 0 {
		return ClampFontSizeDelta(legacy - LegacyBaseFontSize)
	}
	return 0
}

func stringOr(v any, fallback string) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fallback
}

func idString(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case json.Number:
		return id.String()
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	default:
		return ""
	}
}

// number reports v as a finite float. Empty strings count as zero.
func number(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case float64:
		f = n
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, true
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
