package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSettings_LegacyGlobalFontAndAbsoluteSize(t *testing.T) {
	got := DecodeSettings([]byte(`{"globalFont":"Foo","fontSize":20}`))

	assert.Equal(t, "Foo", got.ActiveFont)
	assert.Equal(t, 4, got.FontSizeDelta)
	assert.Empty(t, got.InstalledFonts)
	assert.NotNil(t, got.InstalledFonts)
}

func TestDecodeSettings_LegacyEnabledFlag(t *testing.T) {
	payload := `{
		"installedFonts": [
			{"id": "a", "name": "Alpha", "family": "Alpha", "filePath": "/fonts/Alpha.ttf", "enabled": false},
			{"id": "b", "name": "Beta", "family": "Beta", "filePath": "/fonts/Beta.ttf", "enabled": true}
		]
	}`

	got := DecodeSettings([]byte(payload))

	require.Len(t, got.InstalledFonts, 2)
	assert.Equal(t, "Beta", got.ActiveFont)
	assert.Equal(t, "/fonts/Alpha.ttf", got.InstalledFonts[0].StoragePath)
	assert.Equal(t, 0, got.FontSizeDelta)
}

func TestDecodeSettings_LegacyFallbackOrder(t *testing.T) {
	got := DecodeSettings([]byte(`{"editorFont":"Editor","codeFont":"Code"}`))
	assert.Equal(t, "Editor", got.ActiveFont)

	got = DecodeSettings([]byte(`{"activeFont":"Current","globalFont":"Old"}`))
	assert.Equal(t, "Current", got.ActiveFont)
}

func TestDecodeSettings_DropsCorruptRecords(t *testing.T) {
	payload := `{"installedFonts":[
		{"id":"","family":"NoID","storagePath":"/x.ttf"},
		{"id":"1","family":"","storagePath":"/y.ttf"},
		{"id":"2","family":"NoPath"},
		"garbage",
		{"id":3,"name":"Named","storagePath":"/z.ttf","fileSize":"abc"}
	]}`

	got := DecodeSettings([]byte(payload))

	require.Len(t, got.InstalledFonts, 1)
	rec := got.InstalledFonts[0]
	assert.Equal(t, "3", rec.ID)
	assert.Equal(t, "Named", rec.Family, "family falls back to name")
	assert.Equal(t, int64(0), rec.FileSize)
}

func TestDecodeSettings_DeltaHandling(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected int
	}{
		{"plain delta", `{"fontSizeDelta":3}`, 3},
		{"rounded", `{"fontSizeDelta":2.6}`, 3},
		{"negative half rounds up", `{"fontSizeDelta":-1.5}`, -1},
		{"clamped high", `{"fontSizeDelta":99}`, FontSizeDeltaMax},
		{"clamped low", `{"fontSizeDelta":-99}`, FontSizeDeltaMin},
		{"null delta is zero", `{"fontSizeDelta":null,"fontSize":20}`, 0},
		{"non numeric delta uses legacy", `{"fontSizeDelta":"x","fontSize":12}`, -4},
		{"numeric string", `{"fontSizeDelta":"5"}`, 5},
		{"zero legacy size ignored", `{"fontSize":0}`, 0},
		{"absent", `{}`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DecodeSettings([]byte(tt.payload)).FontSizeDelta)
		})
	}
}

func TestClampFontSizeDelta_RoundsHalvesUp(t *testing.T) {
	tests := []struct {
		in       float64
		expected int
	}{
		{1.5, 2},
		{-1.5, -1},
		{-2.5, -2},
		{-2.6, -3},
		{0.49, 0},
		{-0.5, 0},
		{24.4, 24},
		{-24.5, -24},
		{-25, FontSizeDeltaMin},
		{1e300, FontSizeDeltaMax},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, ClampFontSizeDelta(tt.in), "input %v", tt.in)
	}
}

func TestDecodeSettings_GarbageFallsBackToDefaults(t *testing.T) {
	for _, payload := range []string{"", "not json", "[]", "42", `"str"`, "null"} {
		assert.Equal(t, DefaultSettings(), DecodeSettings([]byte(payload)), payload)
	}
}

func TestSettings_RoundTrip(t *testing.T) {
	cfg := Settings{
		InstalledFonts: []FontRecord{
			{
				ID:          "f1",
				Name:        "Fira Sans",
				Family:      "Fira Sans",
				StoragePath: "/data/public/fontkeeper/fonts/Fira_Sans.ttf",
				FileExt:     ExtTTF,
				FileSize:    1234,
				InstalledAt: time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC),
			},
			{ID: "f2", Name: "Mono", Family: "Mono", StoragePath: "/m.woff2", FileExt: ExtWOFF2},
		},
		ActiveFont:    "Fira Sans",
		FontSizeDelta: -3,
	}

	data, err := EncodeSettings(cfg)
	require.NoError(t, err)
	assert.Equal(t, cfg, DecodeSettings(data))

	empty, err := EncodeSettings(Settings{})
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), DecodeSettings(empty))
}

func TestSettings_ActiveIgnoresDanglingFamily(t *testing.T) {
	s := Settings{ActiveFont: "Ghost", InstalledFonts: []FontRecord{{ID: "1", Family: "Real", StoragePath: "/r.ttf"}}}
	_, ok := s.Active()
	assert.False(t, ok)

	s.ActiveFont = "Real"
	rec, ok := s.Active()
	require.True(t, ok)
	assert.Equal(t, "1", rec.ID)
}

func TestSettings_CloneIsDeep(t *testing.T) {
	s := Settings{InstalledFonts: []FontRecord{{ID: "1"}}}
	c := s.Clone()
	c.InstalledFonts[0].ID = "changed"
	assert.Equal(t, "1", s.InstalledFonts[0].ID)
}
