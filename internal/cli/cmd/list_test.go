package cmd

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/fontkeeper/internal/application/usecase"
	"github.com/bnema/fontkeeper/internal/domain/entity"
)

func sampleStatus() usecase.FontStatus {
	installed := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	return usecase.FontStatus{
		ActiveFont:    "Inter",
		FontSizeDelta: -2,
		Fonts: []usecase.FontListing{
			{
				Record: entity.FontRecord{
					ID:          "1",
					Name:        "Inter",
					Family:      "Inter",
					StoragePath: "/data/public/fontkeeper/fonts/Inter.woff2",
					FileExt:     ".woff2",
					FileSize:    2048,
					InstalledAt: installed,
				},
				Active:    true,
				HumanSize: "2.0 KB",
			},
			{
				Record: entity.FontRecord{
					ID:          "2",
					Family:      "Fira Code",
					StoragePath: "/data/public/fontkeeper/fonts/Fira_Code.ttf",
					FileExt:     ".ttf",
					FileSize:    10,
				},
				HumanSize: "10 B",
			},
		},
	}
}

func TestWriteStatusJSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeStatusJSON(&out, sampleStatus()))

	var got statusJSON
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))

	assert.Equal(t, "Inter", got.ActiveFont)
	assert.Equal(t, -2, got.FontSizeDelta)
	require.Len(t, got.Fonts, 2)
	assert.Equal(t, "woff2", got.Fonts[0].Format)
	assert.True(t, got.Fonts[0].Active)
	assert.Equal(t, "Fira Code", got.Fonts[1].Name)
	assert.Equal(t, "truetype", got.Fonts[1].Format)
}

func TestFontRows(t *testing.T) {
	rows := fontRows(sampleStatus())

	require.Len(t, rows, 2)
	assert.Equal(t, "Inter", rows[0].Name)
	assert.Equal(t, ".woff2", rows[0].Ext)
	assert.Equal(t, "2.0 KB", rows[0].Size)
	assert.True(t, rows[0].Active)
	assert.False(t, rows[1].Active)
}
