package entity

import (
	"fmt"
	"strings"
	"time"
)

// FontFormat is the CSS format() token of an installed font.
type FontFormat string

const (
	FontFormatTrueType FontFormat = "truetype"
	FontFormatOpenType FontFormat = "opentype"
	FontFormatWOFF     FontFormat = "woff"
	FontFormatWOFF2    FontFormat = "woff2"
)

// Supported file extensions, in the order they are matched against file names.
const (
	ExtTTF   = ".ttf"
	ExtOTF   = ".otf"
	ExtWOFF2 = ".woff2"
	ExtWOFF  = ".woff"
)

// SupportedExtensions lists the accepted font file extensions.
func SupportedExtensions() []string {
	return []string{ExtTTF, ExtOTF, ExtWOFF2, ExtWOFF}
}

// FormatForExt maps a file extension to its CSS format token.
// Unknown extensions map to truetype.
func FormatForExt(ext string) FontFormat {
	switch strings.ToLower(ext) {
	case ExtOTF:
		return FontFormatOpenType
	case ExtWOFF2:
		return FontFormatWOFF2
	case ExtWOFF:
		return FontFormatWOFF
	default:
		return FontFormatTrueType
	}
}

// MIMEType returns the media type used when the font is served from memory.
func (f FontFormat) MIMEType() string {
	switch f {
	case FontFormatOpenType:
		return "font/otf"
	case FontFormatWOFF:
		return "font/woff"
	case FontFormatWOFF2:
		return "font/woff2"
	default:
		return "font/ttf"
	}
}

// ExtFromFilename returns the declared font extension of a file name,
// or "" when the name does not end in a supported extension.
func ExtFromFilename(filename string) string {
	name := strings.ToLower(filename)
	for _, ext := range SupportedExtensions() {
		if strings.HasSuffix(name, ext) {
			return ext
		}
	}
	return ""
}

// DetectExt classifies font bytes by their leading signature and returns the
// matching extension, or "" when the data is not a recognised font.
//
//	00 01 00 00 -> .ttf
//	OTTO        -> .otf
//	wOF2        -> .woff2
//	wOFF        -> .woff
func DetectExt(data []byte) string {
	if len(data) < 4 {
		return ""
	}
	switch string(data[:4]) {
	case "\x00\x01\x00\x00":
		return ExtTTF
	case "OTTO":
		return ExtOTF
	}
	// WOFF headers are 44 bytes; anything shorter than the flavor field is junk.
	if len(data) < 8 {
		return ""
	}
	switch string(data[:4]) {
	case "wOF2":
		return ExtWOFF2
	case "wOFF":
		return ExtWOFF
	}
	return ""
}

// FontRecord is one imported font.
type FontRecord struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Family      string    `json:"family"`
	StoragePath string    `json:"storagePath"`
	FileExt     string    `json:"fileExt"`
	FileSize    int64     `json:"fileSize"`
	InstalledAt time.Time `json:"installedAt"`
}

// Format returns the CSS format token derived from the sniffed extension.
func (r FontRecord) Format() FontFormat {
	return FormatForExt(r.FileExt)
}

// DisplayName prefers the human name and falls back to the family.
func (r FontRecord) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.Family
}

// Valid reports whether the record carries the fields the catalog depends on.
func (r FontRecord) Valid() bool {
	return r.ID != "" && r.Family != "" && r.StoragePath != ""
}

// HumanFileSize renders a byte count as B, KB or MB with one decimal.
func HumanFileSize(n int64) string {
	if n < 0 {
		n = 0
	}
	switch {
	case n < 1024:
		return fmt.Sprintf("%d B", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
	}
}
