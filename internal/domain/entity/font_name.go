package entity

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const (
	defaultFontName = "Font"
	maxSlugRunes    = 80
)

var (
	camelBoundaryRE = regexp.MustCompile(`([a-z])([A-Z])`)
	separatorRunRE  = regexp.MustCompile(`[-_]+`)
	whitespaceRunRE = regexp.MustCompile(`\s+`)
	reservedCharsRE = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	familyQuotesRE  = regexp.MustCompile(`['"\\]`)
)

// DeriveDisplayName turns a file name like "FiraSans-Bold_Italic.ttf" into
// "Fira Sans Bold Italic": the extension is dropped, camel/Pascal-case
// boundaries are split and separator runs become single spaces.
func DeriveDisplayName(filename string) string {
	name := norm.NFC.String(filename)
	if dot := strings.LastIndex(name, "."); dot > 0 {
		name = name[:dot]
	}
	name = camelBoundaryRE.ReplaceAllString(name, "$1 $2")
	name = separatorRunRE.ReplaceAllString(name, " ")
	name = strings.TrimSpace(whitespaceRunRE.ReplaceAllString(name, " "))
	if name == "" {
		return defaultFontName
	}
	return name
}

// FamilyFromDisplayName derives the CSS family identifier from a display name.
// Quotes and backslashes are removed so the family can be embedded in CSS strings.
func FamilyFromDisplayName(displayName string) string {
	family := strings.TrimSpace(familyQuotesRE.ReplaceAllString(displayName, ""))
	if family == "" {
		return defaultFontName
	}
	return family
}

// SanitizeFamilyName returns a filesystem-safe slug for a family name.
func SanitizeFamilyName(name string) string {
	if name == "" {
		name = "unknown"
	}
	slug := reservedCharsRE.ReplaceAllString(name, "_")
	slug = whitespaceRunRE.ReplaceAllString(slug, "_")
	if utf8.RuneCountInString(slug) > maxSlugRunes {
		slug = string([]rune(slug)[:maxSlugRunes])
	}
	return slug
}
