package fontengine

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bnema/fontkeeper/internal/domain/entity"
)

// FontFace is the resolved active font.
type FontFace struct {
	Family string
	URL    string
	Format entity.FontFormat
}

// SizeOverride is a non-zero delta plus the host base sizes it shifts.
type SizeOverride struct {
	Delta      int
	UIBase     float64
	EditorBase float64
}

// Stylesheet is the input of one composition.
type Stylesheet struct {
	Face  *FontFace
	Size  *SizeOverride
	Stack []string
}

// Empty reports whether the stylesheet would contain no rules.
func (s Stylesheet) Empty() bool {
	return s.Face == nil && (s.Size == nil || s.Size.Delta == 0)
}

// Render produces the CSS text for p. Blocks are separated by blank lines.
func (s Stylesheet) Render(p HostProfile) string {
	var rules []string
	rootSelector := strings.Join(p.RootSelectors, ",\n")

	if s.Face != nil {
		family := cssEscape(s.Face.Family)
		rules = append(rules, fmt.Sprintf(
			"@font-face {\n"+
				"  font-family: '%s';\n"+
				"  font-weight: normal;\n"+
				"  src: url('%s') format('%s');\n"+
				"  font-style: normal;\n"+
				"  font-display: swap;\n"+
				"}",
			family, cssEscape(s.Face.URL), s.Face.Format))

		stack := FontStack(s.Face.Family, s.Stack)
		rules = append(rules, fmt.Sprintf(
			"%s {\n"+
				"  %s: %s !important;\n"+
				"  %s: %s !important;\n"+
				"}\n"+
				"%s {\n"+
				"  font-family: var(%s) !important;\n"+
				"}",
			rootSelector,
			p.UIFamilyProperty, stack,
			p.CodeFamilyProperty, stack,
			strings.Join(p.TextSelectors, ",\n"),
			p.UIFamilyProperty))
	}

	if s.Size != nil && s.Size.Delta != 0 {
		delta := float64(s.Size.Delta)
		ui := math.Max(p.MinFontSize, s.Size.UIBase+delta)
		editor := math.Max(p.MinFontSize, s.Size.EditorBase+delta)
		rules = append(rules, fmt.Sprintf(
			"%s {\n"+
				"  %s: %spx !important;\n"+
				"  %s: %spx !important;\n"+
				"}\n"+
				"[%s='%s'] {\n"+
				"  font-size: calc(var(%s) + %spx) !important;\n"+
				"}",
			rootSelector,
			p.UISizeProperty, FormatPx(ui),
			p.EditorSizeProperty, FormatPx(editor),
			p.BaseSizeAttribute, markerValue,
			p.BaseSizeProperty, FormatPx(delta)))
	}

	return strings.Join(rules, "\n\n")
}

// FontStack renders family followed by the fallback families.
func FontStack(family string, fallback []string) string {
	parts := make([]string, 0, len(fallback)+1)
	parts = append(parts, "'"+cssEscape(family)+"'")
	for _, f := range fallback {
		if f == family {
			continue
		}
		parts = append(parts, quoteFamily(f))
	}
	return strings.Join(parts, ", ")
}

// FormatPx rounds to two decimals and drops trailing zeros: 14 -> "14",
// 13.5 -> "13.5", 13.456 -> "13.46".
func FormatPx(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	r := math.Round(v*100) / 100
	if r == 0 {
		return "0"
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// WarmupSpec is the font shorthand used to preload family.
func WarmupSpec(family string) string {
	return `16px "` + strings.ReplaceAll(family, `"`, "") + `"`
}

func cssEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(s)
}

// quoteFamily quotes names that are not plain identifiers.
func quoteFamily(f string) string {
	for _, r := range f {
		if !(r == '-' || r == '_' || r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return "'" + cssEscape(f) + "'"
		}
	}
	return f
}
