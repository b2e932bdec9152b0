package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// ActiveBadge marks the font currently applied to the host.
func (t *Theme) ActiveBadge() string {
	return t.Badge.Render("active")
}

// FormatBadge renders a font file extension such as ".woff2" as "WOFF2".
func (t *Theme) FormatBadge(ext string) string {
	return t.BadgeMuted.Render(strings.ToUpper(strings.TrimPrefix(ext, ".")))
}

// DeltaBadge renders a font size delta with an explicit sign.
func (t *Theme) DeltaBadge(delta int) string {
	if delta == 0 {
		return t.BadgeMuted.Render("host size")
	}
	return t.Badge.Render(FormatDelta(delta))
}

// AccentBadge renders a badge with accent color.
func (t *Theme) AccentBadge(text string) string {
	return t.Badge.Render(text)
}

// MutedBadge renders a badge with muted colors.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}

// StatusBadge renders a status badge with custom colors.
func (t *Theme) StatusBadge(text string, fg, bg lipgloss.Color) string {
	style := lipgloss.NewStyle().
		Foreground(fg).
		Background(bg).
		Padding(0, 1)
	return style.Render(text)
}

// FormatDelta renders a size delta as "+4px", "-2px" or "0px".
func FormatDelta(delta int) string {
	if delta > 0 {
		return fmt.Sprintf("+%dpx", delta)
	}
	return fmt.Sprintf("%dpx", delta)
}

// RelativeTime formats a time as a human-readable relative string.
func RelativeTime(tm time.Time) string {
	return relativeTimeAt(tm, time.Now())
}

func relativeTimeAt(tm, now time.Time) string {
	if tm.IsZero() {
		return "unknown"
	}
	diff := now.Sub(tm)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	case diff < 30*24*time.Hour:
		return fmt.Sprintf("%dw ago", int(diff.Hours()/(24*7)))
	case diff < 365*24*time.Hour:
		return fmt.Sprintf("%dmo ago", int(diff.Hours()/(24*30)))
	default:
		return fmt.Sprintf("%dy ago", int(diff.Hours()/(24*365)))
	}
}
