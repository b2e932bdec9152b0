package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/fontkeeper/internal/application/port"
)

// FontRow is one installed font in a listing.
type FontRow struct {
	ID          string
	Name        string
	Family      string
	Ext         string
	Size        string
	InstalledAt time.Time
	Active      bool
}

// PathRow is a labelled filesystem location.
type PathRow struct {
	Label  string
	Path   string
	Detail string
}

// RenderFontList renders installed fonts with the active one highlighted,
// followed by the current size delta.
func (t *Theme) RenderFontList(rows []FontRow, delta int) string {
	var b strings.Builder
	b.WriteString(t.BoxHeader.Render(fmt.Sprintf("%s Installed fonts (%d)", IconFont, len(rows))))
	b.WriteString("\n")

	if len(rows) == 0 {
		b.WriteString(t.Subtle.Render("  No fonts installed. Use 'fontkeeper import <file>' to add one."))
		b.WriteString("\n")
	}

	for _, r := range rows {
		b.WriteString(t.renderFontRow(r))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(t.Subtle.Render(IconResize + " Size "))
	b.WriteString(t.DeltaBadge(delta))
	b.WriteString("\n")
	return b.String()
}

func (t *Theme) renderFontRow(r FontRow) string {
	name := r.Name
	if name == "" {
		name = r.Family
	}

	var line string
	if r.Active {
		line = t.ListItemActive.Render(IconCursor+" "+name) + " " + t.ActiveBadge()
	} else {
		line = t.ListItem.Render("  " + name)
	}
	line += " " + t.FormatBadge(r.Ext)

	desc := fmt.Sprintf("%s · %s · %s · %s", r.Family, r.Size, RelativeTime(r.InstalledAt), r.ID)
	return lipgloss.JoinVertical(lipgloss.Left, line, t.ListItemDesc.Render(desc))
}

// RenderImportSummary renders the per-file outcome of an import.
// A nil error marks a successful file.
func (t *Theme) RenderImportSummary(names []string, errs []error) string {
	var b strings.Builder
	for i, name := range names {
		var err error
		if i < len(errs) {
			err = errs[i]
		}
		if err == nil {
			b.WriteString(t.SuccessStyle.Render(IconCheck + " " + name))
		} else {
			b.WriteString(t.ErrorStyle.Render(IconX+" "+name) + " " + t.Subtle.Render(err.Error()))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderNotification renders a one-line notification styled by its type.
func (t *Theme) RenderNotification(message string, kind port.NotificationType) string {
	switch kind {
	case port.NotificationSuccess:
		return t.SuccessStyle.Render(IconCheck + " " + message)
	case port.NotificationError:
		return t.ErrorStyle.Render(IconX + " " + message)
	case port.NotificationWarning:
		return t.WarningStyle.Render(IconWarning + " " + message)
	default:
		return t.Normal.Render(IconInfo + " " + message)
	}
}

// RenderPaths renders labelled paths with aligned labels.
func (t *Theme) RenderPaths(rows []PathRow) string {
	width := 0
	for _, r := range rows {
		width = max(width, lipgloss.Width(r.Label))
	}

	var b strings.Builder
	for _, r := range rows {
		label := t.Subtitle.Width(width + 2).Render(r.Label)
		b.WriteString(label + t.Normal.Render(r.Path))
		if r.Detail != "" {
			b.WriteString(" " + t.Subtle.Render("("+r.Detail+")"))
		}
		b.WriteString("\n")
	}
	return b.String()
}
