// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/fontkeeper/internal/application/usecase"
	"github.com/bnema/fontkeeper/internal/cli/styles"
	"github.com/bnema/fontkeeper/internal/domain/entity"
	"github.com/bnema/fontkeeper/internal/logging"
)

// FontManager is the subset of the manage use case the picker drives.
type FontManager interface {
	Status(ctx context.Context) usecase.FontStatus
	Activate(ctx context.Context, ref string) (entity.FontRecord, error)
	Deactivate(ctx context.Context) error
	Remove(ctx context.Context, ref string) (entity.FontRecord, error)
	SetSize(ctx context.Context, delta float64) (int, error)
}

// FontsModel is the Bubble Tea model for the interactive font picker.
type FontsModel struct {
	// UI components
	help help.Model
	keys fontsKeyMap

	// State
	status        usecase.FontStatus
	selectedIdx   int
	pendingDelete string // id awaiting a second delete press
	width         int
	err           error
	statusMessage string

	// Dependencies
	ctx     context.Context
	manager FontManager
	theme   *styles.Theme
}

// fontsKeyMap defines keybindings for the font picker.
type fontsKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Activate   key.Binding
	Deactivate key.Binding
	Delete     key.Binding
	Bigger     key.Binding
	Smaller    key.Binding
	ResetSize  key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k fontsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Activate, k.Bigger, k.Smaller, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k fontsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Activate, k.Deactivate},
		{k.Bigger, k.Smaller, k.ResetSize},
		{k.Delete, k.Help, k.Quit},
	}
}

func defaultFontsKeyMap() fontsKeyMap {
	return fontsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "activate"),
		),
		Deactivate: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "default font"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "d"),
			key.WithHelp("x", "delete"),
		),
		Bigger: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "bigger"),
		),
		Smaller: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "smaller"),
		),
		ResetSize: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "reset size"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewFontsModel creates a new font picker model.
func NewFontsModel(ctx context.Context, theme *styles.Theme, manager FontManager) FontsModel {
	return FontsModel{
		help:    help.New(),
		keys:    defaultFontsKeyMap(),
		width:   80,
		ctx:     ctx,
		manager: manager,
		theme:   theme,
	}
}

// statusLoadedMsg carries a fresh catalog status.
type statusLoadedMsg struct {
	status usecase.FontStatus
}

// actionDoneMsg is sent when a catalog mutation finishes.
type actionDoneMsg struct {
	message string
	err     error
}

// Init implements tea.Model.
func (m FontsModel) Init() tea.Cmd {
	return m.loadStatus
}

func (m FontsModel) loadStatus() tea.Msg {
	return statusLoadedMsg{status: m.manager.Status(m.ctx)}
}

// Update implements tea.Model.
func (m FontsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case statusLoadedMsg:
		m.status = msg.status
		if m.selectedIdx >= len(m.status.Fonts) {
			m.selectedIdx = max(len(m.status.Fonts)-1, 0)
		}
		return m, nil

	case actionDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			m.statusMessage = ""
		} else {
			m.err = nil
			m.statusMessage = msg.message
		}
		return m, m.loadStatus
	}

	return m, nil
}

func (m FontsModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	deleting := m.pendingDelete
	m.pendingDelete = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.selectedIdx > 0 {
			m.selectedIdx--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selectedIdx < len(m.status.Fonts)-1 {
			m.selectedIdx++
		}
		return m, nil

	case key.Matches(msg, m.keys.Activate):
		rec, ok := m.selected()
		if !ok {
			return m, nil
		}
		return m, m.run(func() (string, error) {
			_, err := m.manager.Activate(m.ctx, rec.ID)
			return "Font activated: " + rec.DisplayName(), err
		})

	case key.Matches(msg, m.keys.Deactivate):
		return m, m.run(func() (string, error) {
			return "Default font restored", m.manager.Deactivate(m.ctx)
		})

	case key.Matches(msg, m.keys.Delete):
		rec, ok := m.selected()
		if !ok {
			return m, nil
		}
		if deleting != rec.ID {
			m.pendingDelete = rec.ID
			m.statusMessage = fmt.Sprintf("Press %s again to delete %s", msg.String(), rec.DisplayName())
			return m, nil
		}
		return m, m.run(func() (string, error) {
			_, err := m.manager.Remove(m.ctx, rec.ID)
			return "Font deleted: " + rec.DisplayName(), err
		})

	case key.Matches(msg, m.keys.Bigger):
		return m, m.setSize(m.status.FontSizeDelta + 1)

	case key.Matches(msg, m.keys.Smaller):
		return m, m.setSize(m.status.FontSizeDelta - 1)

	case key.Matches(msg, m.keys.ResetSize):
		return m, m.setSize(0)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}

func (m FontsModel) selected() (entity.FontRecord, bool) {
	if m.selectedIdx < 0 || m.selectedIdx >= len(m.status.Fonts) {
		return entity.FontRecord{}, false
	}
	return m.status.Fonts[m.selectedIdx].Record, true
}

func (m FontsModel) setSize(delta int) tea.Cmd {
	return m.run(func() (string, error) {
		stored, err := m.manager.SetSize(m.ctx, float64(delta))
		return "Font size " + styles.FormatDelta(stored), err
	})
}

func (m FontsModel) run(action func() (string, error)) tea.Cmd {
	return func() tea.Msg {
		message, err := action()
		if err != nil {
			logging.FromContext(m.ctx).Warn().Err(err).Msg("font action failed")
		}
		return actionDoneMsg{message: message, err: err}
	}
}

// View implements tea.Model.
func (m FontsModel) View() string {
	t := m.theme
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(t.ErrorStyle.Render(fmt.Sprintf("%s Error: %v", styles.IconX, m.err)))
		b.WriteString("\n\n")
	}
	if m.statusMessage != "" {
		b.WriteString(t.Subtle.Render(m.statusMessage))
		b.WriteString("\n\n")
	}

	if len(m.status.Fonts) == 0 {
		b.WriteString(t.Subtle.Render("  No fonts installed."))
		b.WriteString("\n")
	}
	for i, f := range m.status.Fonts {
		b.WriteString(m.renderRow(i, f))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m FontsModel) renderHeader() string {
	t := m.theme

	icon := lipgloss.NewStyle().Foreground(t.Accent).Render(styles.IconFont)
	title := t.Title.MarginLeft(1).Render("Fonts")

	active := m.status.ActiveFont
	if active == "" {
		active = "host default"
	}
	stats := t.Subtle.Render(fmt.Sprintf("  %d installed  %s active", len(m.status.Fonts), active))

	return icon + title + stats + "  " + t.DeltaBadge(m.status.FontSizeDelta)
}

func (m FontsModel) renderRow(i int, f usecase.FontListing) string {
	t := m.theme

	name := f.Record.DisplayName()
	if f.Active {
		name += " " + t.ActiveBadge()
	}
	meta := t.Subtle.Render(f.HumanSize) + " " + t.FormatBadge(f.Record.FileExt)

	if i == m.selectedIdx {
		return t.ListItemActive.Render(styles.IconCursor+" "+name) + " " + meta
	}
	return t.ListItem.Render("  "+name) + " " + meta
}
