package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/asteroid-belt/skillmatrix/internal/models"
	"github.com/asteroid-belt/skillmatrix/internal/tui/components"
	"github.com/asteroid-belt/skillmatrix/internal/tui/theme"
)

// HelpView displays a list of available commands and keybindings.
type HelpView struct {
	width        int
	height       int
	viewCommands ViewCommands
}

// Command represents a single keyboard command.
type Command struct {
	Key         string
	Description string
}

// ViewCommands represents commands for a specific view.
type ViewCommands struct {
	ViewName string
	Commands []Command
}

// GlobalCommands work on every screen.
var GlobalCommands = []Command{
	{Key: "tab, shift+tab", Description: "Switch screen"},
	{Key: "?", Description: "Show this help screen"},
	{Key: "q", Description: "Quit (with confirmation)"},
	{Key: "ctrl+c", Description: "Quit immediately"},
}

// NewHelpView creates a new help view.
func NewHelpView() *HelpView {
	return &HelpView{}
}

// SetSize sets the width and height of the view.
func (hv *HelpView) SetSize(width, height int) {
	hv.width = width
	hv.height = height
}

// SetViewCommands sets the commands from the calling view.
func (hv *HelpView) SetViewCommands(commands ViewCommands) {
	hv.viewCommands = commands
}

// Update handles key input. Returns true when the help screen should close.
func (hv *HelpView) Update(key string) bool {
	switch key {
	case "esc", "?", "q", "enter":
		return true
	default:
		return false
	}
}

// View renders the help view.
func (hv *HelpView) View() string {
	title := lipgloss.NewStyle().
		Foreground(theme.Current.Accent).
		Bold(true).
		MarginBottom(1).
		Render("Help - Available Commands")

	sectionHeader := lipgloss.NewStyle().
		Foreground(theme.Current.Primary).
		Bold(true).
		MarginTop(1)

	footer := lipgloss.NewStyle().
		Foreground(theme.Current.TextMuted).
		Italic(true).
		MarginTop(1).
		Render("Press Esc, ?, or q to close")

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		sectionHeader.Render("Global Commands"),
		hv.renderCommandTable(GlobalCommands),
		"",
		sectionHeader.Render(hv.viewCommands.ViewName+" Commands"),
		hv.renderCommandTable(hv.viewCommands.Commands),
		"",
		sectionHeader.Render("Skill Levels"),
		hv.renderLevelLegend(),
		"",
		footer,
	)

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(content)
}

func (hv *HelpView) renderLevelLegend() string {
	rows := make([]string, 0, len(models.Levels))
	for _, l := range models.Levels {
		rows = append(rows, fmt.Sprintf("  %s %-12s %s",
			components.LevelBadge(int(l)), l.Label(), mutedText(l.Guidance())))
	}
	return strings.Join(rows, "\n")
}

// renderCommandTable renders the commands as a two-column table.
func (hv *HelpView) renderCommandTable(commands []Command) string {
	if len(commands) == 0 {
		return mutedText("  (none)")
	}

	maxKeyLen := 0
	for _, cmd := range commands {
		maxKeyLen = max(maxKeyLen, lipgloss.Width(cmd.Key))
	}
	keyColWidth := maxKeyLen + 2
	descColWidth := max(hv.width-keyColWidth-8, 20)

	keyStyle := lipgloss.NewStyle().
		Foreground(theme.Current.Accent).
		Bold(true).
		Padding(0, 1).
		Width(keyColWidth)

	descStyle := lipgloss.NewStyle().
		Foreground(theme.Current.Text).
		Padding(0, 1).
		Width(descColWidth)

	separator := mutedText(strings.Repeat("─", max(hv.width-8, keyColWidth+20)))

	rows := []string{separator}
	for _, cmd := range commands {
		rows = append(rows, lipgloss.JoinHorizontal(
			lipgloss.Left,
			keyStyle.Render(cmd.Key),
			descStyle.Render(cmd.Description),
		))
	}
	return strings.Join(rows, "\n")
}
