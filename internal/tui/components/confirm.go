package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/asteroid-belt/skillmatrix/internal/tui/theme"
)

// ConfirmResult is the outcome of a key press on a ConfirmDialog.
type ConfirmResult int

const (
	ConfirmPending ConfirmResult = iota
	ConfirmYes
	ConfirmNo
)

// ConfirmDialog is a simple yes/no confirmation dialog.
type ConfirmDialog struct {
	title    string
	message  string
	selected bool // false = no, true = yes
}

// NewConfirmDialog creates a new confirmation dialog.
func NewConfirmDialog(title, message string) *ConfirmDialog {
	return &ConfirmDialog{
		title:   title,
		message: message,
	}
}

// SelectNo selects the "No" option.
func (c *ConfirmDialog) SelectNo() {
	c.selected = false
}

// IsYesSelected returns whether "Yes" is selected.
func (c *ConfirmDialog) IsYesSelected() bool {
	return c.selected
}

// Toggle switches between Yes and No.
func (c *ConfirmDialog) Toggle() {
	c.selected = !c.selected
}

// HandleKey applies a key press. The dialog resets to "No" once it resolves.
func (c *ConfirmDialog) HandleKey(key string) ConfirmResult {
	switch key {
	case "left", "right", "h", "l", "tab":
		c.Toggle()
		return ConfirmPending
	case "enter":
		yes := c.selected
		c.SelectNo()
		if yes {
			return ConfirmYes
		}
		return ConfirmNo
	case "y":
		c.SelectNo()
		return ConfirmYes
	case "esc", "n":
		c.SelectNo()
		return ConfirmNo
	default:
		return ConfirmPending
	}
}

// View renders the confirmation dialog.
func (c *ConfirmDialog) View() string {
	button := lipgloss.NewStyle().
		Foreground(theme.Current.TextMuted).
		Padding(0, 2)
	active := button.
		Background(theme.Current.Accent).
		Foreground(theme.Current.Background).
		Bold(true)

	yes, no := button, active
	if c.selected {
		yes, no = active, button
	}

	buttons := lipgloss.JoinHorizontal(
		lipgloss.Left,
		"[ ",
		yes.Render("Yes"),
		" ] [ ",
		no.Render("No"),
		" ]",
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Current.Primary).
		Padding(1, 2).
		Render(
			lipgloss.JoinVertical(
				lipgloss.Center,
				lipgloss.NewStyle().Bold(true).Foreground(theme.Current.TextHighlight).Render(c.title),
				"",
				c.message,
				"",
				buttons,
			),
		)
}

// CenteredView renders the dialog centered on the screen.
func (c *ConfirmDialog) CenteredView(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, c.View())
}
