package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/asteroid-belt/skillmatrix/internal/tui/theme"
)

// Styles contains the Lipgloss styles for the app chrome.
// Views style their own content from theme.Current.
type Styles struct {
	// Header styles
	Header      lipgloss.Style
	HeaderTitle lipgloss.Style
	Tab         lipgloss.Style
	TabActive   lipgloss.Style

	// Footer styles
	Footer     lipgloss.Style
	FooterHelp lipgloss.Style

	// Text styles
	Muted       lipgloss.Style
	StatusError lipgloss.Style
}

// DefaultStyles returns the default Lipgloss styles using the current theme.
func DefaultStyles() Styles {
	t := theme.Current

	return Styles{
		Header: lipgloss.NewStyle().
			Padding(0, 1).
			MarginBottom(1),

		HeaderTitle: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true).
			MarginRight(2),

		Tab: lipgloss.NewStyle().
			Foreground(t.TextMuted).
			Padding(0, 1),

		TabActive: lipgloss.NewStyle().
			Foreground(t.TextHighlight).
			Background(t.Overlay).
			Bold(true).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(t.TextMuted).
			Padding(0, 1),

		FooterHelp: lipgloss.NewStyle().
			Foreground(t.TextMuted).
			Italic(true),

		Muted: lipgloss.NewStyle().
			Foreground(t.TextMuted),

		StatusError: lipgloss.NewStyle().
			Foreground(t.Error).
			Bold(true),
	}
}
