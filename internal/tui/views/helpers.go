package views

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/asteroid-belt/skillmatrix/internal/tui/theme"
)

// visibleWindow returns the [start, end) range of a list of n rows that keeps
// cursor on screen when only height rows fit.
func visibleWindow(n, cursor, height int) (int, int) {
	if height <= 0 || n <= height {
		return 0, n
	}
	start := cursor - height/2
	start = max(0, min(start, n-height))
	return start, start + height
}

// clampCursor keeps a cursor inside a list of n rows.
func clampCursor(cursor, n int) int {
	if n == 0 {
		return 0
	}
	return max(0, min(cursor, n-1))
}

func sectionTitle(s string) string {
	return lipgloss.NewStyle().
		Foreground(theme.Current.Primary).
		Bold(true).
		Render(s)
}

func mutedText(s string) string {
	return lipgloss.NewStyle().
		Foreground(theme.Current.TextMuted).
		Render(s)
}

func statusLine(s string) string {
	if s == "" {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(theme.Current.Success).
		Italic(true).
		Render(s)
}

func pane(width int, focused bool) lipgloss.Style {
	border := theme.Current.Overlay
	if focused {
		border = theme.Current.Primary
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(max(width-2, 10))
}
