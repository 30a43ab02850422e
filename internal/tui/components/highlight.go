package components

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/asteroid-belt/skillmatrix/internal/tui/theme"
)

// HighlightStyles holds the styles for rendering search matches.
type HighlightStyles struct {
	Normal lipgloss.Style
	Match  lipgloss.Style
}

// DefaultHighlightStyles returns the default highlight styles.
func DefaultHighlightStyles() HighlightStyles {
	return HighlightStyles{
		Normal: lipgloss.NewStyle().
			Foreground(theme.Current.Text),
		Match: lipgloss.NewStyle().
			Foreground(theme.Current.Accent).
			Bold(true),
	}
}

// Highlight renders text truncated to width cells with every case-insensitive
// occurrence of term emphasized.
func Highlight(text, term string, width int, styles HighlightStyles) string {
	text = Truncate(text, width)
	if term == "" {
		return styles.Normal.Render(text)
	}

	var b strings.Builder
	last := 0
	for _, m := range matchRanges(text, term) {
		if m[0] > last {
			b.WriteString(styles.Normal.Render(text[last:m[0]]))
		}
		b.WriteString(styles.Match.Render(text[m[0]:m[1]]))
		last = m[1]
	}
	if last < len(text) {
		b.WriteString(styles.Normal.Render(text[last:]))
	}
	return b.String()
}

// matchRanges returns non-overlapping byte ranges of text equal to term ignoring case.
func matchRanges(text, term string) [][2]int {
	var out [][2]int
	for i := 0; i+len(term) <= len(text); {
		end := i + len(term)
		if utf8.RuneStart(text[i]) && (end == len(text) || utf8.RuneStart(text[end])) &&
			strings.EqualFold(text[i:end], term) {
			out = append(out, [2]int{i, end})
			i = end
			continue
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}
	return out
}

// Truncate shortens s to width terminal cells, adding an ellipsis if needed.
func Truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
