package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// maxCellWidth caps free-text columns so rows stay on one line.
const maxCellWidth = 60

// padRight pads s with spaces to the display width w.
func padRight(s string, w int) string {
	if gap := w - runewidth.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// truncateCell shortens s to maxCellWidth display columns.
func truncateCell(s string) string {
	return runewidth.Truncate(strings.Join(strings.Fields(s), " "), maxCellWidth, "…")
}

// writeTable prints an aligned table. paint, when set, decorates a padded
// cell after alignment so escape codes do not skew the widths.
func writeTable(w io.Writer, header []string, rows [][]string, paint func(row, col int, padded string) string) {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, r := range rows {
		for i, c := range r {
			widths[i] = max(widths[i], runewidth.StringWidth(c))
		}
	}

	line := func(cells []string, row int) string {
		out := make([]string, len(cells))
		for i, c := range cells {
			padded := c
			if i < len(cells)-1 {
				padded = padRight(c, widths[i])
			}
			if paint != nil && row >= 0 {
				padded = paint(row, i, padded)
			}
			out[i] = padded
		}
		return strings.TrimRight(strings.Join(out, "  "), " ")
	}

	_, _ = fmt.Fprintln(w, line(header, -1))
	total := 0
	for _, wd := range widths {
		total += wd
	}
	_, _ = fmt.Fprintln(w, strings.Repeat("─", total+2*(len(widths)-1)))
	for i, r := range rows {
		_, _ = fmt.Fprintln(w, line(r, i))
	}
}
