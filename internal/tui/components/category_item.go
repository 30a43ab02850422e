package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/asteroid-belt/skillmatrix/internal/models"
	"github.com/asteroid-belt/skillmatrix/internal/tui/theme"
	"github.com/asteroid-belt/skillmatrix/internal/viewmodel"
)

// CategoryItemState describes how a list row is drawn.
type CategoryItemState int

const (
	ItemNormal CategoryItemState = iota
	// ItemCursor is the row under the keyboard cursor
	ItemCursor
	// ItemSelected is the row shown in the detail pane
	ItemSelected
)

// RenderCategoryItem renders one row of the category list with search matches
// highlighted and a subcategory count badge.
func RenderCategoryItem(cat models.SkillCategory, term string, width int, state CategoryItemState) string {
	marker := "  "
	styles := DefaultHighlightStyles()

	switch state {
	case ItemCursor:
		marker = lipgloss.NewStyle().Foreground(theme.Current.Accent).Render("▸ ")
		styles.Normal = styles.Normal.Foreground(theme.Current.TextHighlight).Bold(true)
	case ItemSelected:
		marker = lipgloss.NewStyle().Foreground(theme.Current.Primary).Render("● ")
		styles.Normal = styles.Normal.Foreground(theme.Current.Primary).Bold(true)
	}

	badge := ""
	badgeWidth := 0
	if n := len(cat.Subcategories); n > 0 {
		badge = " " + Badge(fmt.Sprint(n), viewmodel.ColorInfo)
		badgeWidth = lipgloss.Width(badge)
	}

	name := Highlight(cat.Name, term, width-2-badgeWidth, styles)
	return marker + name + badge
}
