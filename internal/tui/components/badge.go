package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/asteroid-belt/skillmatrix/internal/models"
	"github.com/asteroid-belt/skillmatrix/internal/tui/theme"
	"github.com/asteroid-belt/skillmatrix/internal/viewmodel"
)

// Badge renders a pill with the token's background color.
func Badge(label string, token viewmodel.ColorToken) string {
	return lipgloss.NewStyle().
		Foreground(theme.Current.BadgeText).
		Background(theme.TokenColor(token)).
		Bold(true).
		Padding(0, 1).
		Render(label)
}

// LevelBadge renders "Level N" in the level's badge color.
func LevelBadge(level int) string {
	return Badge(fmt.Sprintf("Level %d", level), viewmodel.BadgeColorForLevel(level))
}

// TextBadge colors free-text roster values (risk, value, potential) by keyword.
// Empty values render as a muted placeholder.
func TextBadge(value string) string {
	if value == "" {
		return lipgloss.NewStyle().Foreground(theme.Current.TextMuted).Render("Not specified")
	}
	return Badge(value, viewmodel.RiskColor(value))
}

// RatingBar renders a five-cell bar for a rating, colored by level, with its legend label.
// Zero renders as unrated.
func RatingBar(level int) string {
	if level <= 0 {
		return lipgloss.NewStyle().Foreground(theme.Current.TextMuted).Render("·····  unrated")
	}
	filled := lipgloss.NewStyle().Foreground(theme.TokenColor(viewmodel.BadgeColorForLevel(level)))
	empty := lipgloss.NewStyle().Foreground(theme.Current.Overlay)

	var bar string
	for i := 1; i <= 5; i++ {
		if i <= level {
			bar += filled.Render("■")
		} else {
			bar += empty.Render("■")
		}
	}
	return fmt.Sprintf("%s  %d/5 %s", bar, level, models.Level(level).Label())
}
