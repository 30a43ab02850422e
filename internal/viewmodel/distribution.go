package viewmodel

import (
	"fmt"

	"github.com/asteroid-belt/skillmatrix/internal/models"
)

// LevelCount is one row of a team distribution.
type LevelCount struct {
	Level   models.Level
	Count   int
	Percent float64
}

// Distribution counts the team's session ratings for a category, from level 5
// down to level 1. Percentages are of the whole roster, so unrated employees
// make the column sum below 100.
func Distribution(team *TeamModel, category string) []LevelCount {
	total := len(team.employees)
	counts := make(map[models.Level]int, len(models.Levels))
	for _, e := range team.employees {
		if lvl := team.Rating(e.ID, category); lvl.Valid() {
			counts[lvl]++
		}
	}

	out := make([]LevelCount, 0, len(models.Levels))
	for lvl := models.MaxLevel; lvl >= models.MinLevel; lvl-- {
		row := LevelCount{Level: lvl, Count: counts[lvl]}
		if total > 0 {
			row.Percent = float64(row.Count) * 100 / float64(total)
		}
		out = append(out, row)
	}
	return out
}

// GapSummary describes where a distribution is strong and what is missing.
func GapSummary(category string, dist []LevelCount) string {
	var best LevelCount
	for _, row := range dist {
		if row.Count > best.Count {
			best = row
		}
	}
	if best.Count == 0 {
		return fmt.Sprintf("Nobody on the team is rated for %s yet.", category)
	}

	var top int
	for _, row := range dist {
		if row.Level == models.MaxLevel {
			top = row.Count
		}
	}
	if top == 0 {
		return fmt.Sprintf("The team is strongest at %s for %s, but could benefit from developing more expertise at %s.",
			best.Level, category, models.MaxLevel)
	}
	return fmt.Sprintf("The team is strongest at %s for %s and has %d member(s) at %s.",
		best.Level, category, top, models.MaxLevel)
}
