// Package prompts provides interactive CLI prompt components using charmbracelet/huh.
package prompts

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/asteroid-belt/skillmatrix/internal/models"
	"github.com/asteroid-belt/skillmatrix/internal/tui/components"
	"github.com/asteroid-belt/skillmatrix/internal/viewmodel"
)

// PlanSelection is what the plan builder collects.
type PlanSelection struct {
	Role       string
	Categories []string
	Levels     []models.Level
}

// BuildRoleOptions creates huh options for development roles.
func BuildRoleOptions(roles []string) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(roles))
	for _, r := range roles {
		label := fmt.Sprintf("%s (%d steps)", r, len(viewmodel.DevelopmentPaths[r]))
		options = append(options, huh.NewOption(label, r))
	}
	return options
}

// BuildCategoryOptions creates huh options from categories.
func BuildCategoryOptions(categories []models.SkillCategory) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(categories))
	for _, c := range categories {
		label := c.Name
		if n := len(c.Subcategories); n > 0 {
			label = fmt.Sprintf("%s (%d subcategories)", c.Name, n)
		}
		options = append(options, huh.NewOption(label, c.Name))
	}
	return options
}

// BuildLevelOptions creates huh options for the five levels.
func BuildLevelOptions() []huh.Option[int] {
	options := make([]huh.Option[int], 0, len(models.Levels))
	for _, l := range models.Levels {
		options = append(options, huh.NewOption(fmt.Sprintf("%s %s - %s", l, l.Label(), l.Requirement()), int(l)))
	}
	return options
}

// ParseLevels converts ints to levels. Values outside the rubric are ignored.
func ParseLevels(values []int) []models.Level {
	levels := make([]models.Level, 0, len(values))
	for _, v := range values {
		if l := models.Level(v); l.Valid() {
			levels = append(levels, l)
		}
	}
	return levels
}

// RunPlanBuilder asks for a role, categories and target levels.
// Values in pre are preselected.
func RunPlanBuilder(roles []string, categories []models.SkillCategory, pre PlanSelection, accessible bool) (PlanSelection, error) {
	// Initialize bound values BEFORE creating the form
	role := pre.Role
	selectedCats := append([]string(nil), pre.Categories...)
	selectedLevels := make([]int, 0, len(pre.Levels))
	for _, l := range pre.Levels {
		selectedLevels = append(selectedLevels, int(l))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select a role").
				Description("Its development path is printed with the plan").
				Options(BuildRoleOptions(roles)...).
				Value(&role),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Select categories for the plan").
				Description("Space to toggle, Enter to confirm").
				Options(BuildCategoryOptions(categories)...).
				Value(&selectedCats),
			huh.NewMultiSelect[int]().
				Title("Select target levels").
				Description("Every category gets a goal per level").
				Options(BuildLevelOptions()...).
				Value(&selectedLevels),
		),
	).WithAccessible(accessible)

	if err := form.Run(); err != nil {
		return PlanSelection{}, err
	}

	return PlanSelection{
		Role:       role,
		Categories: selectedCats,
		Levels:     ParseLevels(selectedLevels),
	}, nil
}

// RunCategoryForm asks for a new category with the same fields and
// validation as the TUI form.
func RunCategoryForm(accessible bool) (viewmodel.NewCategory, error) {
	var n viewmodel.NewCategory
	form := huh.NewForm(components.CategoryGroup(&n)).WithAccessible(accessible)
	if err := form.Run(); err != nil {
		return viewmodel.NewCategory{}, err
	}
	return n, nil
}
