package models

import (
	"fmt"
	"time"
)

// PathStep is one category goal on a role's development path.
type PathStep struct {
	Category     string `json:"category"`
	CurrentLevel Level  `json:"current_level"`
	TargetLevel  Level  `json:"target_level"`
}

// Gap returns how many levels separate the current and target level.
func (s PathStep) Gap() int {
	if s.TargetLevel <= s.CurrentLevel {
		return 0
	}
	return int(s.TargetLevel - s.CurrentLevel)
}

// PlanItem is one entry of a custom development plan.
type PlanItem struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Level       Level  `json:"level"`
	Description string `json:"description"`
}

// NewPlanItem builds the item for reaching a category at a level.
func NewPlanItem(id, category string, level Level) PlanItem {
	return PlanItem{
		ID:          id,
		Category:    category,
		Level:       level,
		Description: fmt.Sprintf("Achieve %s at %s", category, level),
	}
}

// Focus is the short hint displayed under a plan item.
func (p PlanItem) Focus() string {
	return fmt.Sprintf("Focus on reaching %s %s", p.Category, p.Level)
}

// Plan is a session-scoped development plan. It is never written to disk.
type Plan struct {
	Role    string     `json:"role,omitempty"`
	Items   []PlanItem `json:"items"`
	SavedAt *time.Time `json:"saved_at,omitempty"`
}

// Progress returns the current level as a whole percentage of the target.
func (s PathStep) Progress() int {
	if s.TargetLevel <= 0 {
		return 0
	}
	p := int(s.CurrentLevel) * 100 / int(s.TargetLevel)
	return min(p, 100)
}

// NextLevel is the level to focus on next, or the target when reached.
func (s PathStep) NextLevel() Level {
	if s.CurrentLevel >= s.TargetLevel {
		return s.TargetLevel
	}
	return s.CurrentLevel + 1
}
