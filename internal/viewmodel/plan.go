package viewmodel

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/asteroid-belt/skillmatrix/internal/models"
)

// SDLC is the category name the bundled data uses for the life cycle rubric.
const SDLC = "Software Development Life Cycle (SDLC)"

// DevelopmentPaths is the fixed role → path table.
var DevelopmentPaths = map[string][]models.PathStep{
	"Junior Developer": {
		{Category: SDLC, CurrentLevel: 1, TargetLevel: 3},
		{Category: "Programming Languages", CurrentLevel: 2, TargetLevel: 4},
		{Category: "Testing", CurrentLevel: 1, TargetLevel: 3},
	},
	"Senior Developer": {
		{Category: SDLC, CurrentLevel: 3, TargetLevel: 5},
		{Category: "Programming Languages", CurrentLevel: 4, TargetLevel: 5},
		{Category: "System Design", CurrentLevel: 3, TargetLevel: 5},
		{Category: "Leadership", CurrentLevel: 2, TargetLevel: 4},
	},
	"Product Developer": {
		{Category: SDLC, CurrentLevel: 3, TargetLevel: 4},
		{Category: "Product Management", CurrentLevel: 3, TargetLevel: 5},
		{Category: "User Experience", CurrentLevel: 2, TargetLevel: 4},
	},
}

// DefaultRole is selected when a plan screen opens.
const DefaultRole = "Junior Developer"

// PlanModel is the development-plan screen: a role path plus a custom
// category × level grid. Plans are kept in memory only.
type PlanModel struct {
	categories []string
	role       string

	rows    []string
	columns []models.Level
	items   map[string]string // "category|level" -> stable item ID

	saved *models.Plan
	now   func() time.Time
	newID func() string
}

// NewPlanModel creates a plan model over the dataset's category names.
func NewPlanModel(categories []models.SkillCategory) *PlanModel {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}
	return &PlanModel{
		categories: names,
		role:       DefaultRole,
		items:      map[string]string{},
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// Roles returns the roles with a development path, sorted.
func (m *PlanModel) Roles() []string {
	roles := make([]string, 0, len(DevelopmentPaths))
	for r := range DevelopmentPaths {
		roles = append(roles, r)
	}
	slices.Sort(roles)
	return roles
}

// SelectRole switches the displayed path. Matching ignores case.
func (m *PlanModel) SelectRole(role string) error {
	for r := range DevelopmentPaths {
		if strings.EqualFold(r, role) {
			m.role = r
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownRole, role)
}

// Role returns the selected role.
func (m *PlanModel) Role() string {
	return m.role
}

// Path returns a copy of the selected role's steps.
func (m *PlanModel) Path() []models.PathStep {
	return slices.Clone(DevelopmentPaths[m.role])
}

// AddRow adds a category to the custom plan.
func (m *PlanModel) AddRow(category string) error {
	if !slices.Contains(m.categories, category) {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	if !slices.Contains(m.rows, category) {
		m.rows = append(m.rows, category)
	}
	return nil
}

// AddColumn adds a target level to the custom plan.
func (m *PlanModel) AddColumn(level models.Level) error {
	if !level.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidLevel, int(level))
	}
	if !slices.Contains(m.columns, level) {
		m.columns = append(m.columns, level)
	}
	return nil
}

// RemoveRow drops a category from the custom plan. Unknown rows are ignored.
func (m *PlanModel) RemoveRow(category string) {
	m.rows = slices.DeleteFunc(m.rows, func(r string) bool { return r == category })
}

// RemoveColumn drops a level from the custom plan. Unknown columns are ignored.
func (m *PlanModel) RemoveColumn(level models.Level) {
	m.columns = slices.DeleteFunc(m.columns, func(l models.Level) bool { return l == level })
}

// Rows returns the custom plan's categories in insertion order.
func (m *PlanModel) Rows() []string {
	return slices.Clone(m.rows)
}

// Columns returns the custom plan's levels in insertion order.
func (m *PlanModel) Columns() []models.Level {
	return slices.Clone(m.columns)
}

// CustomPlan returns rows × columns in insertion order. An item keeps its ID
// for as long as its row and column stay in the plan.
func (m *PlanModel) CustomPlan() []models.PlanItem {
	out := make([]models.PlanItem, 0, len(m.rows)*len(m.columns))
	for _, cat := range m.rows {
		for _, lvl := range m.columns {
			key := fmt.Sprintf("%s|%d", cat, lvl)
			id, ok := m.items[key]
			if !ok {
				id = m.newID()
				m.items[key] = id
			}
			out = append(out, models.NewPlanItem(id, cat, lvl))
		}
	}
	return out
}

// Reset empties the custom plan and forgets the last save.
func (m *PlanModel) Reset() {
	m.rows = nil
	m.columns = nil
	m.items = map[string]string{}
	m.saved = nil
}

// Save snapshots the plan in memory and returns it. Nothing is written to disk.
func (m *PlanModel) Save() models.Plan {
	at := m.now()
	plan := models.Plan{
		Role:    m.role,
		Items:   m.CustomPlan(),
		SavedAt: &at,
	}
	m.saved = &plan
	return plan
}

// Saved returns the last saved plan.
func (m *PlanModel) Saved() (models.Plan, bool) {
	if m.saved == nil {
		return models.Plan{}, false
	}
	return *m.saved, true
}
