package viewmodel

import (
	"fmt"

	"github.com/asteroid-belt/skillmatrix/internal/models"
)

// DefaultCompetencyLevel is the starting rating for a category the employee lists.
const DefaultCompetencyLevel models.Level = 3

const (
	// RecommendBelow is the rating under which a category is worth improving.
	RecommendBelow models.Level = 3
	// MaxRecommendations caps the list shown per employee.
	MaxRecommendations = 3
)

// TeamModel is the roster screen: search, single selection and session ratings.
type TeamModel struct {
	employees  []models.Employee
	categories []string

	searchTerm string
	selectedID string
	editing    bool

	// employee ID -> category -> level; populated lazily from defaults
	ratings map[string]map[string]models.Level
}

// NewTeamModel creates a model over private copies of the roster and category names.
func NewTeamModel(employees []models.Employee, categories []models.SkillCategory) *TeamModel {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}
	return &TeamModel{
		employees:  models.CloneEmployees(employees),
		categories: names,
		ratings:    map[string]map[string]models.Level{},
	}
}

// SetSearchTerm filters the roster by ID or position.
func (m *TeamModel) SetSearchTerm(term string) {
	m.searchTerm = term
}

// SearchTerm returns the term as typed.
func (m *TeamModel) SearchTerm() string {
	return m.searchTerm
}

// FilteredEmployees returns employees whose ID or position contains the term.
func (m *TeamModel) FilteredEmployees() []models.Employee {
	mt := newMatcher(m.searchTerm)
	out := make([]models.Employee, 0, len(m.employees))
	for _, e := range m.employees {
		if mt.empty() || mt.match(e.ID) || mt.match(e.Position) {
			out = append(out, e)
		}
	}
	return out
}

// Employees returns a copy of the full roster.
func (m *TeamModel) Employees() []models.Employee {
	return models.CloneEmployees(m.employees)
}

// CategoryNames returns the rated categories in dataset order.
func (m *TeamModel) CategoryNames() []string {
	return append([]string(nil), m.categories...)
}

// SelectEmployee selects by ID and leaves edit mode.
func (m *TeamModel) SelectEmployee(id string) error {
	if _, err := LookupEmployee(m.employees, id); err != nil {
		return err
	}
	m.selectedID = id
	m.editing = false
	return nil
}

// SelectedEmployee returns the selected employee, if any.
func (m *TeamModel) SelectedEmployee() (models.Employee, bool) {
	if m.selectedID == "" {
		return models.Employee{}, false
	}
	e, err := LookupEmployee(m.employees, m.selectedID)
	if err != nil {
		return models.Employee{}, false
	}
	return e, true
}

// SetEditMode toggles rating edits for the selected employee.
func (m *TeamModel) SetEditMode(on bool) error {
	if on && m.selectedID == "" {
		return ErrNoSelection
	}
	m.editing = on
	return nil
}

// Editing reports whether ratings can change.
func (m *TeamModel) Editing() bool {
	return m.editing
}

// Rating returns the session rating of a category for an employee.
// Zero means unrated.
func (m *TeamModel) Rating(id, category string) models.Level {
	if lvl, ok := m.ratings[id][category]; ok {
		return lvl
	}
	for _, e := range m.employees {
		if e.ID == id {
			if e.HasCompetency(category) {
				return DefaultCompetencyLevel
			}
			return 0
		}
	}
	return 0
}

// SetRating changes a rating of the selected employee. Only allowed in edit mode.
func (m *TeamModel) SetRating(category string, level models.Level) error {
	if !m.editing {
		return ErrNotEditing
	}
	if !level.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidLevel, int(level))
	}
	if !m.knownCategory(category) {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	if m.ratings[m.selectedID] == nil {
		m.ratings[m.selectedID] = map[string]models.Level{}
	}
	m.ratings[m.selectedID][category] = level
	return nil
}

// AdjustRating moves a rating by delta, clamped to the rubric.
// An unrated category starts from the bottom of the rubric.
func (m *TeamModel) AdjustRating(category string, delta int) (models.Level, error) {
	cur := m.Rating(m.selectedID, category)
	next := cur + models.Level(delta)
	if cur == 0 {
		next = models.MinLevel
	}
	next = min(max(next, models.MinLevel), models.MaxLevel)
	if err := m.SetRating(category, next); err != nil {
		return cur, err
	}
	return next, nil
}

// Recommendations lists up to MaxRecommendations rated categories below
// RecommendBelow, in dataset order, each targeting the next level.
// Unrated categories are skipped.
func (m *TeamModel) Recommendations(id string) []models.PathStep {
	var steps []models.PathStep
	for _, cat := range m.categories {
		lvl := m.Rating(id, cat)
		if lvl == 0 || lvl >= RecommendBelow {
			continue
		}
		steps = append(steps, models.PathStep{Category: cat, CurrentLevel: lvl, TargetLevel: lvl + 1})
		if len(steps) == MaxRecommendations {
			break
		}
	}
	return steps
}

// SaveRatings leaves edit mode. Ratings live for the session only.
func (m *TeamModel) SaveRatings() {
	m.editing = false
}

func (m *TeamModel) knownCategory(name string) bool {
	for _, c := range m.categories {
		if c == name {
			return true
		}
	}
	return false
}
