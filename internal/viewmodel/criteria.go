package viewmodel

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/asteroid-belt/skillmatrix/internal/models"
)

// SortOrder controls how FilteredCategories orders its result.
type SortOrder int

const (
	// SortSource keeps dataset order.
	SortSource SortOrder = iota
	// SortByName orders by case-folded category name.
	SortByName
)

// String returns a short label for the status bar.
func (o SortOrder) String() string {
	if o == SortByName {
		return "name"
	}
	return "source"
}

// noSelection marks an empty selection.
const noSelection = -1

// CriteriaModel derives the visible category list from a search term and
// tracks a single selection into that list.
type CriteriaModel struct {
	categories []models.SkillCategory
	searchTerm string
	selected   int
	order      SortOrder
}

// NewCriteriaModel creates a model over a private copy of categories.
func NewCriteriaModel(categories []models.SkillCategory) *CriteriaModel {
	return &CriteriaModel{
		categories: models.CloneCategories(categories),
		selected:   noSelection,
	}
}

// SetSearchTerm stores the raw term. A different term clears the selection
// because the stored index would point into a different list.
func (m *CriteriaModel) SetSearchTerm(term string) {
	if term == m.searchTerm {
		return
	}
	m.searchTerm = term
	m.selected = noSelection
}

// SearchTerm returns the term as typed.
func (m *CriteriaModel) SearchTerm() string {
	return m.searchTerm
}

// SetSort changes the order of FilteredCategories and clears the selection.
func (m *CriteriaModel) SetSort(order SortOrder) {
	if order == m.order {
		return
	}
	m.order = order
	m.selected = noSelection
}

// Sort returns the current order.
func (m *CriteriaModel) Sort() SortOrder {
	return m.order
}

// FilteredCategories returns the categories whose name, low description or any
// subcategory name contains the search term, ignoring case. The result is a
// subsequence of the dataset unless SortByName is active.
func (m *CriteriaModel) FilteredCategories() []models.SkillCategory {
	mt := newMatcher(m.searchTerm)

	out := make([]models.SkillCategory, 0, len(m.categories))
	for _, c := range m.categories {
		if mt.empty() || matchesCategory(mt, c) {
			out = append(out, c)
		}
	}

	if m.order == SortByName {
		sort.SliceStable(out, func(i, j int) bool {
			return fold(out[i].Name) < fold(out[j].Name)
		})
	}
	return out
}

func matchesCategory(mt matcher, c models.SkillCategory) bool {
	if mt.match(c.Name) || mt.match(c.LowDescription) {
		return true
	}
	for _, sub := range c.Subcategories {
		if sub.Name != "" && mt.match(sub.Name) {
			return true
		}
	}
	return false
}

// SelectCategory selects an index into the current filtered list.
// An out-of-range index leaves the selection unchanged.
func (m *CriteriaModel) SelectCategory(index int) error {
	n := len(m.FilteredCategories())
	if index < 0 || index >= n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, index, n)
	}
	m.selected = index
	return nil
}

// SelectByName selects the first visible category with the given name (case-insensitive).
func (m *CriteriaModel) SelectByName(name string) error {
	for i, c := range m.FilteredCategories() {
		if strings.EqualFold(c.Name, name) {
			m.selected = i
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

// SelectedCategory returns the selected category of the current filtered list.
// It reports false when nothing is selected or the list no longer reaches the index.
func (m *CriteriaModel) SelectedCategory() (models.SkillCategory, bool) {
	if m.selected == noSelection {
		return models.SkillCategory{}, false
	}
	filtered := m.FilteredCategories()
	if m.selected >= len(filtered) {
		return models.SkillCategory{}, false
	}
	return filtered[m.selected], true
}

// SelectedIndex returns the selected index, or -1.
func (m *CriteriaModel) SelectedIndex() int {
	return m.selected
}

// ClearSelection drops the selection.
func (m *CriteriaModel) ClearSelection() {
	m.selected = noSelection
}

// Categories returns a copy of the full, unfiltered list.
func (m *CriteriaModel) Categories() []models.SkillCategory {
	return models.CloneCategories(m.categories)
}

// Len returns the size of the unfiltered list.
func (m *CriteriaModel) Len() int {
	return len(m.categories)
}

// NewCategory is the input of the add-category form.
type NewCategory struct {
	Name               string
	LowDescription     string
	MediumDescription  string
	AverageDescription string
	HighDescription    string
}

// Form field keys used in ValidationErrors.
const (
	FieldName               = "category"
	FieldLowDescription     = "description"
	FieldMediumDescription  = "medium_description"
	FieldAverageDescription = "average_description"
	FieldHighDescription    = "high_description"
)

// ValidationErrors maps a form field to its message.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, v[k])
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the required fields of the form.
func (n NewCategory) Validate() ValidationErrors {
	errs := ValidationErrors{}
	required := []struct {
		field, value, msg string
	}{
		{FieldName, n.Name, "Category name is required"},
		{FieldLowDescription, n.LowDescription, "Low proficiency description is required"},
		{FieldMediumDescription, n.MediumDescription, "Medium proficiency description is required"},
		{FieldAverageDescription, n.AverageDescription, "Average proficiency description is required"},
		{FieldHighDescription, n.HighDescription, "High proficiency description is required"},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs[r.field] = r.msg
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// AddCategory appends a category to this model's in-memory list.
// Nothing is written back to the dataset.
func (m *CriteriaModel) AddCategory(n NewCategory) (models.SkillCategory, error) {
	if errs := n.Validate(); errs != nil {
		return models.SkillCategory{}, errs
	}

	name := strings.TrimSpace(n.Name)
	for _, c := range m.categories {
		if strings.EqualFold(c.Name, name) {
			return models.SkillCategory{}, ValidationErrors{
				FieldName: fmt.Sprintf("Category %q already exists", c.Name),
			}
		}
	}

	cat := models.SkillCategory{
		Name:               name,
		LowDescription:     strings.TrimSpace(n.LowDescription),
		MediumDescription:  strings.TrimSpace(n.MediumDescription),
		AverageDescription: strings.TrimSpace(n.AverageDescription),
		HighDescription:    strings.TrimSpace(n.HighDescription),
		LevelDescriptions:  map[models.Level]string{},
		Subcategories:      []models.Subcategory{},
	}
	prev, hadSelection := m.SelectedCategory()
	m.categories = append(m.categories, cat)
	if hadSelection && m.order == SortByName {
		// Name order may have shifted the selected entry.
		_ = m.SelectByName(prev.Name)
	}
	return cat.Clone(), nil
}
