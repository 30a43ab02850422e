package viewmodel

import (
	"errors"
	"fmt"

	"github.com/asteroid-belt/skillmatrix/internal/dataset"
	"github.com/asteroid-belt/skillmatrix/internal/models"
)

// User-facing messages for the terminal states of the profile screen.
const (
	MsgEmployeeNotFound = "Employee not found."
	MsgLoadFailed       = "Failed to load employee data."
)

// LookupEmployee finds an employee by exact ID.
func LookupEmployee(employees []models.Employee, id string) (models.Employee, error) {
	for _, e := range employees {
		if e.ID == id {
			return e.Clone(), nil
		}
	}
	return models.Employee{}, fmt.Errorf("%w: %q", ErrEmployeeNotFound, id)
}

// CompetencyDetail is one subcategory an employee lists, with the rubric text.
type CompetencyDetail struct {
	Name  string
	Bands map[models.ProficiencyBand]string
}

// CompetencyGroup is one category of an employee profile.
type CompetencyGroup struct {
	Category      string
	Subcategories []CompetencyDetail
}

// Profile is the employee detail screen.
type Profile struct {
	Employee models.Employee
	Groups   []CompetencyGroup
}

// NewProfile builds the profile of id from a loaded dataset. Categories follow
// dataset order; competencies naming an unknown subcategory get placeholder text.
func NewProfile(ds *dataset.Dataset, id string) (*Profile, error) {
	emp, err := LookupEmployee(ds.Employees, id)
	if err != nil {
		return nil, err
	}

	p := &Profile{Employee: emp}
	for _, cat := range ds.Categories {
		subs, ok := emp.Competencies[cat.Name]
		if !ok {
			continue
		}
		group := CompetencyGroup{Category: cat.Name}
		for _, name := range subs {
			group.Subcategories = append(group.Subcategories, CompetencyDetail{
				Name:  name,
				Bands: subcategoryBands(cat, name),
			})
		}
		p.Groups = append(p.Groups, group)
	}
	return p, nil
}

func subcategoryBands(cat models.SkillCategory, name string) map[models.ProficiencyBand]string {
	var sub models.Subcategory
	for _, s := range cat.Subcategories {
		if s.Name == name {
			sub = s
			break
		}
	}
	bands := make(map[models.ProficiencyBand]string, len(models.Bands))
	for _, b := range models.Bands {
		bands[b] = sub.Description(b)
	}
	return bands
}

// ProfileMessage returns the user-visible message for a profile error.
// Both states are terminal for the screen.
func ProfileMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmployeeNotFound):
		return MsgEmployeeNotFound
	default:
		return MsgLoadFailed
	}
}
