package viewmodel

import "github.com/asteroid-belt/skillmatrix/internal/models"

// MatrixRow is one line of the flat skill matrix. Category rows leave
// Subcategory empty; subcategory rows leave Category empty.
type MatrixRow struct {
	Category    string
	Subcategory string
	Description string
}

// IsCategory reports whether the row starts a category block.
func (r MatrixRow) IsCategory() bool {
	return r.Category != ""
}

// MatrixRows flattens categories and their subcategories with the low-band text.
func MatrixRows(categories []models.SkillCategory) []MatrixRow {
	var rows []MatrixRow
	for _, c := range categories {
		rows = append(rows, MatrixRow{
			Category:    c.Name,
			Description: c.Description(models.BandLow),
		})
		for _, sub := range c.Subcategories {
			rows = append(rows, MatrixRow{
				Subcategory: sub.Name,
				Description: sub.Description(models.BandLow),
			})
		}
	}
	return rows
}
