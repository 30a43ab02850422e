package models

// Employee is one roster entry from the team overview sheet.
type Employee struct {
	ID         string `json:"id"`
	Position   string `json:"position,omitempty"`
	RiskLevel  string `json:"risk,omitempty"`
	Value      string `json:"value,omitempty"`
	Potential  string `json:"potential,omitempty"`
	SalaryPlan string `json:"salary_increase_plan,omitempty"`
	Comment    string `json:"free_comment,omitempty"`

	// Competencies maps a category name to the subcategories the employee covers.
	Competencies map[string][]string `json:"competencies,omitempty"`
}

// HasCompetency reports whether the employee lists the category.
func (e Employee) HasCompetency(category string) bool {
	_, ok := e.Competencies[category]
	return ok
}

// Clone returns a deep copy of the employee.
func (e Employee) Clone() Employee {
	out := e
	if e.Competencies != nil {
		out.Competencies = make(map[string][]string, len(e.Competencies))
		for k, v := range e.Competencies {
			out.Competencies[k] = append([]string(nil), v...)
		}
	}
	return out
}

// CloneEmployees deep-copies an employee slice.
func CloneEmployees(in []Employee) []Employee {
	if in == nil {
		return nil
	}
	out := make([]Employee, len(in))
	for i, e := range in {
		out[i] = e.Clone()
	}
	return out
}
