package models

import "fmt"

// Level is a proficiency rating on the 1-5 rubric.
type Level int

// MinLevel and MaxLevel bound the rubric.
const (
	MinLevel Level = 1
	MaxLevel Level = 5
)

// Levels lists every rubric level in ascending order.
var Levels = []Level{1, 2, 3, 4, 5}

// Valid reports whether the level is inside the rubric.
func (l Level) Valid() bool {
	return l >= MinLevel && l <= MaxLevel
}

// String renders the level the way the dashboard labels columns ("Level 3").
func (l Level) String() string {
	return fmt.Sprintf("Level %d", int(l))
}

// ProficiencyBand is one of the four coarse description bands.
type ProficiencyBand int

const (
	BandLow ProficiencyBand = iota
	BandMedium
	BandAverage
	BandHigh
)

// Bands lists the bands in display order.
var Bands = []ProficiencyBand{BandLow, BandMedium, BandAverage, BandHigh}

// Label returns the heading shown above a band description.
func (b ProficiencyBand) Label() string {
	switch b {
	case BandLow:
		return "Low Proficiency"
	case BandMedium:
		return "Medium Proficiency"
	case BandAverage:
		return "Average Proficiency"
	case BandHigh:
		return "High Proficiency"
	default:
		return "Unknown Proficiency"
	}
}

// Label names the level on the legend.
func (l Level) Label() string {
	switch l {
	case 1:
		return "Beginner"
	case 2:
		return "Basic"
	case 3:
		return "Intermediate"
	case 4:
		return "Advanced"
	case 5:
		return "Expert"
	default:
		return ""
	}
}

// Guidance describes what working at the level looks like day to day.
func (l Level) Guidance() string {
	switch l {
	case 1:
		return "Understands basic concepts, requires guidance for all tasks"
	case 2:
		return "Can perform routine tasks with some supervision"
	case 3:
		return "Works independently on most tasks, seeks help for complex issues"
	case 4:
		return "Solves complex problems, can mentor others, contributes to improvements"
	case 5:
		return "Recognized expert, develops new approaches, leads initiatives"
	default:
		return ""
	}
}

// Requirement is the generic expectation attached to each level.
func (l Level) Requirement() string {
	switch l {
	case 1:
		return "Basic understanding of concepts"
	case 2:
		return "Can apply with supervision"
	case 3:
		return "Can work independently"
	case 4:
		return "Can guide others"
	case 5:
		return "Expert level, can innovate"
	default:
		return ""
	}
}
