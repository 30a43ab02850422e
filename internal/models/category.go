// Package models defines the core data structures for the skill matrix.
package models

import (
	"fmt"
	"strings"
)

// NoDescription is shown wherever an optional description is missing.
const NoDescription = "No description available"

// SkillCategory is a top-level skill grouping with its proficiency rubric.
type SkillCategory struct {
	Name               string           `json:"category"`
	LowDescription     string           `json:"description,omitempty"`
	MediumDescription  string           `json:"medium_description,omitempty"`
	AverageDescription string           `json:"average_description,omitempty"`
	HighDescription    string           `json:"high_description,omitempty"`
	LevelDescriptions  map[Level]string `json:"level_descriptions,omitempty"`
	Subcategories      []Subcategory    `json:"subcategories,omitempty"`
}

// Subcategory is a named skill inside a category.
type Subcategory struct {
	Name               string   `json:"name"`
	LowDescription     string   `json:"description,omitempty"`
	MediumDescription  string   `json:"medium_description,omitempty"`
	AverageDescription string   `json:"average_description,omitempty"`
	HighDescription    string   `json:"high_description,omitempty"`
	Skills             []string `json:"skills,omitempty"`
}

// Description returns the band text, or NoDescription when it is blank.
func (c SkillCategory) Description(band ProficiencyBand) string {
	return bandText(band, c.LowDescription, c.MediumDescription, c.AverageDescription, c.HighDescription)
}

// LevelDescription returns the rubric text for a level.
// Levels without text fall back to a generic label.
func (c SkillCategory) LevelDescription(level Level) string {
	if text := strings.TrimSpace(c.LevelDescriptions[level]); text != "" {
		return text
	}
	return fmt.Sprintf("Standard level %d proficiency", int(level))
}

// HasSubcategory reports whether a subcategory with the given name exists.
func (c SkillCategory) HasSubcategory(name string) bool {
	for _, sub := range c.Subcategories {
		if sub.Name == name {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so screens never share mutable state.
func (c SkillCategory) Clone() SkillCategory {
	out := c
	if c.LevelDescriptions != nil {
		out.LevelDescriptions = make(map[Level]string, len(c.LevelDescriptions))
		for k, v := range c.LevelDescriptions {
			out.LevelDescriptions[k] = v
		}
	}
	if c.Subcategories != nil {
		out.Subcategories = make([]Subcategory, len(c.Subcategories))
		for i, sub := range c.Subcategories {
			out.Subcategories[i] = sub
			out.Subcategories[i].Skills = append([]string(nil), sub.Skills...)
		}
	}
	return out
}

// Description returns the band text, or NoDescription when it is blank.
func (s Subcategory) Description(band ProficiencyBand) string {
	return bandText(band, s.LowDescription, s.MediumDescription, s.AverageDescription, s.HighDescription)
}

func bandText(band ProficiencyBand, low, medium, average, high string) string {
	var text string
	switch band {
	case BandLow:
		text = low
	case BandMedium:
		text = medium
	case BandAverage:
		text = average
	case BandHigh:
		text = high
	}
	if strings.TrimSpace(text) == "" {
		return NoDescription
	}
	return text
}

// CloneCategories deep-copies a category slice.
func CloneCategories(in []SkillCategory) []SkillCategory {
	if in == nil {
		return nil
	}
	out := make([]SkillCategory, len(in))
	for i, c := range in {
		out[i] = c.Clone()
	}
	return out
}
