package viewmodel

import "strings"

// ColorToken is a semantic color name. The TUI theme maps tokens to concrete colors.
type ColorToken string

const (
	ColorDanger    ColorToken = "danger"
	ColorWarning   ColorToken = "warning"
	ColorInfo      ColorToken = "info"
	ColorPrimary   ColorToken = "primary"
	ColorSuccess   ColorToken = "success"
	ColorSecondary ColorToken = "secondary"
)

// BadgeColorForLevel maps a rubric level to its badge color.
// Anything outside 1..5 is secondary.
func BadgeColorForLevel(level int) ColorToken {
	switch level {
	case 1:
		return ColorDanger
	case 2:
		return ColorWarning
	case 3:
		return ColorInfo
	case 4:
		return ColorPrimary
	case 5:
		return ColorSuccess
	default:
		return ColorSecondary
	}
}

// RiskColor maps a free-text roster value (risk, value, potential) to a color
// by keyword. Checks run in order, so "low risk" is a warning, not a danger.
func RiskColor(value string) ColorToken {
	v := strings.ToLower(strings.TrimSpace(value))
	switch {
	case v == "":
		return ColorSecondary
	case strings.Contains(v, "high"), strings.Contains(v, "excellent"):
		return ColorSuccess
	case strings.Contains(v, "medium"), strings.Contains(v, "good"):
		return ColorPrimary
	case strings.Contains(v, "low"), strings.Contains(v, "poor"):
		return ColorWarning
	case strings.Contains(v, "risk"), strings.Contains(v, "critical"):
		return ColorDanger
	default:
		return ColorInfo
	}
}
