// Package viewmodel holds the screen state behind the skill matrix: search,
// filtering, selection and the session-only edits each screen allows.
//
// Every model copies the data it is constructed with. Two screens never share
// state, and nothing here performs I/O.
package viewmodel

import (
	"errors"
	"strings"

	"golang.org/x/text/cases"
)

var (
	// ErrIndexOutOfRange is returned when a selection index is outside the filtered list.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrEmployeeNotFound is returned when an employee ID is not in the roster.
	ErrEmployeeNotFound = errors.New("employee not found")
	// ErrUnknownCategory is returned when a category name is not in the dataset.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrUnknownRole is returned for a role without a development path.
	ErrUnknownRole = errors.New("unknown role")
	// ErrInvalidLevel is returned for a level outside 1..5.
	ErrInvalidLevel = errors.New("invalid level")
	// ErrNotEditing is returned when ratings change outside edit mode.
	ErrNotEditing = errors.New("not in edit mode")
	// ErrNoSelection is returned when an action needs a selected item.
	ErrNoSelection = errors.New("nothing selected")
)

// matcher performs case-insensitive substring matching with full Unicode case folding.
type matcher struct {
	term string
}

func newMatcher(term string) matcher {
	return matcher{term: fold(term)}
}

func (m matcher) empty() bool {
	return m.term == ""
}

func (m matcher) match(s string) bool {
	return strings.Contains(fold(s), m.term)
}

func fold(s string) string {
	return cases.Fold().String(s)
}
