package components

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/asteroid-belt/skillmatrix/internal/tui/theme"
	"github.com/asteroid-belt/skillmatrix/internal/viewmodel"
)

// CategoryGroup builds the add-category fields bound to n. Each field is
// checked with the same rules AddCategory applies.
func CategoryGroup(n *viewmodel.NewCategory) *huh.Group {
	check := func(field string) func(string) error {
		return func(string) error {
			if msg, ok := n.Validate()[field]; ok {
				return errors.New(msg)
			}
			return nil
		}
	}

	return huh.NewGroup(
		huh.NewInput().
			Title("Category name").
			Placeholder("e.g. Security").
			Value(&n.Name).
			Validate(check(viewmodel.FieldName)),
		huh.NewInput().
			Title("Low proficiency").
			Value(&n.LowDescription).
			Validate(check(viewmodel.FieldLowDescription)),
		huh.NewInput().
			Title("Medium proficiency").
			Value(&n.MediumDescription).
			Validate(check(viewmodel.FieldMediumDescription)),
		huh.NewInput().
			Title("Average proficiency").
			Value(&n.AverageDescription).
			Validate(check(viewmodel.FieldAverageDescription)),
		huh.NewInput().
			Title("High proficiency").
			Value(&n.HighDescription).
			Validate(check(viewmodel.FieldHighDescription)),
	).Title("Add Skill Category").
		Description("Added for this session only")
}

// CategoryForm is the add-category overlay of the criteria screen.
type CategoryForm struct {
	form  *huh.Form
	input *viewmodel.NewCategory
}

// NewCategoryForm creates an empty form. Esc cancels.
func NewCategoryForm() *CategoryForm {
	input := &viewmodel.NewCategory{}

	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel"))

	form := huh.NewForm(CategoryGroup(input)).
		WithKeyMap(km).
		WithWidth(60).
		WithShowHelp(true)

	return &CategoryForm{form: form, input: input}
}

// Init starts the form (focus and cursor blink).
func (f *CategoryForm) Init() tea.Cmd {
	return f.form.Init()
}

// Update forwards a message to the form.
func (f *CategoryForm) Update(msg tea.Msg) tea.Cmd {
	m, cmd := f.form.Update(msg)
	if form, ok := m.(*huh.Form); ok {
		f.form = form
	}
	return cmd
}

// Completed reports whether every field was submitted.
func (f *CategoryForm) Completed() bool {
	return f.form.State == huh.StateCompleted
}

// Aborted reports whether the user cancelled.
func (f *CategoryForm) Aborted() bool {
	return f.form.State == huh.StateAborted
}

// Value returns the entered category.
func (f *CategoryForm) Value() viewmodel.NewCategory {
	return *f.input
}

// CenteredView renders the form in a bordered box centered on the screen.
func (f *CategoryForm) CenteredView(width, height int) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Current.Accent).
		Padding(1, 2).
		Render(f.form.View())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
