package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/asteroid-belt/skillmatrix/internal/dataset"
	"github.com/asteroid-belt/skillmatrix/internal/export"
	"github.com/asteroid-belt/skillmatrix/internal/log"
	"github.com/asteroid-belt/skillmatrix/internal/models"
	"github.com/asteroid-belt/skillmatrix/internal/tui/components"
	"github.com/asteroid-belt/skillmatrix/internal/tui/theme"
	"github.com/asteroid-belt/skillmatrix/internal/viewmodel"
)

// CriteriaView is the category browser: search bar, list and detail pane.
type CriteriaView struct {
	vm        *viewmodel.CriteriaModel
	searchBar *components.SearchBar
	detail    viewport.Model

	cursor int
	status string

	width  int
	height int
}

// NewCriteriaView creates an unmounted criteria view.
func NewCriteriaView() *CriteriaView {
	return &CriteriaView{
		vm:        viewmodel.NewCriteriaModel(nil),
		searchBar: components.NewSearchBar("Search categories, descriptions, subcategories..."),
		detail:    viewport.New(0, 0),
	}
}

// Init mounts the view with a fresh view-model over the dataset.
func (cv *CriteriaView) Init(ds *dataset.Dataset) {
	cv.vm = viewmodel.NewCriteriaModel(ds.Categories)
	cv.searchBar.Clear()
	cv.searchBar.Blur()
	cv.cursor = 0
	cv.status = ""
	cv.refreshDetail()
}

// Model exposes the view-model.
func (cv *CriteriaView) Model() *viewmodel.CriteriaModel {
	return cv.vm
}

// SetSize sets the width and height of the view.
func (cv *CriteriaView) SetSize(width, height int) {
	cv.width = width
	cv.height = height
	cv.searchBar.SetWidth(cv.listWidth())
	cv.detail.Width = max(cv.detailWidth()-4, 10)
	cv.detail.Height = max(height-2, 3)
	cv.refreshDetail()
}

func (cv *CriteriaView) listWidth() int {
	return max(cv.width/3, 24)
}

func (cv *CriteriaView) detailWidth() int {
	return max(cv.width-cv.listWidth()-1, 20)
}

// CapturesInput reports whether keys go to the search bar.
func (cv *CriteriaView) CapturesInput() bool {
	return cv.searchBar.Focused()
}

// Update handles key input.
func (cv *CriteriaView) Update(msg tea.KeyMsg) tea.Cmd {
	if cv.searchBar.Focused() {
		switch msg.String() {
		case "esc", "enter", "down":
			cv.searchBar.Blur()
			return nil
		}
		cmd := cv.searchBar.HandleKey(msg)
		cv.applySearch()
		return cmd
	}

	switch msg.String() {
	case "/":
		cv.status = ""
		return cv.searchBar.Focus()
	case "up", "k":
		cv.cursor = clampCursor(cv.cursor-1, len(cv.vm.FilteredCategories()))
	case "down", "j":
		cv.cursor = clampCursor(cv.cursor+1, len(cv.vm.FilteredCategories()))
	case "enter":
		if err := cv.vm.SelectCategory(cv.cursor); err != nil {
			log.Debugf("criteria select: %v", err)
			return nil
		}
		cv.refreshDetail()
	case "esc":
		cv.vm.ClearSelection()
		cv.refreshDetail()
	case "s":
		if cv.vm.Sort() == viewmodel.SortByName {
			cv.vm.SetSort(viewmodel.SortSource)
		} else {
			cv.vm.SetSort(viewmodel.SortByName)
		}
		cv.status = "Sorted by " + cv.vm.Sort().String()
		cv.refreshDetail()
	case "a":
		return openAddCategory
	case "c":
		if cat, ok := cv.vm.SelectedCategory(); ok {
			cv.status = copyStatus(export.CategoryMarkdown(cat), cat.Name)
		}
	case "pgdown", "f":
		cv.detail.HalfPageDown()
	case "pgup", "b":
		cv.detail.HalfPageUp()
	}
	return nil
}

func (cv *CriteriaView) applySearch() {
	cv.vm.SetSearchTerm(cv.searchBar.Value())
	cv.cursor = clampCursor(cv.cursor, len(cv.vm.FilteredCategories()))
	cv.refreshDetail()
}

// AddCategory appends a category for this session and selects it.
func (cv *CriteriaView) AddCategory(n viewmodel.NewCategory) error {
	cat, err := cv.vm.AddCategory(n)
	if err != nil {
		return err
	}
	log.Infof("session category added: %s", cat.Name)
	if err := cv.vm.SelectByName(cat.Name); err == nil {
		cv.cursor = cv.vm.SelectedIndex()
	}
	cv.status = fmt.Sprintf("Added %q for this session", cat.Name)
	cv.refreshDetail()
	return nil
}

func (cv *CriteriaView) refreshDetail() {
	cat, ok := cv.vm.SelectedCategory()
	if !ok {
		cv.detail.SetContent(mutedText("Select a category to view its proficiency levels."))
		return
	}
	cv.detail.SetContent(renderCategoryDetail(cat, cv.detail.Width))
	cv.detail.GotoTop()
}

func renderCategoryDetail(cat models.SkillCategory, width int) string {
	wrap := lipgloss.NewStyle().Width(max(width, 10))
	label := lipgloss.NewStyle().Foreground(theme.Current.Accent).Bold(true)
	title := lipgloss.NewStyle().Foreground(theme.Current.TextHighlight).Bold(true)

	var b strings.Builder
	b.WriteString(title.Render(cat.Name))
	b.WriteString("\n\n")

	for _, band := range models.Bands {
		b.WriteString(label.Render(band.Label()))
		b.WriteString("\n")
		b.WriteString(wrap.Render(cat.Description(band)))
		b.WriteString("\n\n")
	}

	b.WriteString(sectionTitle("Proficiency Levels"))
	b.WriteString("\n")
	for _, lvl := range models.Levels {
		b.WriteString(components.LevelBadge(int(lvl)))
		b.WriteString(" ")
		b.WriteString(mutedText(fmt.Sprintf("%-12s", lvl.Label())))
		b.WriteString(wrap.Width(max(width-22, 10)).Render(cat.LevelDescription(lvl)))
		b.WriteString("\n")
	}

	if len(cat.Subcategories) > 0 {
		b.WriteString("\n")
		b.WriteString(sectionTitle("Subcategories"))
		b.WriteString("\n")
		for _, sub := range cat.Subcategories {
			b.WriteString(label.Render("• " + sub.Name))
			b.WriteString("\n")
			b.WriteString(wrap.Render(mutedText(sub.Description(models.BandLow))))
			b.WriteString("\n")
			if len(sub.Skills) > 0 {
				b.WriteString(wrap.Render("Skills: " + strings.Join(sub.Skills, ", ")))
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}

// View renders the criteria view.
func (cv *CriteriaView) View() string {
	listHeight := max(cv.height-5, 3)
	filtered := cv.vm.FilteredCategories()
	term := cv.vm.SearchTerm()

	var rows []string
	if len(filtered) == 0 {
		rows = append(rows, mutedText("No categories match your search."))
	}
	start, end := visibleWindow(len(filtered), cv.cursor, listHeight)
	for i := start; i < end; i++ {
		state := components.ItemNormal
		switch {
		case i == cv.cursor && !cv.searchBar.Focused():
			state = components.ItemCursor
		case i == cv.vm.SelectedIndex():
			state = components.ItemSelected
		}
		rows = append(rows, components.RenderCategoryItem(filtered[i], term, cv.listWidth()-4, state))
	}

	counter := mutedText(fmt.Sprintf("%d of %d • sort: %s", len(filtered), cv.vm.Len(), cv.vm.Sort()))
	left := lipgloss.JoinVertical(lipgloss.Left,
		cv.searchBar.View(),
		pane(cv.listWidth(), !cv.searchBar.Focused()).Render(strings.Join(rows, "\n")),
		counter,
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		pane(cv.detailWidth(), false).Render(cv.detail.View()),
		statusLine(cv.status),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

// GetKeyboardCommands returns the criteria screen's commands for the help view.
func (cv *CriteriaView) GetKeyboardCommands() ViewCommands {
	return ViewCommands{
		ViewName: "Criteria",
		Commands: []Command{
			{Key: "/", Description: "Search categories"},
			{Key: "↑↓, j/k", Description: "Move cursor"},
			{Key: "enter", Description: "Show category details"},
			{Key: "esc", Description: "Clear selection / leave search"},
			{Key: "s", Description: "Toggle sort (source order / name)"},
			{Key: "a", Description: "Add a category (this session only)"},
			{Key: "c", Description: "Copy category as markdown"},
			{Key: "pgup/pgdn", Description: "Scroll details"},
		},
	}
}
