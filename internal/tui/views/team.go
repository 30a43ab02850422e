package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/asteroid-belt/skillmatrix/internal/dataset"
	"github.com/asteroid-belt/skillmatrix/internal/log"
	"github.com/asteroid-belt/skillmatrix/internal/tui/components"
	"github.com/asteroid-belt/skillmatrix/internal/tui/theme"
	"github.com/asteroid-belt/skillmatrix/internal/viewmodel"
)

// TeamView shows the roster and lets the user rate the selected employee.
type TeamView struct {
	vm        *viewmodel.TeamModel
	searchBar *components.SearchBar

	cursor    int // roster row
	catCursor int // category row while editing
	status    string

	width  int
	height int
}

// NewTeamView creates an unmounted team view.
func NewTeamView() *TeamView {
	return &TeamView{
		vm:        viewmodel.NewTeamModel(nil, nil),
		searchBar: components.NewSearchBar("Search by ID or position..."),
	}
}

// Init mounts the view with a fresh roster model.
func (tv *TeamView) Init(ds *dataset.Dataset) {
	tv.vm = viewmodel.NewTeamModel(ds.Employees, ds.Categories)
	tv.searchBar.Clear()
	tv.searchBar.Blur()
	tv.cursor = 0
	tv.catCursor = 0
	tv.status = ""
}

// Model exposes the view-model.
func (tv *TeamView) Model() *viewmodel.TeamModel {
	return tv.vm
}

// SetSize sets the width and height of the view.
func (tv *TeamView) SetSize(width, height int) {
	tv.width = width
	tv.height = height
	tv.searchBar.SetWidth(tv.listWidth())
}

func (tv *TeamView) listWidth() int {
	return max(tv.width*2/5, 28)
}

func (tv *TeamView) detailWidth() int {
	return max(tv.width-tv.listWidth()-1, 24)
}

// CapturesInput reports whether keys go to the search bar.
func (tv *TeamView) CapturesInput() bool {
	return tv.searchBar.Focused()
}

// Update handles key input.
func (tv *TeamView) Update(msg tea.KeyMsg) tea.Cmd {
	if tv.searchBar.Focused() {
		switch msg.String() {
		case "esc", "enter", "down":
			tv.searchBar.Blur()
			return nil
		}
		cmd := tv.searchBar.HandleKey(msg)
		tv.vm.SetSearchTerm(tv.searchBar.Value())
		tv.cursor = clampCursor(tv.cursor, len(tv.vm.FilteredEmployees()))
		return cmd
	}

	if tv.vm.Editing() {
		return tv.updateEditing(msg)
	}

	filtered := tv.vm.FilteredEmployees()
	switch msg.String() {
	case "/":
		tv.status = ""
		return tv.searchBar.Focus()
	case "up", "k":
		tv.cursor = clampCursor(tv.cursor-1, len(filtered))
	case "down", "j":
		tv.cursor = clampCursor(tv.cursor+1, len(filtered))
	case "enter":
		if len(filtered) == 0 {
			return nil
		}
		if err := tv.vm.SelectEmployee(filtered[tv.cursor].ID); err != nil {
			log.Warnf("team select: %v", err)
		}
	case "e":
		if err := tv.vm.SetEditMode(true); err != nil {
			tv.status = "Select an employee first"
			return nil
		}
		tv.catCursor = 0
		tv.status = "Editing ratings: ←→ change, enter save"
	case "p":
		if emp, ok := tv.vm.SelectedEmployee(); ok {
			return openProfile(emp.ID)
		}
		if len(filtered) > 0 {
			return openProfile(filtered[tv.cursor].ID)
		}
	}
	return nil
}

func (tv *TeamView) updateEditing(msg tea.KeyMsg) tea.Cmd {
	cats := tv.vm.CategoryNames()
	switch msg.String() {
	case "up", "k":
		tv.catCursor = clampCursor(tv.catCursor-1, len(cats))
	case "down", "j":
		tv.catCursor = clampCursor(tv.catCursor+1, len(cats))
	case "left", "h", "-":
		tv.adjust(cats, -1)
	case "right", "l", "+":
		tv.adjust(cats, 1)
	case "enter", "esc":
		tv.vm.SaveRatings()
		tv.status = "Ratings saved for this session"
	}
	return nil
}

func (tv *TeamView) adjust(cats []string, delta int) {
	if len(cats) == 0 {
		return
	}
	if _, err := tv.vm.AdjustRating(cats[tv.catCursor], delta); err != nil {
		log.Debugf("adjust rating: %v", err)
	}
}

// View renders the team view.
func (tv *TeamView) View() string {
	filtered := tv.vm.FilteredEmployees()
	listHeight := max(tv.height-5, 3)
	selected, hasSelection := tv.vm.SelectedEmployee()

	var rows []string
	if len(filtered) == 0 {
		rows = append(rows, mutedText("No employees match your search."))
	}
	start, end := visibleWindow(len(filtered), tv.cursor, listHeight)
	hl := components.DefaultHighlightStyles()
	for i := start; i < end; i++ {
		e := filtered[i]
		prefix := "  "
		switch {
		case i == tv.cursor && !tv.searchBar.Focused() && !tv.vm.Editing():
			prefix = "▸ "
		case hasSelection && e.ID == selected.ID:
			prefix = "● "
		}
		line := prefix + components.Highlight(e.ID, tv.vm.SearchTerm(), 12, hl) + " " +
			components.Highlight(e.Position, tv.vm.SearchTerm(), tv.listWidth()-30, hl)
		rows = append(rows, line+" "+components.Badge(orDash(e.RiskLevel), viewmodel.RiskColor(e.RiskLevel)))
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		tv.searchBar.View(),
		pane(tv.listWidth(), !tv.searchBar.Focused() && !tv.vm.Editing()).Render(strings.Join(rows, "\n")),
		mutedText(fmt.Sprintf("%d of %d employees", len(filtered), len(tv.vm.Employees()))),
	)

	right := lipgloss.JoinVertical(lipgloss.Left,
		pane(tv.detailWidth(), tv.vm.Editing()).Render(tv.renderDetail()),
		statusLine(tv.status),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

func (tv *TeamView) renderDetail() string {
	emp, ok := tv.vm.SelectedEmployee()
	if !ok {
		return mutedText("Select an employee to view ratings.")
	}

	label := lipgloss.NewStyle().Foreground(theme.Current.Accent).Bold(true)
	var b strings.Builder
	b.WriteString(sectionTitle(emp.ID))
	b.WriteString("  ")
	b.WriteString(emp.Position)
	b.WriteString("\n\n")

	for _, f := range []struct{ name, value string }{
		{"Risk", emp.RiskLevel},
		{"Value", emp.Value},
		{"Potential", emp.Potential},
	} {
		b.WriteString(label.Render(fmt.Sprintf("%-10s", f.name)))
		b.WriteString(components.Badge(orDash(f.value), viewmodel.RiskColor(f.value)))
		b.WriteString("\n")
	}
	b.WriteString(label.Render(fmt.Sprintf("%-10s", "Salary")))
	b.WriteString(components.TextBadge(emp.SalaryPlan))
	b.WriteString("\n")
	if emp.Comment != "" {
		b.WriteString(mutedText(emp.Comment))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(sectionTitle("Ratings"))
	b.WriteString("\n")
	nameWidth := max(tv.detailWidth()-32, 10)
	for i, cat := range tv.vm.CategoryNames() {
		prefix := "  "
		if tv.vm.Editing() && i == tv.catCursor {
			prefix = "▸ "
		}
		name := fmt.Sprintf("%-*s", nameWidth, components.Truncate(cat, nameWidth))
		b.WriteString(prefix + name + " " + components.RatingBar(int(tv.vm.Rating(emp.ID, cat))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(sectionTitle("Development Recommendations"))
	b.WriteString("\n")
	recs := tv.vm.Recommendations(emp.ID)
	if len(recs) == 0 {
		b.WriteString(mutedText("  No categories rated below " + viewmodel.RecommendBelow.String() + "."))
		b.WriteString("\n")
	}
	for _, r := range recs {
		fmt.Fprintf(&b, "  • Focus on improving %s from %s to %s\n",
			label.Render(r.Category), r.CurrentLevel, r.TargetLevel)
	}
	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// GetKeyboardCommands returns the team screen's commands for the help view.
func (tv *TeamView) GetKeyboardCommands() ViewCommands {
	return ViewCommands{
		ViewName: "Team",
		Commands: []Command{
			{Key: "/", Description: "Search by ID or position"},
			{Key: "↑↓, j/k", Description: "Move cursor"},
			{Key: "enter", Description: "Select employee / save ratings"},
			{Key: "e", Description: "Edit ratings of the selected employee"},
			{Key: "←→", Description: "Lower / raise rating while editing"},
			{Key: "p", Description: "Open employee profile"},
		},
	}
}
