package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/asteroid-belt/skillmatrix/internal/dataset"
	"github.com/asteroid-belt/skillmatrix/internal/log"
	"github.com/asteroid-belt/skillmatrix/internal/models"
	"github.com/asteroid-belt/skillmatrix/internal/tui/components"
	"github.com/asteroid-belt/skillmatrix/internal/tui/theme"
	"github.com/asteroid-belt/skillmatrix/internal/viewmodel"
)

// ProfileView shows one employee's competencies.
type ProfileView struct {
	profile  *viewmodel.Profile
	message  string
	viewport viewport.Model

	width  int
	height int
}

// NewProfileView creates an unmounted profile view.
func NewProfileView() *ProfileView {
	return &ProfileView{viewport: viewport.New(0, 0)}
}

// Init builds the profile of id. A load error or unknown ID leaves the
// screen showing a message; there is no retry.
func (pv *ProfileView) Init(ds *dataset.Dataset, loadErr error, id string) {
	pv.profile = nil
	pv.message = ""

	err := loadErr
	if err == nil {
		pv.profile, err = viewmodel.NewProfile(ds, id)
	}
	if err != nil {
		log.WithField("employee", id).Warnf("profile: %v", err)
		pv.message = viewmodel.ProfileMessage(err)
	}
	pv.refresh()
}

// Message returns the terminal error message, if any.
func (pv *ProfileView) Message() string {
	return pv.message
}

// SetSize sets the width and height of the view.
func (pv *ProfileView) SetSize(width, height int) {
	pv.width = width
	pv.height = height
	pv.viewport.Width = max(width-4, 20)
	pv.viewport.Height = max(height-3, 3)
	pv.refresh()
}

// CapturesInput is false; the profile has no text input.
func (pv *ProfileView) CapturesInput() bool {
	return false
}

// Update scrolls the profile.
func (pv *ProfileView) Update(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	pv.viewport, cmd = pv.viewport.Update(msg)
	return cmd
}

func (pv *ProfileView) refresh() {
	if pv.profile == nil {
		pv.viewport.SetContent("")
		return
	}
	emp := pv.profile.Employee
	label := lipgloss.NewStyle().Foreground(theme.Current.Accent).Bold(true)
	wrap := lipgloss.NewStyle().Width(max(pv.viewport.Width-4, 10))

	var b strings.Builder
	b.WriteString(sectionTitle("Employee Profile: " + emp.ID))
	b.WriteString("\n")
	b.WriteString(emp.Position)
	b.WriteString("\n\n")
	for _, f := range []struct{ name, value string }{
		{"Risk Level", emp.RiskLevel},
		{"Value", emp.Value},
		{"Potential", emp.Potential},
	} {
		b.WriteString(label.Render(f.name + ": "))
		b.WriteString(components.Badge(orDash(f.value), viewmodel.RiskColor(f.value)))
		b.WriteString("\n")
	}
	b.WriteString(label.Render("Salary Plan: "))
	b.WriteString(components.TextBadge(emp.SalaryPlan))
	b.WriteString("\n")
	if emp.Comment != "" {
		b.WriteString(label.Render("Comment: "))
		b.WriteString(emp.Comment)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(sectionTitle("Competencies"))
	b.WriteString("\n")
	if len(pv.profile.Groups) == 0 {
		b.WriteString(mutedText("No competencies listed."))
	}
	for _, g := range pv.profile.Groups {
		b.WriteString("\n")
		b.WriteString(label.Render(g.Category))
		b.WriteString("\n")
		for _, sub := range g.Subcategories {
			b.WriteString("  • " + sub.Name + "\n")
			for _, band := range models.Bands {
				b.WriteString(wrap.Render(mutedText("    " + band.Label() + ": " + sub.Bands[band])))
				b.WriteString("\n")
			}
		}
	}
	pv.viewport.SetContent(b.String())
	pv.viewport.GotoTop()
}

// View renders the profile view.
func (pv *ProfileView) View() string {
	if pv.message != "" {
		msg := lipgloss.NewStyle().Foreground(theme.Current.Error).Bold(true).Render(pv.message)
		return lipgloss.Place(pv.width, max(pv.height, 3), lipgloss.Center, lipgloss.Center,
			lipgloss.JoinVertical(lipgloss.Center, msg, mutedText("esc to go back")))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		pane(pv.width, true).Render(pv.viewport.View()),
		mutedText("esc back • ↑↓ scroll"),
	)
}

// GetKeyboardCommands returns the profile screen's commands for the help view.
func (pv *ProfileView) GetKeyboardCommands() ViewCommands {
	return ViewCommands{
		ViewName: "Profile",
		Commands: []Command{
			{Key: "↑↓, j/k", Description: "Scroll"},
			{Key: "esc", Description: "Back to team"},
		},
	}
}
