package views

import (
	"fmt"
	"slices"
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

// PlanView is the development plan builder.
type PlanView struct {
	vm         *viewmodel.PlanModel
	team       *viewmodel.TeamModel
	categories []string

	cursor      int
	preview     viewport.Model
	showPreview bool
	status      string

	width  int
	height int
}

// NewPlanView creates an unmounted plan view.
func NewPlanView() *PlanView {
	return &PlanView{
		vm:      viewmodel.NewPlanModel(nil),
		team:    viewmodel.NewTeamModel(nil, nil),
		preview: viewport.New(0, 0),
	}
}

// Init mounts the view with fresh plan and team models.
func (pv *PlanView) Init(ds *dataset.Dataset) {
	pv.vm = viewmodel.NewPlanModel(ds.Categories)
	pv.team = viewmodel.NewTeamModel(ds.Employees, ds.Categories)
	pv.categories = pv.team.CategoryNames()
	pv.cursor = 0
	pv.showPreview = false
	pv.status = ""
}

// Model exposes the view-model.
func (pv *PlanView) Model() *viewmodel.PlanModel {
	return pv.vm
}

// SetSize sets the width and height of the view.
func (pv *PlanView) SetSize(width, height int) {
	pv.width = width
	pv.height = height
	pv.preview.Width = max(width-4, 20)
	pv.preview.Height = max(height-4, 5)
	if pv.showPreview {
		pv.refreshPreview()
	}
}

// CapturesInput is false; the plan screen has no text input.
func (pv *PlanView) CapturesInput() bool {
	return false
}

// Update handles key input.
func (pv *PlanView) Update(msg tea.KeyMsg) tea.Cmd {
	if pv.showPreview {
		switch msg.String() {
		case "v", "esc":
			pv.showPreview = false
		default:
			var cmd tea.Cmd
			pv.preview, cmd = pv.preview.Update(msg)
			return cmd
		}
		return nil
	}

	key := msg.String()
	switch key {
	case "r":
		pv.cycleRole(1)
	case "R":
		pv.cycleRole(-1)
	case "up", "k":
		pv.cursor = clampCursor(pv.cursor-1, len(pv.categories))
	case "down", "j":
		pv.cursor = clampCursor(pv.cursor+1, len(pv.categories))
	case "enter", " ":
		pv.toggleRow()
	case "1", "2", "3", "4", "5":
		pv.toggleColumn(models.Level(key[0] - '0'))
	case "s":
		plan := pv.vm.Save()
		log.Infof("plan saved for session: %d items", len(plan.Items))
		pv.status = fmt.Sprintf("Plan saved for this session (%d items)", len(plan.Items))
	case "x":
		pv.vm.Reset()
		pv.status = "Plan cleared"
	case "c":
		pv.status = copyStatus(export.PlanMarkdown(pv.currentPlan()), "plan")
	case "C":
		pv.status = copyStatus(export.PathMarkdown(pv.vm.Role(), pv.vm.Path()), "path")
	case "v":
		pv.showPreview = true
		pv.refreshPreview()
	}
	return nil
}

func (pv *PlanView) currentPlan() models.Plan {
	if saved, ok := pv.vm.Saved(); ok {
		return saved
	}
	return models.Plan{Role: pv.vm.Role(), Items: pv.vm.CustomPlan()}
}

func (pv *PlanView) cycleRole(step int) {
	roles := pv.vm.Roles()
	i := slices.Index(roles, pv.vm.Role())
	next := roles[(i+step+len(roles))%len(roles)]
	if err := pv.vm.SelectRole(next); err != nil {
		log.Warnf("select role: %v", err)
	}
}

func (pv *PlanView) toggleRow() {
	if len(pv.categories) == 0 {
		return
	}
	cat := pv.categories[pv.cursor]
	if slices.Contains(pv.vm.Rows(), cat) {
		pv.vm.RemoveRow(cat)
		return
	}
	if err := pv.vm.AddRow(cat); err != nil {
		pv.status = err.Error()
	}
}

func (pv *PlanView) toggleColumn(lvl models.Level) {
	if slices.Contains(pv.vm.Columns(), lvl) {
		pv.vm.RemoveColumn(lvl)
		return
	}
	if err := pv.vm.AddColumn(lvl); err != nil {
		pv.status = err.Error()
	}
}

func (pv *PlanView) refreshPreview() {
	md := export.Body(export.PlanMarkdown(pv.currentPlan())) + "\n" +
		export.Body(export.PathMarkdown(pv.vm.Role(), pv.vm.Path()))
	pv.preview.SetContent(strings.Join(components.RenderMarkdown(md, pv.preview.Width), "\n"))
	pv.preview.GotoTop()
}

// View renders the plan view.
func (pv *PlanView) View() string {
	if pv.showPreview {
		return lipgloss.JoinVertical(lipgloss.Left,
			pane(pv.width, true).Render(pv.preview.View()),
			mutedText("v/esc close preview • ↑↓ scroll"),
		)
	}

	colWidth := max(pv.width/2-1, 30)
	left := lipgloss.JoinVertical(lipgloss.Left,
		pane(colWidth, false).Render(pv.renderPath(colWidth)),
		pane(colWidth, true).Render(pv.renderGrid(colWidth)),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		pane(colWidth, false).Render(pv.renderItems(colWidth)),
		pane(colWidth, false).Render(pv.renderDistribution(colWidth)),
		statusLine(pv.status),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

func (pv *PlanView) renderPath(width int) string {
	var b strings.Builder
	b.WriteString(sectionTitle("Role: " + pv.vm.Role()))
	b.WriteString(mutedText("  (r/R to change)"))
	b.WriteString("\n")
	nameWidth := max(width-24, 10)
	for _, step := range pv.vm.Path() {
		fmt.Fprintf(&b, "%-*s %s → %s %3d%%\n",
			nameWidth, components.Truncate(step.Category, nameWidth),
			components.LevelBadge(int(step.CurrentLevel)),
			components.LevelBadge(int(step.TargetLevel)),
			step.Progress())
	}
	return strings.TrimRight(b.String(), "\n")
}

func (pv *PlanView) renderGrid(width int) string {
	var b strings.Builder
	b.WriteString(sectionTitle("Categories"))
	b.WriteString(mutedText("  enter toggles a row, 1-5 toggle levels"))
	b.WriteString("\n")

	var cols []string
	for _, lvl := range models.Levels {
		label := fmt.Sprintf(" %d ", lvl)
		if slices.Contains(pv.vm.Columns(), lvl) {
			cols = append(cols, components.Badge(label, viewmodel.BadgeColorForLevel(int(lvl))))
		} else {
			cols = append(cols, mutedText(label))
		}
	}
	b.WriteString("Levels: " + strings.Join(cols, " ") + "\n")

	rows := pv.vm.Rows()
	height := max(pv.height/2-6, 3)
	start, end := visibleWindow(len(pv.categories), pv.cursor, height)
	check := lipgloss.NewStyle().Foreground(theme.Current.Success)
	for i := start; i < end; i++ {
		cat := pv.categories[i]
		prefix := "  "
		if i == pv.cursor {
			prefix = "▸ "
		}
		mark := "[ ]"
		if slices.Contains(rows, cat) {
			mark = check.Render("[x]")
		}
		b.WriteString(prefix + mark + " " + components.Truncate(cat, width-10) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (pv *PlanView) renderItems(width int) string {
	items := pv.vm.CustomPlan()
	var b strings.Builder
	b.WriteString(sectionTitle(fmt.Sprintf("Custom Plan (%d)", len(items))))
	if saved, ok := pv.vm.Saved(); ok && saved.SavedAt != nil {
		b.WriteString(mutedText("  saved " + saved.SavedAt.Format("15:04:05")))
	}
	b.WriteString("\n")
	if len(items) == 0 {
		b.WriteString(mutedText("Pick categories and levels to build a plan."))
		return b.String()
	}
	height := max(pv.height/2-4, 3)
	for i, item := range items {
		if i == height {
			b.WriteString(mutedText(fmt.Sprintf("… %d more", len(items)-height)))
			break
		}
		b.WriteString(components.LevelBadge(int(item.Level)) + " " + components.Truncate(item.Description, width-14) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (pv *PlanView) renderDistribution(width int) string {
	if len(pv.categories) == 0 {
		return mutedText("No categories loaded.")
	}
	cat := pv.categories[pv.cursor]
	dist := viewmodel.Distribution(pv.team, cat)

	var b strings.Builder
	b.WriteString(sectionTitle("Team: " + components.Truncate(cat, width-12)))
	b.WriteString("\n")
	barMax := max(width-24, 5)
	for _, row := range dist {
		bar := lipgloss.NewStyle().
			Foreground(theme.TokenColor(viewmodel.BadgeColorForLevel(int(row.Level)))).
			Render(strings.Repeat("█", int(row.Percent*float64(barMax)/100)))
		fmt.Fprintf(&b, "%s %2d %5.1f%% %s\n", row.Level, row.Count, row.Percent, bar)
	}
	b.WriteString(mutedText(viewmodel.GapSummary(cat, dist)))
	return b.String()
}

// GetKeyboardCommands returns the plan screen's commands for the help view.
func (pv *PlanView) GetKeyboardCommands() ViewCommands {
	return ViewCommands{
		ViewName: "Plan",
		Commands: []Command{
			{Key: "r / R", Description: "Next / previous role"},
			{Key: "↑↓, j/k", Description: "Move category cursor"},
			{Key: "enter", Description: "Add or remove category row"},
			{Key: "1-5", Description: "Add or remove target level"},
			{Key: "s", Description: "Save plan (this session only)"},
			{Key: "x", Description: "Clear plan"},
			{Key: "c", Description: "Copy plan as markdown"},
			{Key: "C", Description: "Copy role path as markdown"},
			{Key: "v", Description: "Preview plan and path"},
		},
	}
}
