package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/asteroid-belt/skillmatrix/internal/dataset"
	"github.com/asteroid-belt/skillmatrix/internal/tui/components"
	"github.com/asteroid-belt/skillmatrix/internal/tui/theme"
	"github.com/asteroid-belt/skillmatrix/internal/viewmodel"
)

// MatrixView is the flat category/subcategory table.
type MatrixView struct {
	rows     []viewmodel.MatrixRow
	viewport viewport.Model

	width  int
	height int
}

// NewMatrixView creates an unmounted matrix view.
func NewMatrixView() *MatrixView {
	return &MatrixView{viewport: viewport.New(0, 0)}
}

// Init mounts the view over the dataset's categories.
func (mv *MatrixView) Init(ds *dataset.Dataset) {
	mv.rows = viewmodel.MatrixRows(ds.Categories)
	mv.refresh()
}

// SetSize sets the width and height of the view.
func (mv *MatrixView) SetSize(width, height int) {
	mv.width = width
	mv.height = height
	mv.viewport.Width = max(width-4, 20)
	mv.viewport.Height = max(height-3, 3)
	mv.refresh()
}

// CapturesInput is false; the matrix has no text input.
func (mv *MatrixView) CapturesInput() bool {
	return false
}

// Update scrolls the table.
func (mv *MatrixView) Update(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	mv.viewport, cmd = mv.viewport.Update(msg)
	return cmd
}

func (mv *MatrixView) refresh() {
	width := max(mv.viewport.Width, 40)
	catWidth := width / 4
	subWidth := width / 4
	descWidth := max(width-catWidth-subWidth-2, 10)

	head := lipgloss.NewStyle().Foreground(theme.Current.Primary).Bold(true)
	cat := lipgloss.NewStyle().Foreground(theme.Current.Accent).Bold(true)

	var b strings.Builder
	b.WriteString(head.Render(fmt.Sprintf("%-*s %-*s %s", catWidth, "Category", subWidth, "Subcategory", "Description")))
	b.WriteString("\n")
	for _, r := range mv.rows {
		desc := components.Truncate(r.Description, descWidth)
		if r.IsCategory() {
			b.WriteString(cat.Render(fmt.Sprintf("%-*s", catWidth, components.Truncate(r.Category, catWidth))))
			fmt.Fprintf(&b, " %-*s %s\n", subWidth, "", desc)
			continue
		}
		fmt.Fprintf(&b, "%-*s %-*s %s\n", catWidth, "", subWidth, components.Truncate(r.Subcategory, subWidth), mutedText(desc))
	}
	mv.viewport.SetContent(b.String())
}

// View renders the matrix view.
func (mv *MatrixView) View() string {
	footer := mutedText(fmt.Sprintf("%d rows • %3.f%%", len(mv.rows), mv.viewport.ScrollPercent()*100))
	return lipgloss.JoinVertical(lipgloss.Left,
		pane(mv.width, true).Render(mv.viewport.View()),
		footer,
	)
}

// GetKeyboardCommands returns the matrix screen's commands for the help view.
func (mv *MatrixView) GetKeyboardCommands() ViewCommands {
	return ViewCommands{
		ViewName: "Matrix",
		Commands: []Command{
			{Key: "↑↓, j/k", Description: "Scroll"},
			{Key: "pgup/pgdn", Description: "Page up / down"},
		},
	}
}
