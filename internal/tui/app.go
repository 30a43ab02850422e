package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/asteroid-belt/skillmatrix/internal/config"
	"github.com/asteroid-belt/skillmatrix/internal/dataset"
	"github.com/asteroid-belt/skillmatrix/internal/log"
	"github.com/asteroid-belt/skillmatrix/internal/tui/components"
	"github.com/asteroid-belt/skillmatrix/internal/tui/theme"
	"github.com/asteroid-belt/skillmatrix/internal/tui/views"
)

// ViewType identifies the current view.
type ViewType int

const (
	ViewCriteria ViewType = iota
	ViewTeam
	ViewPlan
	ViewMatrix
	ViewProfile
	ViewHelp
)

// tabs is the tab-cycle order. Profile and Help are reached from other screens.
var tabs = []ViewType{ViewCriteria, ViewTeam, ViewPlan, ViewMatrix}

// String returns the screen name shown in the header.
func (v ViewType) String() string {
	switch v {
	case ViewCriteria:
		return "Criteria"
	case ViewTeam:
		return "Team"
	case ViewPlan:
		return "Plan"
	case ViewMatrix:
		return "Matrix"
	case ViewProfile:
		return "Profile"
	case ViewHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// screen is what the app needs from every navigable view.
type screen interface {
	SetSize(width, height int)
	Update(msg tea.KeyMsg) tea.Cmd
	View() string
	CapturesInput() bool
	GetKeyboardCommands() views.ViewCommands
}

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	ctx    context.Context
	src    dataset.Source
	keymap Keymap
	styles Styles

	ds      *dataset.Dataset
	loadErr error
	loaded  bool

	// Views
	currentView    ViewType
	helpReturnView ViewType
	criteriaView   *views.CriteriaView
	teamView       *views.TeamView
	planView       *views.PlanView
	matrixView     *views.MatrixView
	profileView    *views.ProfileView
	helpView       *views.HelpView

	// State
	width    int
	height   int
	ready    bool
	quitting bool
	status   string

	// Add-category form
	categoryForm        *components.CategoryForm
	showingCategoryForm bool

	// Quit confirmation dialog
	quitConfirmDialog  *components.ConfirmDialog
	showingQuitConfirm bool
}

// dataLoadedMsg carries the result of the background dataset load.
type dataLoadedMsg struct {
	ds  *dataset.Dataset
	err error
}

// NewModel creates a new TUI model reading from src.
func NewModel(ctx context.Context, src dataset.Source) *Model {
	return &Model{
		ctx:               ctx,
		src:               src,
		keymap:            DefaultKeymap(),
		styles:            DefaultStyles(),
		currentView:       ViewCriteria,
		criteriaView:      views.NewCriteriaView(),
		teamView:          views.NewTeamView(),
		planView:          views.NewPlanView(),
		matrixView:        views.NewMatrixView(),
		profileView:       views.NewProfileView(),
		helpView:          views.NewHelpView(),
		quitConfirmDialog: newQuitDialog(),
	}
}

func newQuitDialog() *components.ConfirmDialog {
	return components.NewConfirmDialog("Quit Skill Matrix?", "Session changes are not saved. Exit anyway?")
}

// Init starts loading the dataset.
func (m *Model) Init() tea.Cmd {
	return m.loadDataCmd()
}

// loadDataCmd returns a command that loads the dataset off the UI goroutine.
func (m *Model) loadDataCmd() tea.Cmd {
	ctx, src := m.ctx, m.src
	return func() tea.Msg {
		ds, err := dataset.Load(ctx, src)
		return dataLoadedMsg{ds: ds, err: err}
	}
}

func (m *Model) screen(v ViewType) screen {
	switch v {
	case ViewCriteria:
		return m.criteriaView
	case ViewTeam:
		return m.teamView
	case ViewPlan:
		return m.planView
	case ViewMatrix:
		return m.matrixView
	case ViewProfile:
		return m.profileView
	default:
		return nil
	}
}

// mount switches to a tab screen with a fresh view-model.
func (m *Model) mount(v ViewType) {
	m.currentView = v
	m.status = ""
	if m.ds == nil {
		return
	}
	switch v {
	case ViewCriteria:
		m.criteriaView.Init(m.ds)
	case ViewTeam:
		m.teamView.Init(m.ds)
	case ViewPlan:
		m.planView.Init(m.ds)
	case ViewMatrix:
		m.matrixView.Init(m.ds)
	}
	log.WithField("view", v.String()).Debug("mounted")
}

// cycle moves through the tabs by step. From Profile it cycles relative to Team.
func (m *Model) cycle(step int) {
	cur := m.currentView
	if cur == ViewProfile {
		cur = ViewTeam
	}
	idx := 0
	for i, v := range tabs {
		if v == cur {
			idx = i
		}
	}
	m.mount(tabs[(idx+step+len(tabs))%len(tabs)])
}

func (m *Model) contentHeight() int {
	return max(m.height-4, 5)
}

// Update handles all messages and user input.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showingCategoryForm {
		if size, ok := msg.(tea.WindowSizeMsg); ok {
			m.resize(size)
		}
		return m, m.updateCategoryForm(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg)
		return m, nil

	case dataLoadedMsg:
		m.loaded = true
		m.ds, m.loadErr = msg.ds, msg.err
		if m.loadErr != nil {
			log.Errorf("load dataset: %v", m.loadErr)
			return m, nil
		}
		log.Infof("loaded %d categories and %d employees", len(m.ds.Categories), len(m.ds.Employees))
		m.mount(m.currentView)
		return m, nil

	case views.OpenAddCategoryMsg:
		m.categoryForm = components.NewCategoryForm()
		m.showingCategoryForm = true
		return m, m.categoryForm.Init()

	case views.OpenProfileMsg:
		m.profileView.Init(m.ds, m.loadErr, msg.ID)
		m.currentView = ViewProfile
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) resize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height
	m.ready = true
	for _, s := range []screen{m.criteriaView, m.teamView, m.planView, m.matrixView, m.profileView} {
		s.SetSize(m.width, m.contentHeight())
	}
	m.helpView.SetSize(m.width, m.contentHeight())
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.showingQuitConfirm {
		switch m.quitConfirmDialog.HandleKey(key) {
		case components.ConfirmYes:
			m.quitting = true
			return m, tea.Quit
		case components.ConfirmNo:
			m.showingQuitConfirm = false
		}
		return m, nil
	}

	if matches(msg, m.keymap.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.currentView == ViewHelp {
		if m.helpView.Update(key) {
			m.currentView = m.helpReturnView
		}
		return m, nil
	}

	// Nothing to navigate until the dataset is in; an error screen only quits.
	if !m.loaded || m.loadErr != nil {
		if matches(msg, m.keymap.Quit) || matches(msg, m.keymap.Back) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	current := m.screen(m.currentView)
	if current.CapturesInput() {
		return m, current.Update(msg)
	}

	switch {
	case matches(msg, m.keymap.Quit):
		m.quitConfirmDialog.SelectNo()
		m.showingQuitConfirm = true
		return m, nil
	case matches(msg, m.keymap.Help):
		m.helpReturnView = m.currentView
		m.helpView.SetViewCommands(current.GetKeyboardCommands())
		m.currentView = ViewHelp
		return m, nil
	case matches(msg, m.keymap.NextView):
		m.cycle(1)
		return m, nil
	case matches(msg, m.keymap.PrevView):
		m.cycle(-1)
		return m, nil
	case m.currentView == ViewProfile && matches(msg, m.keymap.Back):
		m.mount(ViewTeam)
		return m, nil
	}

	return m, current.Update(msg)
}

func matches(msg tea.KeyMsg, b key.Binding) bool {
	return key.Matches(msg, b)
}

func (m *Model) updateCategoryForm(msg tea.Msg) tea.Cmd {
	cmd := m.categoryForm.Update(msg)

	switch {
	case m.categoryForm.Aborted():
		m.showingCategoryForm = false
		return nil
	case m.categoryForm.Completed():
		m.showingCategoryForm = false
		if err := m.criteriaView.AddCategory(m.categoryForm.Value()); err != nil {
			log.Warnf("add category: %v", err)
			m.status = err.Error()
		}
		return nil
	}
	return cmd
}

// View renders the current screen with header and footer.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	if m.showingCategoryForm {
		return m.categoryForm.CenteredView(m.width, m.height)
	}
	if m.showingQuitConfirm {
		return m.quitConfirmDialog.CenteredView(m.width, m.height)
	}

	var content string
	switch {
	case !m.loaded:
		content = m.styles.Muted.Render("Loading skill matrix...")
	case m.loadErr != nil:
		content = m.renderLoadError()
	case m.currentView == ViewHelp:
		content = m.helpView.View()
	default:
		content = m.screen(m.currentView).View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		lipgloss.NewStyle().Height(m.contentHeight()).MaxHeight(m.contentHeight()).Render(content),
		m.renderFooter(),
	)
}

func (m *Model) renderHeader() string {
	parts := []string{m.styles.HeaderTitle.Render("SKILL MATRIX")}
	active := m.currentView
	if active == ViewHelp {
		active = m.helpReturnView
	}
	for _, v := range tabs {
		style := m.styles.Tab
		if v == active || (active == ViewProfile && v == ViewTeam) {
			style = m.styles.TabActive
		}
		parts = append(parts, style.Render(v.String()))
	}
	if active == ViewProfile {
		parts = append(parts, m.styles.TabActive.Render(ViewProfile.String()))
	}
	return m.styles.Header.Render(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
}

func (m *Model) renderFooter() string {
	help := m.styles.FooterHelp.Render(m.keymap.QuickHelpText())
	if m.status == "" {
		return m.styles.Footer.Render(help)
	}
	return m.styles.Footer.Render(help + "  " + m.styles.StatusError.Render(m.status))
}

func (m *Model) renderLoadError() string {
	msg := "Failed to load skill matrix data."
	if errors.Is(m.loadErr, dataset.ErrDuplicateCategory) || errors.Is(m.loadErr, dataset.ErrDuplicateEmployee) {
		msg = "Skill matrix data is inconsistent."
	}
	var b strings.Builder
	b.WriteString(m.styles.StatusError.Render(msg))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Muted.Render(m.loadErr.Error()))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Muted.Render("Press q to exit."))
	return lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center, b.String())
}

// Run executes the TUI program.
func Run(ctx context.Context, cfg *config.Config, src dataset.Source) error {
	theme.Use(cfg.Theme)
	model := NewModel(ctx, src)
	model.styles = DefaultStyles()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
