package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/asteroid-belt/skillmatrix/internal/dataset"
	"github.com/asteroid-belt/skillmatrix/internal/dataset/mocks"
	"github.com/asteroid-belt/skillmatrix/internal/tui/views"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// newLoadedModel runs the load command synchronously and sizes the window.
func newLoadedModel(t *testing.T, src dataset.Source) *Model {
	t.Helper()
	m := NewModel(context.Background(), src)
	m.Update(tea.WindowSizeMsg{Width: 140, Height: 45})

	cmd := m.Init()
	require.NotNil(t, cmd)
	m.Update(cmd())
	return m
}

func TestModel_LoadsAndShowsCriteria(t *testing.T) {
	m := newLoadedModel(t, dataset.NewEmbedded())

	require.NoError(t, m.loadErr)
	assert.Equal(t, ViewCriteria, m.currentView)
	out := m.View()
	assert.Contains(t, out, "SKILL MATRIX")
	assert.Contains(t, out, "Testing")
}

func TestModel_LoadingScreen(t *testing.T) {
	m := NewModel(context.Background(), dataset.NewEmbedded())
	assert.Equal(t, "Loading...", m.View())

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Contains(t, m.View(), "Loading skill matrix")
}

func TestModel_LoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockSource(ctrl)
	src.EXPECT().LoadCategories(gomock.Any()).Return(nil, errors.New("disk on fire")).AnyTimes()
	src.EXPECT().LoadEmployees(gomock.Any()).Return(nil, nil).AnyTimes()

	m := newLoadedModel(t, src)

	require.Error(t, m.loadErr)
	assert.ErrorIs(t, m.loadErr, dataset.ErrLoadFailed)
	assert.Contains(t, m.View(), "Failed to load skill matrix data.")

	// Tabs are inert on the error screen.
	m.Update(keyMsg("tab"))
	assert.Equal(t, ViewCriteria, m.currentView)

	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_TabCycling(t *testing.T) {
	m := newLoadedModel(t, dataset.NewEmbedded())

	want := []ViewType{ViewTeam, ViewPlan, ViewMatrix, ViewCriteria}
	for _, v := range want {
		m.Update(keyMsg("tab"))
		assert.Equal(t, v, m.currentView)
	}

	m.Update(keyMsg("shift+tab"))
	assert.Equal(t, ViewMatrix, m.currentView)
}

func TestModel_NavigationRemountsScreens(t *testing.T) {
	m := newLoadedModel(t, dataset.NewEmbedded())

	m.Update(keyMsg("enter"))
	_, ok := m.criteriaView.Model().SelectedCategory()
	require.True(t, ok)

	m.Update(keyMsg("tab"))
	m.Update(keyMsg("shift+tab"))
	_, ok = m.criteriaView.Model().SelectedCategory()
	assert.False(t, ok, "selection does not survive navigation")
}

func TestModel_HelpOverlay(t *testing.T) {
	m := newLoadedModel(t, dataset.NewEmbedded())
	m.Update(keyMsg("tab"))
	m.Update(keyMsg("enter")) // select EMP-001

	m.Update(keyMsg("?"))
	assert.Equal(t, ViewHelp, m.currentView)
	assert.Contains(t, m.View(), "Team Commands")

	m.Update(keyMsg("esc"))
	assert.Equal(t, ViewTeam, m.currentView)
	_, ok := m.teamView.Model().SelectedEmployee()
	assert.True(t, ok, "help does not remount the screen")
}

func TestModel_SearchCapturesGlobalKeys(t *testing.T) {
	m := newLoadedModel(t, dataset.NewEmbedded())

	m.Update(keyMsg("/"))
	m.Update(keyMsg("q"))
	m.Update(keyMsg("?"))

	assert.False(t, m.showingQuitConfirm)
	assert.Equal(t, ViewCriteria, m.currentView)
	assert.Equal(t, "q?", m.criteriaView.Model().SearchTerm())
}

func TestModel_QuitConfirm(t *testing.T) {
	m := newLoadedModel(t, dataset.NewEmbedded())

	m.Update(keyMsg("q"))
	require.True(t, m.showingQuitConfirm)
	assert.Contains(t, m.View(), "Quit Skill Matrix?")

	_, cmd := m.Update(keyMsg("n"))
	assert.Nil(t, cmd)
	assert.False(t, m.showingQuitConfirm)

	m.Update(keyMsg("q"))
	_, cmd = m.Update(keyMsg("y"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestModel_ForceQuit(t *testing.T) {
	m := newLoadedModel(t, dataset.NewEmbedded())

	_, cmd := m.Update(keyMsg("ctrl+c"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_ProfileNavigation(t *testing.T) {
	m := newLoadedModel(t, dataset.NewEmbedded())
	m.Update(keyMsg("tab"))

	_, cmd := m.Update(keyMsg("p"))
	require.NotNil(t, cmd)
	m.Update(cmd())
	assert.Equal(t, ViewProfile, m.currentView)
	assert.Contains(t, m.View(), "Employee Profile: EMP-001")

	m.Update(keyMsg("esc"))
	assert.Equal(t, ViewTeam, m.currentView)
}

func TestModel_ProfileNotFound(t *testing.T) {
	m := newLoadedModel(t, dataset.NewEmbedded())

	m.Update(views.OpenProfileMsg{ID: "EMP-404"})
	assert.Equal(t, ViewProfile, m.currentView)
	assert.Contains(t, m.View(), "Employee not found.")
}

func TestModel_CategoryFormCancel(t *testing.T) {
	m := newLoadedModel(t, dataset.NewEmbedded())

	m.Update(views.OpenAddCategoryMsg{})
	require.True(t, m.showingCategoryForm)
	assert.Contains(t, m.View(), "Category name")

	m.Update(keyMsg("esc"))
	assert.False(t, m.showingCategoryForm)
	assert.Equal(t, 7, m.criteriaView.Model().Len())
}

func TestViewType_String(t *testing.T) {
	assert.Equal(t, "Criteria", ViewCriteria.String())
	assert.Equal(t, "Profile", ViewProfile.String())
	assert.Equal(t, "Unknown", ViewType(99).String())
}
