package views

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asteroid-belt/skillmatrix/internal/dataset"
	"github.com/asteroid-belt/skillmatrix/internal/models"
	"github.com/asteroid-belt/skillmatrix/internal/viewmodel"
)

func loadBundled(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.Load(context.Background(), dataset.NewEmbedded())
	require.NoError(t, err)
	return ds
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyMsg(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

// captureClipboard swaps WriteClipboard for the duration of the test.
func captureClipboard(t *testing.T) *string {
	t.Helper()
	var got string
	orig := WriteClipboard
	WriteClipboard = func(text string) error {
		got = text
		return nil
	}
	t.Cleanup(func() { WriteClipboard = orig })
	return &got
}

func TestCriteriaView_SearchAndSelect(t *testing.T) {
	cv := NewCriteriaView()
	cv.Init(loadBundled(t))
	cv.SetSize(120, 40)

	assert.Contains(t, cv.View(), "Select a category")

	cv.Update(runes("/"))
	require.True(t, cv.CapturesInput())
	for _, r := range "test" {
		cv.Update(runes(string(r)))
	}
	assert.Equal(t, "test", cv.Model().SearchTerm())
	require.Len(t, cv.Model().FilteredCategories(), 1)

	cv.Update(keyMsg(tea.KeyEsc))
	assert.False(t, cv.CapturesInput())

	cv.Update(keyMsg(tea.KeyEnter))
	cat, ok := cv.Model().SelectedCategory()
	require.True(t, ok)
	assert.Equal(t, "Testing", cat.Name)
	assert.Contains(t, cv.View(), "Proficiency Levels")

	cv.Update(keyMsg(tea.KeyEsc))
	_, ok = cv.Model().SelectedCategory()
	assert.False(t, ok)
}

func TestCriteriaView_SortToggle(t *testing.T) {
	cv := NewCriteriaView()
	cv.Init(loadBundled(t))

	cv.Update(runes("s"))
	assert.Equal(t, viewmodel.SortByName, cv.Model().Sort())
	assert.Equal(t, "Leadership", cv.Model().FilteredCategories()[0].Name)

	cv.Update(runes("s"))
	assert.Equal(t, viewmodel.SortSource, cv.Model().Sort())
}

func TestCriteriaView_AddKeyOpensForm(t *testing.T) {
	cv := NewCriteriaView()
	cv.Init(loadBundled(t))

	cmd := cv.Update(runes("a"))
	require.NotNil(t, cmd)
	assert.IsType(t, OpenAddCategoryMsg{}, cmd())
}

func TestCriteriaView_AddCategory(t *testing.T) {
	cv := NewCriteriaView()
	cv.Init(loadBundled(t))
	before := cv.Model().Len()

	n := viewmodel.NewCategory{
		Name:               "Observability",
		LowDescription:     "Reads dashboards",
		MediumDescription:  "Adds metrics",
		AverageDescription: "Designs alerts",
		HighDescription:    "Owns SLOs",
	}
	require.NoError(t, cv.AddCategory(n))
	assert.Equal(t, before+1, cv.Model().Len())

	cat, ok := cv.Model().SelectedCategory()
	require.True(t, ok)
	assert.Equal(t, "Observability", cat.Name)

	err := cv.AddCategory(n)
	assert.Error(t, err)
	assert.Equal(t, before+1, cv.Model().Len())
}

func TestCriteriaView_CopySelected(t *testing.T) {
	got := captureClipboard(t)
	cv := NewCriteriaView()
	cv.Init(loadBundled(t))

	cv.Update(runes("c"))
	assert.Empty(t, *got, "nothing selected, nothing copied")

	cv.Update(keyMsg(tea.KeyEnter))
	cv.Update(runes("c"))
	assert.Contains(t, *got, "# Software Development Life Cycle (SDLC)")
}

func TestCriteriaView_InitResetsState(t *testing.T) {
	ds := loadBundled(t)
	cv := NewCriteriaView()
	cv.Init(ds)
	cv.Update(keyMsg(tea.KeyEnter))
	cv.Update(runes("s"))

	cv.Init(ds)
	_, ok := cv.Model().SelectedCategory()
	assert.False(t, ok)
	assert.Equal(t, viewmodel.SortSource, cv.Model().Sort())
}

func TestTeamView_SelectAndRate(t *testing.T) {
	tv := NewTeamView()
	tv.Init(loadBundled(t))
	tv.SetSize(120, 40)

	tv.Update(runes("e"))
	assert.False(t, tv.Model().Editing(), "no selection yet")

	tv.Update(keyMsg(tea.KeyEnter))
	emp, ok := tv.Model().SelectedEmployee()
	require.True(t, ok)
	assert.Equal(t, "EMP-001", emp.ID)

	tv.Update(runes("e"))
	require.True(t, tv.Model().Editing())

	// SDLC is not listed for EMP-001, so it starts unrated.
	tv.Update(keyMsg(tea.KeyRight))
	assert.Equal(t, models.Level(1), tv.Model().Rating("EMP-001", viewmodel.SDLC))

	tv.Update(keyMsg(tea.KeyDown))
	tv.Update(keyMsg(tea.KeyRight))
	assert.Equal(t, models.Level(4), tv.Model().Rating("EMP-001", "Programming Languages"))
	tv.Update(keyMsg(tea.KeyLeft))
	tv.Update(keyMsg(tea.KeyLeft))
	assert.Equal(t, models.Level(2), tv.Model().Rating("EMP-001", "Programming Languages"))

	tv.Update(keyMsg(tea.KeyEnter))
	assert.False(t, tv.Model().Editing())
	out := tv.View()
	assert.Contains(t, out, "Ratings")
	assert.Contains(t, out, "Development Recommendations")
	assert.Contains(t, out, "Focus on improving")

	recs := tv.Model().Recommendations("EMP-001")
	require.Len(t, recs, 2)
	assert.Equal(t, viewmodel.SDLC, recs[0].Category)
	assert.Equal(t, models.Level(2), recs[0].TargetLevel)
	assert.Equal(t, "Programming Languages", recs[1].Category)
}

func TestTeamView_Search(t *testing.T) {
	tv := NewTeamView()
	tv.Init(loadBundled(t))

	tv.Update(runes("/"))
	for _, r := range "lead" {
		tv.Update(runes(string(r)))
	}
	tv.Update(keyMsg(tea.KeyEnter))
	assert.False(t, tv.CapturesInput())

	got := tv.Model().FilteredEmployees()
	require.Len(t, got, 1)
	assert.Equal(t, "EMP-005", got[0].ID)
}

func TestTeamView_OpenProfile(t *testing.T) {
	tv := NewTeamView()
	tv.Init(loadBundled(t))
	tv.Update(keyMsg(tea.KeyDown))

	cmd := tv.Update(runes("p"))
	require.NotNil(t, cmd)
	assert.Equal(t, OpenProfileMsg{ID: "EMP-002"}, cmd())
}

func TestPlanView_RolesAndGrid(t *testing.T) {
	pv := NewPlanView()
	pv.Init(loadBundled(t))
	pv.SetSize(140, 40)

	assert.Equal(t, viewmodel.DefaultRole, pv.Model().Role())
	pv.Update(runes("r"))
	assert.Equal(t, "Product Developer", pv.Model().Role())
	pv.Update(runes("R"))
	pv.Update(runes("R"))
	assert.Equal(t, "Senior Developer", pv.Model().Role())

	pv.Update(keyMsg(tea.KeyEnter))
	pv.Update(runes("3"))
	pv.Update(runes("5"))
	items := pv.Model().CustomPlan()
	require.Len(t, items, 2)
	assert.Equal(t, viewmodel.SDLC, items[0].Category)
	assert.Equal(t, models.Level(3), items[0].Level)

	pv.Update(runes("5"))
	assert.Len(t, pv.Model().CustomPlan(), 1)
	pv.Update(keyMsg(tea.KeyEnter))
	assert.Empty(t, pv.Model().CustomPlan())

	assert.Contains(t, pv.View(), "Custom Plan")
}

func TestPlanView_SaveResetCopy(t *testing.T) {
	got := captureClipboard(t)
	pv := NewPlanView()
	pv.Init(loadBundled(t))

	pv.Update(keyMsg(tea.KeyEnter))
	pv.Update(runes("2"))
	pv.Update(runes("s"))
	saved, ok := pv.Model().Saved()
	require.True(t, ok)
	assert.Len(t, saved.Items, 1)

	pv.Update(runes("c"))
	assert.Contains(t, *got, "Development Plan")
	assert.Contains(t, *got, "Achieve Software Development Life Cycle (SDLC) at Level 2")

	pv.Update(runes("C"))
	assert.Contains(t, *got, viewmodel.DefaultRole)

	pv.Update(runes("x"))
	_, ok = pv.Model().Saved()
	assert.False(t, ok)
	assert.Empty(t, pv.Model().CustomPlan())
}

func TestPlanView_Preview(t *testing.T) {
	pv := NewPlanView()
	pv.Init(loadBundled(t))
	pv.SetSize(100, 30)

	pv.Update(runes("v"))
	assert.Contains(t, pv.View(), "close preview")
	pv.Update(keyMsg(tea.KeyEsc))
	assert.NotContains(t, pv.View(), "close preview")
}

func TestMatrixView(t *testing.T) {
	mv := NewMatrixView()
	mv.Init(loadBundled(t))
	mv.SetSize(160, 60)

	out := mv.View()
	assert.Contains(t, out, "Subcategory")
	assert.Contains(t, out, "Programming Languages")
}

func TestProfileView_States(t *testing.T) {
	ds := loadBundled(t)

	tests := []struct {
		name    string
		ds      *dataset.Dataset
		loadErr error
		id      string
		message string
	}{
		{"found", ds, nil, "EMP-003", ""},
		{"unknown id", ds, nil, "EMP-999", viewmodel.MsgEmployeeNotFound},
		{"load failure", nil, errors.Join(dataset.ErrLoadFailed, errors.New("disk")), "EMP-003", viewmodel.MsgLoadFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pv := NewProfileView()
			pv.SetSize(100, 40)
			pv.Init(tt.ds, tt.loadErr, tt.id)

			assert.Equal(t, tt.message, pv.Message())
			if tt.message == "" {
				assert.Contains(t, pv.View(), "Employee Profile: EMP-003")
				assert.Contains(t, pv.View(), "Product Management")
			} else {
				assert.Contains(t, pv.View(), tt.message)
			}
		})
	}
}

func TestHelpView_Closes(t *testing.T) {
	hv := NewHelpView()
	hv.SetViewCommands(NewPlanView().GetKeyboardCommands())
	hv.SetSize(100, 40)

	out := hv.View()
	assert.Contains(t, out, "Copy role path as markdown")
	assert.Contains(t, out, "Skill Levels")
	assert.Contains(t, out, "Intermediate")
	assert.Contains(t, out, "leads initiatives")
	assert.False(t, hv.Update("j"))
	assert.True(t, hv.Update("esc"))
}

func TestVisibleWindow(t *testing.T) {
	tests := []struct {
		n, cursor, height int
		start, end        int
	}{
		{5, 0, 10, 0, 5},
		{20, 0, 5, 0, 5},
		{20, 10, 5, 8, 13},
		{20, 19, 5, 15, 20},
	}
	for _, tt := range tests {
		start, end := visibleWindow(tt.n, tt.cursor, tt.height)
		assert.Equal(t, tt.start, start)
		assert.Equal(t, tt.end, end)
	}
}
