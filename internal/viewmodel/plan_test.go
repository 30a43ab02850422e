package viewmodel

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asteroid-belt/skillmatrix/internal/models"
)

func newTestPlan(t *testing.T) *PlanModel {
	t.Helper()
	m := NewPlanModel(loadBundled(t).Categories)
	var n int
	m.newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	m.now = func() time.Time {
		return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	}
	return m
}

func TestPlanModel_Roles(t *testing.T) {
	m := newTestPlan(t)

	assert.Equal(t, []string{"Junior Developer", "Product Developer", "Senior Developer"}, m.Roles())
	assert.Equal(t, DefaultRole, m.Role())
	assert.Len(t, m.Path(), 3)
}

func TestPlanModel_SelectRole(t *testing.T) {
	m := newTestPlan(t)

	require.NoError(t, m.SelectRole("senior developer"))
	assert.Equal(t, "Senior Developer", m.Role())

	path := m.Path()
	require.Len(t, path, 4)
	assert.Equal(t, models.PathStep{Category: "Leadership", CurrentLevel: 2, TargetLevel: 4}, path[3])

	assert.ErrorIs(t, m.SelectRole("Astronaut"), ErrUnknownRole)
	assert.Equal(t, "Senior Developer", m.Role())
}

func TestPlanModel_PathReturnsCopy(t *testing.T) {
	m := newTestPlan(t)

	path := m.Path()
	path[0].TargetLevel = 1

	assert.Equal(t, models.Level(3), DevelopmentPaths[DefaultRole][0].TargetLevel)
}

func TestDevelopmentPaths_ReferenceBundledCategories(t *testing.T) {
	ds := loadBundled(t)
	known := map[string]bool{}
	for _, c := range ds.Categories {
		known[c.Name] = true
	}

	for role, steps := range DevelopmentPaths {
		for _, s := range steps {
			assert.Truef(t, known[s.Category], "%s: %s", role, s.Category)
			assert.True(t, s.CurrentLevel.Valid())
			assert.True(t, s.TargetLevel.Valid())
			assert.LessOrEqual(t, s.CurrentLevel, s.TargetLevel)
		}
	}
}

func TestPlanModel_CustomPlan(t *testing.T) {
	m := newTestPlan(t)

	require.NoError(t, m.AddRow("Testing"))
	require.NoError(t, m.AddRow("Leadership"))
	require.NoError(t, m.AddRow("Testing")) // ignored
	require.NoError(t, m.AddColumn(2))
	require.NoError(t, m.AddColumn(4))

	assert.ErrorIs(t, m.AddRow("Cooking"), ErrUnknownCategory)
	assert.ErrorIs(t, m.AddColumn(0), ErrInvalidLevel)

	items := m.CustomPlan()
	require.Len(t, items, 4)
	assert.Equal(t, models.PlanItem{ID: "id-1", Category: "Testing", Level: 2, Description: "Achieve Testing at Level 2"}, items[0])
	assert.Equal(t, "Leadership", items[3].Category)
	assert.Equal(t, models.Level(4), items[3].Level)

	// IDs are stable across reads.
	again := m.CustomPlan()
	assert.Equal(t, items, again)
}

func TestPlanModel_RemoveAndReset(t *testing.T) {
	m := newTestPlan(t)
	require.NoError(t, m.AddRow("Testing"))
	require.NoError(t, m.AddRow("Leadership"))
	require.NoError(t, m.AddColumn(3))

	m.RemoveRow("Testing")
	m.RemoveRow("Nope")
	assert.Equal(t, []string{"Leadership"}, m.Rows())

	m.RemoveColumn(3)
	assert.Empty(t, m.CustomPlan())

	require.NoError(t, m.AddColumn(5))
	m.Save()
	m.Reset()

	assert.Empty(t, m.Rows())
	assert.Empty(t, m.Columns())
	_, ok := m.Saved()
	assert.False(t, ok)
}

func TestPlanModel_Save(t *testing.T) {
	m := newTestPlan(t)
	require.NoError(t, m.AddRow("Testing"))
	require.NoError(t, m.AddColumn(3))

	plan := m.Save()

	require.NotNil(t, plan.SavedAt)
	assert.Equal(t, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), *plan.SavedAt)
	assert.Equal(t, DefaultRole, plan.Role)
	require.Len(t, plan.Items, 1)

	saved, ok := m.Saved()
	require.True(t, ok)
	assert.Equal(t, plan, saved)
}

func TestNewPlanModel_UsesUUIDs(t *testing.T) {
	m := NewPlanModel([]models.SkillCategory{{Name: "Testing"}})
	require.NoError(t, m.AddRow("Testing"))
	require.NoError(t, m.AddColumn(1))

	items := m.CustomPlan()
	require.Len(t, items, 1)
	assert.Len(t, items[0].ID, 36)
}

func TestDistribution(t *testing.T) {
	team := NewTeamModel(sampleEmployees(), sampleCategories())

	dist := Distribution(team, "Testing")
	require.Len(t, dist, 5)
	assert.Equal(t, models.MaxLevel, dist[0].Level)
	assert.Equal(t, models.MinLevel, dist[4].Level)

	// EMP-001 and EMP-002 list Testing and start at level 3.
	assert.Equal(t, 2, dist[2].Count)
	assert.InDelta(t, 66.66, dist[2].Percent, 0.01)

	require.NoError(t, team.SelectEmployee("EMP-003"))
	require.NoError(t, team.SetEditMode(true))
	require.NoError(t, team.SetRating("Testing", 5))

	dist = Distribution(team, "Testing")
	assert.Equal(t, 1, dist[0].Count)
	assert.Equal(t, dist, Distribution(team, "Testing"))
}

func TestDistribution_EmptyTeam(t *testing.T) {
	dist := Distribution(NewTeamModel(nil, nil), "Testing")

	require.Len(t, dist, 5)
	for _, row := range dist {
		assert.Zero(t, row.Count)
		assert.Zero(t, row.Percent)
	}
}

func TestGapSummary(t *testing.T) {
	team := NewTeamModel(sampleEmployees(), sampleCategories())

	assert.Contains(t, GapSummary("Testing", Distribution(team, "Testing")), "more expertise at Level 5")
	assert.Contains(t, GapSummary("DevOps", Distribution(team, "DevOps")), "Nobody")
}

func TestMatrixRows(t *testing.T) {
	rows := MatrixRows([]models.SkillCategory{
		{Name: "Testing", Subcategories: []models.Subcategory{{Name: "Unit Tests", LowDescription: "Writes some"}}},
	})

	require.Len(t, rows, 2)
	assert.True(t, rows[0].IsCategory())
	assert.Equal(t, models.NoDescription, rows[0].Description)
	assert.False(t, rows[1].IsCategory())
	assert.Equal(t, "Writes some", rows[1].Description)
}
