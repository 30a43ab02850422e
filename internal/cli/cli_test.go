package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asteroid-belt/skillmatrix/internal/cli/prompts"
	"github.com/asteroid-belt/skillmatrix/internal/config"
	"github.com/asteroid-belt/skillmatrix/internal/dataset"
	"github.com/asteroid-belt/skillmatrix/internal/export"
	"github.com/asteroid-belt/skillmatrix/internal/viewmodel"
)

// testCmd returns a command writing into buffers, with the bundled data.
func testCmd(t *testing.T) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	appConfig = config.DefaultConfig()
	t.Cleanup(func() { appConfig = nil })

	var out, errOut bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetContext(context.Background())
	return cmd, &out, &errOut
}

func loadBundled(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.Load(context.Background(), dataset.NewEmbedded())
	require.NoError(t, err)
	return ds
}

func TestRootCmd_Structure(t *testing.T) {
	assert.Equal(t, "skillmatrix", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("data-dir"))
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	var names []string
	for _, cmd := range rootCmd.Commands() {
		names = append(names, cmd.Name())
	}

	for _, want := range []string{"criteria", "matrix", "team", "employee", "plan", "validate"} {
		assert.Contains(t, names, want)
	}
}

func TestCriteriaCmd_HasSubcommands(t *testing.T) {
	var names []string
	for _, cmd := range criteriaCmd.Commands() {
		names = append(names, cmd.Name())
	}
	assert.ElementsMatch(t, []string{"show", "add"}, names)
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		err  string
		want string
	}{
		{"load config: bad yaml", "config_error"},
		{"team.json: schema validation failed", "data_error"},
		{"copy to clipboard: no xsel", "clipboard_error"},
		{"employee EMP-9 not found", "not_found_error"},
		{"invalid level 7: want 1-5", "validation_error"},
		{`Category "Testing" already exists`, "validation_error"},
		{"boom", "unknown_error"},
	}
	for _, tt := range tests {
		t.Run(tt.want+"/"+tt.err, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyError(errors.New(tt.err)))
		})
	}
}

func TestLogCLIError(t *testing.T) {
	assert.NoError(t, logCLIError("x", nil))
	err := errors.New("boom")
	assert.Same(t, err, logCLIError("x", err))
}

func TestParseSort(t *testing.T) {
	got, err := parseSort("")
	require.NoError(t, err)
	assert.Equal(t, viewmodel.SortSource, got)

	got, err = parseSort(" Name ")
	require.NoError(t, err)
	assert.Equal(t, viewmodel.SortByName, got)

	_, err = parseSort("size")
	assert.Error(t, err)
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", padRight("ab", 5))
	assert.Equal(t, "日本  ", padRight("日本", 6))
	assert.Equal(t, "toolong", padRight("toolong", 3))
}

func TestWriteTable_Aligns(t *testing.T) {
	var buf bytes.Buffer
	writeTable(&buf, []string{"A", "B"}, [][]string{{"日本", "x"}, {"abcdef", "y"}}, nil)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 4)
	assert.Equal(t, "A       B", string(lines[0]))
	assert.Equal(t, "日本    x", string(lines[2]))
	assert.Equal(t, "abcdef  y", string(lines[3]))
}

func TestRunCriteria(t *testing.T) {
	cmd, out, _ := testCmd(t)

	require.NoError(t, runCriteria(cmd, nil))
	assert.Contains(t, out.String(), "CATEGORY")
	assert.Contains(t, out.String(), "7 of 7 categories")
}

func TestRunCriteria_SearchAndSort(t *testing.T) {
	cmd, out, _ := testCmd(t)
	criteriaSearch, criteriaSort = "test", "name"
	t.Cleanup(func() { criteriaSearch, criteriaSort = "", "source" })

	require.NoError(t, runCriteria(cmd, nil))
	assert.Contains(t, out.String(), "Testing")
	assert.Contains(t, out.String(), "1 of 7 categories")
}

func TestRunCriteria_NoMatch(t *testing.T) {
	cmd, out, _ := testCmd(t)
	criteriaSearch = "zzz-nothing"
	t.Cleanup(func() { criteriaSearch = "" })

	require.NoError(t, runCriteria(cmd, nil))
	assert.Equal(t, "No categories match your search.\n", out.String())
}

func TestRunCriteriaShow(t *testing.T) {
	cmd, out, _ := testCmd(t)
	criteriaRaw = true
	t.Cleanup(func() { criteriaRaw = false })

	require.NoError(t, runCriteriaShow(cmd, []string{"testing"}))
	assert.Contains(t, out.String(), "# Testing")
	assert.Contains(t, out.String(), "## Low Proficiency")

	err := runCriteriaShow(cmd, []string{"Juggling"})
	assert.EqualError(t, err, `category "Juggling" not found`)
}

func TestAddCategory(t *testing.T) {
	categories := loadBundled(t).Categories
	n := viewmodel.NewCategory{
		Name:               "Observability",
		LowDescription:     "Reads dashboards",
		MediumDescription:  "Adds metrics",
		AverageDescription: "Designs alerts",
		HighDescription:    "Owns SLOs",
	}

	var out, errOut bytes.Buffer
	require.NoError(t, addCategory(&out, &errOut, categories, n))
	assert.Contains(t, out.String(), `"category": "Observability"`)
	assert.Contains(t, errOut.String(), "Not saved")

	n.Name = "testing"
	assert.Error(t, addCategory(&out, &errOut, categories, n))

	var verr viewmodel.ValidationErrors
	err := addCategory(&out, &errOut, categories, viewmodel.NewCategory{})
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr, 5)
}

func TestRunTeam(t *testing.T) {
	cmd, out, _ := testCmd(t)
	teamSearch = "developer"
	t.Cleanup(func() { teamSearch = "" })

	require.NoError(t, runTeam(cmd, nil))
	assert.Contains(t, out.String(), "EMP-001")
	assert.NotContains(t, out.String(), "EMP-004")
	assert.Contains(t, out.String(), "3 employees")
}

func TestRunEmployee(t *testing.T) {
	cmd, out, _ := testCmd(t)

	require.NoError(t, runEmployee(cmd, []string{"EMP-003"}))
	assert.Contains(t, out.String(), "Employee: EMP-003")
	assert.Contains(t, out.String(), "Product Management")

	err := runEmployee(cmd, []string{"EMP-999"})
	assert.EqualError(t, err, "employee EMP-999 not found")
}

func TestRunEmployee_LoadFailure(t *testing.T) {
	cmd, _, _ := testCmd(t)
	appConfig.DataDir = t.TempDir()

	err := runEmployee(cmd, []string{"EMP-001"})
	require.Error(t, err)
	assert.ErrorIs(t, err, dataset.ErrLoadFailed)
	assert.Contains(t, err.Error(), viewmodel.MsgLoadFailed)
}

func TestBuildPlan(t *testing.T) {
	ds := loadBundled(t)

	t.Run("role path", func(t *testing.T) {
		out, err := buildPlan(ds, selection("senior developer", nil, nil), nil, export.FormatMarkdown)
		require.NoError(t, err)
		assert.Contains(t, out, "Senior Developer Development Path")
		assert.Contains(t, out, "Recommended Focus Areas")
	})

	t.Run("custom plan", func(t *testing.T) {
		out, err := buildPlan(ds, selection("", []string{"testing", "Leadership"}, []int{3, 4}), []int{3, 4}, export.FormatMarkdown)
		require.NoError(t, err)
		assert.Contains(t, out, "Achieve Testing at Level 3")
		assert.Contains(t, out, "Achieve Leadership at Level 4")
		assert.Contains(t, out, "saved_at:")
	})

	t.Run("html", func(t *testing.T) {
		out, err := buildPlan(ds, selection("", nil, nil), nil, export.FormatHTML)
		require.NoError(t, err)
		assert.Contains(t, out, "<table>")
		assert.Contains(t, out, "<title>Junior Developer Development Path</title>")
	})

	errorCases := []struct {
		name string
		sel  []string
		cats []string
		lvls []int
		want string
	}{
		{"unknown role", []string{"Astronaut"}, nil, nil, "invalid role"},
		{"unknown category", nil, []string{"Juggling"}, []int{2}, "not found"},
		{"bad level", nil, []string{"Testing"}, []int{9}, "invalid level 9"},
		{"rows only", nil, []string{"Testing"}, nil, "both required"},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			role := ""
			if len(tc.sel) > 0 {
				role = tc.sel[0]
			}
			_, err := buildPlan(ds, selection(role, tc.cats, tc.lvls), tc.lvls, export.FormatMarkdown)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestRunPlan_Copy(t *testing.T) {
	cmd, out, errOut := testCmd(t)
	orig := writeClipboard
	var copied string
	writeClipboard = func(s string) error {
		copied = s
		return nil
	}
	planCopy = true
	t.Cleanup(func() {
		planCopy = false
		writeClipboard = orig
	})

	require.NoError(t, runPlan(cmd, nil))
	assert.Equal(t, out.String(), copied)
	assert.Contains(t, errOut.String(), "Copied plan")
}

func TestRunPlan_ClipboardError(t *testing.T) {
	cmd, _, _ := testCmd(t)
	orig := writeClipboard
	writeClipboard = func(string) error { return errors.New("no clipboard utility") }
	planCopy = true
	t.Cleanup(func() {
		planCopy = false
		writeClipboard = orig
	})

	err := runPlan(cmd, nil)
	require.Error(t, err)
	assert.Equal(t, "clipboard_error", classifyError(err))
}

func TestValidateFiles(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "exports", "q3")
	require.NoError(t, os.MkdirAll(nested, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "criteria.json"), []byte(`[{"category":"Testing"}]`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(nested, "team.yaml"), []byte("- position: Dev\n"), 0644))

	var buf bytes.Buffer
	err := validateFiles(&buf, []string{filepath.Join(dir, "**", "*.{json,yaml}")}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 files failed")
	assert.Contains(t, buf.String(), "✓ "+filepath.Join(dir, "criteria.json"))
	assert.Contains(t, buf.String(), "✗ "+filepath.Join(nested, "team.yaml"))

	buf.Reset()
	err = validateFiles(&buf, []string{filepath.Join(dir, "*.json")}, dataset.KindCriteria)
	assert.NoError(t, err)

	err = validateFiles(&buf, []string{filepath.Join(dir, "missing-*.json")}, "")
	assert.ErrorContains(t, err, "no files match")
}

func TestParseKind(t *testing.T) {
	k, err := parseKind("team")
	require.NoError(t, err)
	assert.Equal(t, dataset.KindTeam, k)

	_, err = parseKind("payroll")
	assert.Error(t, err)
}

func TestRunTUI_NotATerminal(t *testing.T) {
	cmd, out, _ := testCmd(t)
	orig := stdoutIsTerminal
	stdoutIsTerminal = func() bool { return false }
	t.Cleanup(func() { stdoutIsTerminal = orig })

	require.NoError(t, runTUI(cmd, nil))
	assert.Contains(t, out.String(), "CATEGORY")
}

func TestDataSource(t *testing.T) {
	cfg := config.DefaultConfig()
	assert.Equal(t, dataset.NewEmbedded().Name(), dataSource(cfg).Name())

	cfg.DataDir = "/srv/skills"
	assert.Equal(t, dataset.NewDir("/srv/skills").Name(), dataSource(cfg).Name())
}

func selection(role string, cats []string, levels []int) prompts.PlanSelection {
	return prompts.PlanSelection{Role: role, Categories: cats, Levels: prompts.ParseLevels(levels)}
}
