package dataset

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/asteroid-belt/skillmatrix/internal/dataset/mocks"
	"github.com/asteroid-belt/skillmatrix/internal/models"
)

func TestEmbeddedSource_LoadsBundledData(t *testing.T) {
	ds, err := Load(context.Background(), NewEmbedded())
	require.NoError(t, err)

	require.NotEmpty(t, ds.Categories)
	require.NotEmpty(t, ds.Employees)

	cat := findCategory(ds.Categories, "Testing")
	require.NotNil(t, cat)
	assert.True(t, cat.HasSubcategory("Unit Tests"))
	assert.Equal(t, "Writes unit tests", cat.LevelDescriptions[2])
	assert.Equal(t, "Standard level 4 proficiency", cat.LevelDescription(4))
}

func TestFSSource_YAMLWithUnquotedLevelKeys(t *testing.T) {
	fsys := fstest.MapFS{
		"criteria.yaml": {Data: []byte(`
- category: Testing
  description: Runs tests
  level_descriptions:
    1: Aware
    3: Practitioner
  subcategories:
    - name: Unit Tests
      skills: [assertions]
`)},
		"team.yml": {Data: []byte(`
- id: EMP-1
  value: 4
  competencies:
    Testing: [Unit Tests]
`)},
	}

	ds, err := Load(context.Background(), NewFS(fsys, "memory"))
	require.NoError(t, err)

	require.Len(t, ds.Categories, 1)
	assert.Equal(t, "Aware", ds.Categories[0].LevelDescriptions[1])
	assert.Equal(t, "Practitioner", ds.Categories[0].LevelDescriptions[3])

	require.Len(t, ds.Employees, 1)
	assert.Equal(t, "4", ds.Employees[0].Value)
}

func TestDecodeCategories_MalformedOptionalFieldsDegrade(t *testing.T) {
	raw := []byte(`[
		{"category": "Testing", "description": {"nested": true}, "medium_description": null,
		 "level_descriptions": {"2": ["not", "text"], "3": "Practitioner"},
		 "subcategories": [{"name": "Unit Tests", "high_description": 12}]}
	]`)

	categories, err := DecodeCategories("criteria.json", raw)
	require.NoError(t, err)
	require.Len(t, categories, 1)

	cat := categories[0]
	assert.Equal(t, models.NoDescription, cat.Description(models.BandLow))
	assert.Equal(t, models.NoDescription, cat.Description(models.BandMedium))
	assert.Equal(t, "Standard level 2 proficiency", cat.LevelDescription(2))
	assert.Equal(t, "Practitioner", cat.LevelDescription(3))
	assert.Equal(t, "12", cat.Subcategories[0].Description(models.BandHigh))
}

func TestDecodeCategories_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing category", `[{"description": "x"}]`},
		{"empty category", `[{"category": ""}]`},
		{"level key out of range", `[{"category": "A", "level_descriptions": {"6": "x"}}]`},
		{"level key not integer", `[{"category": "A", "level_descriptions": {"2.5": "x"}}]`},
		{"subcategory without name", `[{"category": "A", "subcategories": [{"skills": []}]}]`},
		{"not an array", `{"category": "A"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeCategories("criteria.json", []byte(tt.raw))
			require.Error(t, err)

			var schemaErr *SchemaError
			require.ErrorAs(t, err, &schemaErr)
			assert.NotEmpty(t, schemaErr.Messages)
			assert.Contains(t, schemaErr.Error(), "criteria.json")
		})
	}
}

func TestSchemaError_NamesOffendingEntry(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		raw  string
		want string
	}{
		{
			name: "level key out of range",
			kind: KindCriteria,
			raw:  `[{"category": "A"}, {"category": "Testing", "level_descriptions": {"6": "x"}}]`,
			want: `/1/level_descriptions (category "Testing"): `,
		},
		{
			name: "subcategory without name",
			kind: KindCriteria,
			raw:  `[{"category": "Leadership", "subcategories": [{"skills": []}]}]`,
			want: `/0/subcategories/0 (category "Leadership"): `,
		},
		{
			name: "competency skill not a string",
			kind: KindTeam,
			raw:  `[{"id": "EMP-9", "competencies": {"Testing": [1]}}]`,
			want: `/0/competencies/Testing/0 (employee "EMP-9"): `,
		},
		{
			name: "document root",
			kind: KindCriteria,
			raw:  `{"category": "A"}`,
			want: `/: `,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBytes(tt.kind, "data.json", []byte(tt.raw))

			var schemaErr *SchemaError
			require.ErrorAs(t, err, &schemaErr)
			require.NotEmpty(t, schemaErr.Messages)
			assert.True(t, strings.HasPrefix(schemaErr.Messages[0], tt.want), schemaErr.Messages[0])
		})
	}
}

func TestDecodeEmployees_RequiresID(t *testing.T) {
	_, err := DecodeEmployees("team.json", []byte(`[{"position": "Dev"}]`))

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
}

func TestDecode_InvalidSyntax(t *testing.T) {
	_, err := DecodeCategories("criteria.json", []byte(`[{`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse criteria.json")

	_, err = DecodeEmployees("team.yaml", []byte("- id: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse team.yaml")
}

func TestLoad_DuplicateNames(t *testing.T) {
	fsys := fstest.MapFS{
		"criteria.json": {Data: []byte(`[{"category": "Testing"}, {"category": "Testing"}]`)},
		"team.json":     {Data: []byte(`[]`)},
	}

	_, err := Load(context.Background(), NewFS(fsys, "memory"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoadFailed)
	assert.ErrorIs(t, err, ErrDuplicateCategory)

	fsys = fstest.MapFS{
		"criteria.json": {Data: []byte(`[]`)},
		"team.json":     {Data: []byte(`[{"id": "E1"}, {"id": "E1"}]`)},
	}
	_, err = Load(context.Background(), NewFS(fsys, "memory"))
	assert.ErrorIs(t, err, ErrDuplicateEmployee)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(context.Background(), NewDir(t.TempDir()))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoadFailed)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoad_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, NewEmbedded())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoad_WithMockSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockSource(ctrl)

	src.EXPECT().LoadCategories(gomock.Any()).Return([]models.SkillCategory{{Name: "Testing"}}, nil)
	src.EXPECT().LoadEmployees(gomock.Any()).Return([]models.Employee{{ID: "E1"}}, nil)

	ds, err := Load(context.Background(), src)
	require.NoError(t, err)
	assert.Len(t, ds.Categories, 1)
	assert.Len(t, ds.Employees, 1)
}

func TestLoad_SourceErrorIsTagged(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockSource(ctrl)
	boom := errors.New("disk on fire")

	src.EXPECT().LoadCategories(gomock.Any()).Return(nil, boom)
	src.EXPECT().LoadEmployees(gomock.Any()).Return(nil, nil).AnyTimes()

	_, err := Load(context.Background(), src)
	assert.ErrorIs(t, err, ErrLoadFailed)
	assert.ErrorIs(t, err, boom)
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "criteria_v2.json")
	require.NoError(t, os.WriteFile(good, []byte(`[{"category": "Testing"}]`), 0644))
	assert.NoError(t, ValidateFile(good, ""))

	bad := filepath.Join(dir, "team.json")
	require.NoError(t, os.WriteFile(bad, []byte(`[{"position": "Dev"}]`), 0644))
	var schemaErr *SchemaError
	assert.ErrorAs(t, ValidateFile(bad, ""), &schemaErr)

	unknown := filepath.Join(dir, "notes.json")
	require.NoError(t, os.WriteFile(unknown, []byte(`[]`), 0644))
	assert.ErrorIs(t, ValidateFile(unknown, ""), ErrUnknownKind)
	assert.NoError(t, ValidateFile(unknown, KindTeam))
}

func TestDetectKind(t *testing.T) {
	tests := []struct {
		file string
		want Kind
		err  bool
	}{
		{"criteria_with_all_levels.json", KindCriteria, false},
		{"/tmp/x/criteria.yml", KindCriteria, false},
		{"team_overview.json", KindTeam, false},
		{"team.yaml", KindTeam, false},
		{"criteria.txt", "", true},
		{"employees.json", "", true},
	}
	for _, tt := range tests {
		got, err := DetectKind(tt.file)
		if tt.err {
			assert.Error(t, err, tt.file)
			continue
		}
		require.NoError(t, err, tt.file)
		assert.Equal(t, tt.want, got, tt.file)
	}
}

func findCategory(categories []models.SkillCategory, name string) *models.SkillCategory {
	for i := range categories {
		if categories[i].Name == name {
			return &categories[i]
		}
	}
	return nil
}
