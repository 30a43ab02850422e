package dataset

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/asteroid-belt/skillmatrix/internal/log"
	"github.com/asteroid-belt/skillmatrix/internal/models"
)

//go:embed data/*.json
var dataFS embed.FS

// File patterns used to locate each collection inside a source.
const (
	CriteriaPattern = "criteria*.{json,yaml,yml}"
	TeamPattern     = "team*.{json,yaml,yml}"
)

// FSSource reads the collections from a filesystem.
type FSSource struct {
	fsys fs.FS
	name string
}

// NewEmbedded returns a source over the data bundled into the binary.
func NewEmbedded() *FSSource {
	sub, err := fs.Sub(dataFS, "data")
	if err != nil {
		// The embed directive guarantees the directory exists.
		panic(fmt.Sprintf("bundled data: %v", err))
	}
	return &FSSource{fsys: sub, name: "bundled"}
}

// NewDir returns a source reading from a directory on disk.
func NewDir(dir string) *FSSource {
	return &FSSource{fsys: os.DirFS(dir), name: dir}
}

// NewFS returns a source over an arbitrary filesystem.
func NewFS(fsys fs.FS, name string) *FSSource {
	return &FSSource{fsys: fsys, name: name}
}

// Name describes where the data comes from.
func (s *FSSource) Name() string {
	return s.name
}

// LoadCategories implements Source.
func (s *FSSource) LoadCategories(ctx context.Context) ([]models.SkillCategory, error) {
	file, raw, err := s.read(ctx, CriteriaPattern)
	if err != nil {
		return nil, err
	}
	categories, err := DecodeCategories(file, raw)
	if err != nil {
		return nil, err
	}
	log.Debugf("loaded %d categories from %s/%s", len(categories), s.name, file)
	return categories, nil
}

// LoadEmployees implements Source.
func (s *FSSource) LoadEmployees(ctx context.Context) ([]models.Employee, error) {
	file, raw, err := s.read(ctx, TeamPattern)
	if err != nil {
		return nil, err
	}
	employees, err := DecodeEmployees(file, raw)
	if err != nil {
		return nil, err
	}
	log.Debugf("loaded %d employees from %s/%s", len(employees), s.name, file)
	return employees, nil
}

func (s *FSSource) read(ctx context.Context, pattern string) (string, []byte, error) {
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}

	matches, err := doublestar.Glob(s.fsys, pattern)
	if err != nil {
		return "", nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return "", nil, fmt.Errorf("no file matching %s in %s: %w", pattern, s.name, fs.ErrNotExist)
	}
	sort.Strings(matches)
	if len(matches) > 1 {
		log.Warnf("%d files match %s in %s, using %s", len(matches), pattern, s.name, matches[0])
	}

	raw, err := fs.ReadFile(s.fsys, matches[0])
	if err != nil {
		return "", nil, fmt.Errorf("read %s: %w", matches[0], err)
	}
	return path.Base(matches[0]), raw, nil
}
