// Package dataset loads the skill matrix fixtures: criteria and the team roster.
// Data ships embedded in the binary and can be overridden from a directory.
package dataset

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/asteroid-belt/skillmatrix/internal/models"
)

var (
	// ErrLoadFailed tags every failure to materialize a dataset.
	ErrLoadFailed = errors.New("failed to load data")
	// ErrDuplicateCategory is returned when two categories share a name.
	ErrDuplicateCategory = errors.New("duplicate category")
	// ErrDuplicateEmployee is returned when two employees share an ID.
	ErrDuplicateEmployee = errors.New("duplicate employee")
	// ErrUnknownKind is returned when a file cannot be matched to a collection.
	ErrUnknownKind = errors.New("unknown dataset kind")
)

//go:generate mockgen -source=dataset.go -destination=mocks/mock_source.go -package=mocks Source

// Source supplies the static collections. Implementations are read-only.
type Source interface {
	LoadCategories(ctx context.Context) ([]models.SkillCategory, error)
	LoadEmployees(ctx context.Context) ([]models.Employee, error)
}

// Dataset holds both collections, already validated.
type Dataset struct {
	Categories []models.SkillCategory
	Employees  []models.Employee
}

// Load reads both collections from src concurrently and checks uniqueness.
// Every returned error wraps ErrLoadFailed.
func Load(ctx context.Context, src Source) (*Dataset, error) {
	var ds Dataset

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		categories, err := src.LoadCategories(gctx)
		if err != nil {
			return fmt.Errorf("criteria: %w", err)
		}
		ds.Categories = categories
		return nil
	})
	g.Go(func() error {
		employees, err := src.LoadEmployees(gctx)
		if err != nil {
			return fmt.Errorf("team: %w", err)
		}
		ds.Employees = employees
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	if err := CheckCategories(ds.Categories); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	if err := CheckEmployees(ds.Employees); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	return &ds, nil
}

// CheckCategories enforces unique category names.
func CheckCategories(categories []models.SkillCategory) error {
	seen := make(map[string]bool, len(categories))
	for _, c := range categories {
		if seen[c.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateCategory, c.Name)
		}
		seen[c.Name] = true
	}
	return nil
}

// CheckEmployees enforces unique employee IDs.
func CheckEmployees(employees []models.Employee) error {
	seen := make(map[string]bool, len(employees))
	for _, e := range employees {
		if seen[e.ID] {
			return fmt.Errorf("%w: %q", ErrDuplicateEmployee, e.ID)
		}
		seen[e.ID] = true
	}
	return nil
}
