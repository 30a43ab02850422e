package dataset

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// DetectKind infers the collection stored in a file from its base name.
func DetectKind(file string) (Kind, error) {
	base := filepath.Base(file)
	if ok, _ := doublestar.Match(CriteriaPattern, base); ok {
		return KindCriteria, nil
	}
	if ok, _ := doublestar.Match(TeamPattern, base); ok {
		return KindTeam, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownKind, base)
}

// ValidateFile checks a file on disk against the schema for its kind.
// An empty kind is inferred from the file name.
func ValidateFile(file string, kind Kind) error {
	raw, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read %s: %w", file, err)
	}
	if kind == "" {
		if kind, err = DetectKind(file); err != nil {
			return err
		}
	}
	return ValidateBytes(kind, file, raw)
}

// ValidateBytes runs the same checks Load applies to one collection.
func ValidateBytes(kind Kind, file string, raw []byte) error {
	switch kind {
	case KindCriteria:
		categories, err := DecodeCategories(file, raw)
		if err != nil {
			return err
		}
		return CheckCategories(categories)
	case KindTeam:
		employees, err := DecodeEmployees(file, raw)
		if err != nil {
			return err
		}
		return CheckEmployees(employees)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
