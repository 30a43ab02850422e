package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/asteroid-belt/skillmatrix/internal/dataset"
)

var validateKind string

var validateCmd = &cobra.Command{
	Use:   "validate <glob>...",
	Short: "Check data files against the bundled schemas",
	Long: `Check criteria and team files against the JSON schemas used at load time.

The file kind is inferred from the name (criteria*.json, team*.yaml, ...)
unless --kind is given. Patterns support ** globs.

Examples:
  skillmatrix validate ./data/*.json
  skillmatrix validate 'exports/**/team*.yaml' --kind team`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateKind, "kind", "k", "", "criteria or team (default: from file name)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	kind, err := parseKind(validateKind)
	if err != nil {
		return logCLIError("validate", err)
	}
	return logCLIError("validate", validateFiles(cmd.OutOrStdout(), args, kind))
}

func parseKind(s string) (dataset.Kind, error) {
	switch dataset.Kind(s) {
	case "", dataset.KindCriteria, dataset.KindTeam:
		return dataset.Kind(s), nil
	default:
		return "", fmt.Errorf("invalid kind %q: want criteria or team", s)
	}
}

// validateFiles expands every pattern and validates each match.
func validateFiles(w io.Writer, patterns []string, kind dataset.Kind) error {
	var files []string
	var errs []error
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid pattern %q: %w", pattern, err))
			continue
		}
		if len(matches) == 0 {
			errs = append(errs, fmt.Errorf("no files match %s", pattern))
			continue
		}
		files = append(files, matches...)
	}

	failed := 0
	for _, f := range files {
		if err := dataset.ValidateFile(f, kind); err != nil {
			failed++
			_, _ = fmt.Fprintf(w, "✗ %s\n  %v\n", f, err)
			continue
		}
		_, _ = fmt.Fprintf(w, "✓ %s\n", f)
	}

	if failed > 0 {
		errs = append(errs, fmt.Errorf("%d of %d files failed schema validation", failed, len(files)))
	}
	return errors.Join(errs...)
}
