package cli

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/asteroid-belt/skillmatrix/internal/cli/prompts"
	"github.com/asteroid-belt/skillmatrix/internal/dataset"
	"github.com/asteroid-belt/skillmatrix/internal/export"
	"github.com/asteroid-belt/skillmatrix/internal/models"
	"github.com/asteroid-belt/skillmatrix/internal/viewmodel"
)

var (
	planRole        string
	planCategories  []string
	planLevels      []int
	planFormat      string
	planCopy        bool
	planInteractive bool
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print a role development path or a custom plan",
	Long: `Print a role's development path, or a custom plan built from
categories and target levels.

Without --category and --level the role path is printed. With both,
every category gets one goal per level. Plans are never saved.

Examples:
  skillmatrix plan --role "Senior Developer"
  skillmatrix plan --category Testing --category Leadership --level 3 --level 4
  skillmatrix plan --category Testing --level 4 --format html --copy
  skillmatrix plan -i`,
	Args: cobra.NoArgs,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&planRole, "role", "r", viewmodel.DefaultRole, "development role")
	planCmd.Flags().StringArrayVarP(&planCategories, "category", "c", nil, "category row of a custom plan (repeatable)")
	planCmd.Flags().IntSliceVarP(&planLevels, "level", "l", nil, "target level column of a custom plan (repeatable)")
	planCmd.Flags().StringVarP(&planFormat, "format", "f", "md", "output format: md or html")
	planCmd.Flags().BoolVar(&planCopy, "copy", false, "also copy the output to the clipboard")
	planCmd.Flags().BoolVarP(&planInteractive, "interactive", "i", false, "pick role, categories and levels interactively")
}

func runPlan(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(planFormat)
	if err != nil {
		return logCLIError("plan", err)
	}
	ds, err := loadDataset(cmd.Context())
	if err != nil {
		return logCLIError("plan", err)
	}

	sel := prompts.PlanSelection{
		Role:       planRole,
		Categories: planCategories,
		Levels:     prompts.ParseLevels(planLevels),
	}
	if planInteractive {
		pm := viewmodel.NewPlanModel(ds.Categories)
		if sel, err = prompts.RunPlanBuilder(pm.Roles(), ds.Categories, sel, !stdinIsTerminal()); err != nil {
			return logCLIError("plan", err)
		}
	}

	out, err := buildPlan(ds, sel, planLevels, format)
	if err != nil {
		return logCLIError("plan", err)
	}

	if planCopy {
		if err := writeClipboard(out); err != nil {
			return logCLIError("plan", fmt.Errorf("copy to clipboard: %w", err))
		}
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Copied plan to clipboard")
	}
	_, _ = fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// buildPlan renders the custom plan when rows or columns are given,
// otherwise the role path. rawLevels is checked so out-of-range flags fail.
func buildPlan(ds *dataset.Dataset, sel prompts.PlanSelection, rawLevels []int, format export.Format) (string, error) {
	pm := viewmodel.NewPlanModel(ds.Categories)
	if sel.Role != "" {
		if err := pm.SelectRole(sel.Role); err != nil {
			return "", fmt.Errorf("invalid role %q: want one of %s", sel.Role, strings.Join(pm.Roles(), ", "))
		}
	}

	for _, name := range sel.Categories {
		cat, err := resolveCategory(ds.Categories, name)
		if err != nil {
			return "", err
		}
		if err := pm.AddRow(cat); err != nil {
			return "", err
		}
	}
	for _, v := range rawLevels {
		if !models.Level(v).Valid() {
			return "", fmt.Errorf("invalid level %d: want 1-5", v)
		}
	}
	for _, l := range sel.Levels {
		if err := pm.AddColumn(l); err != nil {
			return "", err
		}
	}

	var md string
	switch {
	case len(pm.Rows()) > 0 && len(pm.Columns()) > 0:
		md = export.PlanMarkdown(pm.Save())
	case len(pm.Rows()) > 0 || len(pm.Columns()) > 0:
		return "", fmt.Errorf("invalid plan: --category and --level are both required for a custom plan")
	default:
		md = export.PathMarkdown(pm.Role(), pm.Path())
	}
	return export.Render(md, format)
}

// resolveCategory matches a category name ignoring case.
func resolveCategory(categories []models.SkillCategory, name string) (string, error) {
	for _, c := range categories {
		if strings.EqualFold(c.Name, strings.TrimSpace(name)) {
			return c.Name, nil
		}
	}
	return "", fmt.Errorf("category %q not found", name)
}
