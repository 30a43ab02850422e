package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/asteroid-belt/skillmatrix/internal/cli/prompts"
	"github.com/asteroid-belt/skillmatrix/internal/export"
	"github.com/asteroid-belt/skillmatrix/internal/models"
	"github.com/asteroid-belt/skillmatrix/internal/tui/components"
	"github.com/asteroid-belt/skillmatrix/internal/viewmodel"
)

var (
	criteriaSearch string
	criteriaSort   string
	criteriaRaw    bool
)

var criteriaCmd = &cobra.Command{
	Use:   "criteria",
	Short: "List skill categories",
	Long: `List skill categories with their subcategory count and low-proficiency
description.

The search matches category names, low descriptions and subcategory names,
ignoring case.

Examples:
  skillmatrix criteria
  skillmatrix criteria --search test
  skillmatrix criteria --sort name`,
	Args: cobra.NoArgs,
	RunE: runCriteria,
}

var criteriaShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show one category's bands, levels and subcategories",
	Args:  cobra.ExactArgs(1),
	RunE:  runCriteriaShow,
}

var criteriaAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Fill in a new category and print it as JSON",
	Long: `Prompt for a new category and print it as JSON.

The data files are never modified; paste the output into your own
criteria file if you want to keep it.`,
	Args: cobra.NoArgs,
	RunE: runCriteriaAdd,
}

func init() {
	criteriaCmd.Flags().StringVarP(&criteriaSearch, "search", "s", "", "filter by name, description or subcategory")
	criteriaCmd.Flags().StringVar(&criteriaSort, "sort", "source", "sort order: source or name")
	criteriaShowCmd.Flags().BoolVar(&criteriaRaw, "raw", false, "print markdown without rendering")

	criteriaCmd.AddCommand(criteriaShowCmd)
	criteriaCmd.AddCommand(criteriaAddCmd)
}

func parseSort(s string) (viewmodel.SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "source":
		return viewmodel.SortSource, nil
	case "name":
		return viewmodel.SortByName, nil
	default:
		return 0, fmt.Errorf("invalid sort %q: want name or source", s)
	}
}

func runCriteria(cmd *cobra.Command, args []string) error {
	order, err := parseSort(criteriaSort)
	if err != nil {
		return logCLIError("criteria", err)
	}
	ds, err := loadDataset(cmd.Context())
	if err != nil {
		return logCLIError("criteria", err)
	}

	vm := viewmodel.NewCriteriaModel(ds.Categories)
	vm.SetSearchTerm(criteriaSearch)
	vm.SetSort(order)

	writeCriteriaTable(cmd.OutOrStdout(), vm.FilteredCategories(), vm.Len())
	return nil
}

func writeCriteriaTable(w io.Writer, categories []models.SkillCategory, total int) {
	if len(categories) == 0 {
		_, _ = fmt.Fprintln(w, "No categories match your search.")
		return
	}

	rows := make([][]string, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, []string{c.Name, fmt.Sprint(len(c.Subcategories)), truncateCell(c.Description(models.BandLow))})
	}
	writeTable(w, []string{"CATEGORY", "SUBS", "DESCRIPTION"}, rows, nil)
	_, _ = fmt.Fprintf(w, "\n%d of %d categories\n", len(categories), total)
}

func runCriteriaShow(cmd *cobra.Command, args []string) error {
	ds, err := loadDataset(cmd.Context())
	if err != nil {
		return logCLIError("criteria show", err)
	}

	vm := viewmodel.NewCriteriaModel(ds.Categories)
	if err := vm.SelectByName(args[0]); err != nil {
		return logCLIError("criteria show", fmt.Errorf("category %q not found", args[0]))
	}
	cat, _ := vm.SelectedCategory()

	md := export.CategoryMarkdown(cat)
	if criteriaRaw {
		_, _ = fmt.Fprint(cmd.OutOrStdout(), md)
		return nil
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(components.RenderMarkdown(export.Body(md), 100), "\n"))
	return nil
}

func runCriteriaAdd(cmd *cobra.Command, args []string) error {
	ds, err := loadDataset(cmd.Context())
	if err != nil {
		return logCLIError("criteria add", err)
	}

	n, err := prompts.RunCategoryForm(!stdinIsTerminal())
	if err != nil {
		return logCLIError("criteria add", err)
	}
	return logCLIError("criteria add", addCategory(cmd.OutOrStdout(), cmd.ErrOrStderr(), ds.Categories, n))
}

// addCategory validates n against the loaded categories and prints it.
func addCategory(out, errOut io.Writer, categories []models.SkillCategory, n viewmodel.NewCategory) error {
	vm := viewmodel.NewCriteriaModel(categories)
	cat, err := vm.AddCategory(n)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cat, "", "  ")
	if err != nil {
		return fmt.Errorf("encode category: %w", err)
	}
	_, _ = fmt.Fprintln(out, string(data))
	_, _ = fmt.Fprintln(errOut, "Not saved: categories added here live for this command only.")
	return nil
}
